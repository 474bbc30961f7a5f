// Package report prints goals completed and runs logged in a recent window.
package report

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/runlog/pkg/app"
	"tableflip.dev/runlog/pkg/printers"
	"tableflip.dev/runlog/pkg/timeutil"
)

type Report struct {
	Last    string
	JSON    bool
	Out     io.Writer
	Service *app.Service
	Now     func() time.Time
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}
	window, label, err := timeutil.ParseWindow(n.Last)
	if err != nil {
		return err
	}
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	until := now()
	result, err := n.Service.Report(ctx, until.Add(-window), until)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, result)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Report(result, label)
	return nil
}
