// Package summary prints the at-a-glance tracker numbers.
package summary

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/runlog/pkg/app"
	"tableflip.dev/runlog/pkg/printers"
)

type Summary struct {
	JSON    bool
	Out     io.Writer
	Service *app.Service
}

func (n *Summary) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not summarize, no service")
	}
	sum := n.Service.Summary(ctx)
	if n.JSON {
		return printers.JSON(n.Out, sum)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Summary(sum)
	return nil
}
