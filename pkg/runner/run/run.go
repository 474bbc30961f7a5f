// Package run provides the runner logic for logging runs.
package run

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/runlog/pkg/app"
	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/printers"
	"tableflip.dev/runlog/pkg/tracker"
)

// Log records a run. The tracker decides whether it lands in today's runs or
// in history.
type Log struct {
	Run     entry.Run
	JSON    bool
	Out     io.Writer
	Service *app.Service
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log run, no service")
	}
	placed, err := n.Service.LogRun(ctx, n.Run)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, struct {
			Run    entry.Run `json:"run"`
			Placed string    `json:"placed"`
		}{n.Run, placed.String()})
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.Placed(n.Run, placed)
	if placed == tracker.PlacedToday {
		pp.Runs(n.Run)
	}
	return nil
}

// List prints today's runs.
type List struct {
	ShowID  bool
	JSON    bool
	Out     io.Writer
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list runs, no service")
	}
	runs := n.Service.TodayRuns(ctx)
	if n.JSON {
		return printers.JSON(n.Out, runs)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.TitleWithCount("Today", len(runs), "run")
	pp.Runs(runs...)
	return nil
}

// Delete removes one of today's runs.
type Delete struct {
	ID      string
	JSON    bool
	Out     io.Writer
	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	r, err := n.Service.DeleteRun(ctx, n.ID)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, r)
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.Title("Deleted run")
	pp.Runs(r)
	return nil
}
