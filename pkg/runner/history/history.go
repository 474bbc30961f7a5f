// Package history prints completed goals and past runs.
package history

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/runlog/pkg/app"
	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/printers"
)

type History struct {
	ShowID  bool
	JSON    bool
	Out     io.Writer
	Service *app.Service
}

type view struct {
	CompletedGoals []entry.CompletedGoal `json:"completedGoals"`
	Runs           []entry.Run           `json:"runs"`
}

func (n *History) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show history, no service")
	}
	completed, runs := n.Service.History(ctx)
	if n.JSON {
		return printers.JSON(n.Out, view{CompletedGoals: completed, Runs: runs})
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.TitleWithCount("Completed goals", len(completed), "goal")
	pp.Completed(completed...)
	pp.TitleWithCount("Runs", len(runs), "run")
	pp.Runs(runs...)
	return nil
}
