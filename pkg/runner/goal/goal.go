// Package goal provides the runner logic for managing goals.
package goal

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/runlog/pkg/app"
	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/printers"
)

// Add creates a goal of the given kind.
type Add struct {
	Kind    entry.Kind
	Fields  entry.Fields
	ShowID  bool
	JSON    bool
	Out     io.Writer
	Service *app.Service
}

// Do validates and stores the goal, then prints it.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add goal, no service")
	}
	g, err := n.Service.AddGoal(ctx, n.Kind, n.Fields)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, g)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Title("Added goal")
	pp.Goals(g)
	return nil
}

// List prints the active goals.
type List struct {
	ShowID  bool
	JSON    bool
	Out     io.Writer
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list goals, no service")
	}
	goals := n.Service.Goals(ctx)
	if n.JSON {
		return printers.JSON(n.Out, goals)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.TitleWithCount("Goals", len(goals), "goal")
	pp.Goals(goals...)
	return nil
}

// Complete moves a goal into history.
type Complete struct {
	ID      string
	JSON    bool
	Out     io.Writer
	Service *app.Service
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}
	c, err := n.Service.CompleteGoal(ctx, n.ID)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, c)
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.Title("Completed")
	pp.Completed(c)
	return nil
}

// Delete drops a goal without completing it.
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
	g, err := n.Service.DeleteGoal(ctx, n.ID)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, g)
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.Title("Deleted goal")
	pp.Goals(g)
	return nil
}
