// Package key provides CLI helpers to display the goal kind legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/runlog/pkg/entry"
)

// Key prints which targets each goal kind records.
type Key struct {
	Out io.Writer
}

// Do renders the kind legend.
func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Kind"), bold.Sprint("Distance"), bold.Sprint("Pace"), bold.Sprint("Duration"))
	for _, kind := range entry.AllKinds() {
		distance, pace, duration := kind.Uses()
		tbl.AddRow(string(kind), mark(distance), mark(pace), mark(duration))
	}

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintf(out, "miles 0-%d plus tenths, hours 0-%d, minutes 0-%d\n", entry.MaxMiles, entry.MaxHours, entry.MaxMinutes)
	return nil
}

func mark(used bool) string {
	if used {
		return "✓"
	}
	return "-"
}
