package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/runlog/pkg/app"
	"tableflip.dev/runlog/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("RUNLOG_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "RUNLOG_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Fprintln(out, "RUNLOG_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	fmt.Fprintln(out, "Config.log.level: ", n.Config.LogLevel())
	if f := n.Config.LogFile(); f != "" {
		fmt.Fprintln(out, "Config.log.file: ", f)
	}

	if n.Service == nil {
		return fmt.Errorf("failed to open the journal")
	}

	if n.Service.Journal != nil {
		fmt.Fprintf(out, "Journal: %s\n", n.Service.Journal.Location())
	}
	sum := n.Service.Summary(ctx)
	fmt.Fprintf(out, "  goals:           %d\n", sum.ActiveGoals)
	fmt.Fprintf(out, "  completed goals: %d\n", sum.CompletedGoals)
	fmt.Fprintf(out, "  runs:            %d\n", sum.TotalRuns)
	return nil
}
