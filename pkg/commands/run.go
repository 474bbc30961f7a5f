package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/runlog/pkg/commands/options"
	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/runner/run"
)

func addRun(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "run",
		Aliases: []string{"runs"},
		Short:   base.Wrap80("Log runs and manage today's runs."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRunAdd(cmd)
	addRunList(cmd)
	addRunDelete(cmd)

	topLevel.AddCommand(cmd)
}

func addRunAdd(parent *cobra.Command) {
	ro := &options.RunOptions{}
	oo := &options.OnOptions{}
	var name string

	cmd := &cobra.Command{
		Use:     "add <name>",
		Aliases: []string{"log"},
		Short: base.Wrap80("Log a run. Runs dated today show up in today's runs; " +
			"any other date goes straight to history."),
		Example: `
runlog run add Morning Jog --distance 3 --pace 9m --duration 27m
runlog run add Old Run --distance 5 --on 2024-1-1
runlog run add Tempo --distance 4 --pace 7:45 --on yesterday
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a run name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			miles, pace, duration, err := ro.Metrics()
			if err != nil {
				return output.HandleError(err)
			}
			on, err := oo.GetOn(time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			r := entry.NewRun(name, miles, pace, duration)
			if oo.OnString != "" {
				r.Date = entry.Timestamp{Time: on}
			}

			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			defer svc.Close()
			s := run.Log{
				Run:     r,
				JSON:    output.JSON,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddRunArgs(cmd, ro)
	options.AddOnArgs(cmd, oo)
	parent.AddCommand(cmd)
}

func addRunList(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "today"},
		Short:   "List today's runs.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			defer svc.Close()
			s := run.List{
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addRunDelete(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete <run id>",
		Aliases: []string{"rm"},
		Short:   base.Wrap80("Delete one of today's runs. History runs are kept."),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a run id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			defer svc.Close()
			s := run.Delete{
				ID:      io.ID,
				JSON:    output.JSON,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	parent.AddCommand(cmd)
}
