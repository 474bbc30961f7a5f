package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/runlog/pkg/app"
	"tableflip.dev/runlog/pkg/commands/options"
	"tableflip.dev/runlog/pkg/logger"
	"tableflip.dev/runlog/pkg/store"
)

var (
	output = &options.OutputOptions{}

	config   store.Config
	closeLog = func() error { return nil }
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "runlog",
		Short: base.Wrap80("Running goals and a run log on the command line."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := store.LoadConfig()
			if err != nil {
				return err
			}
			config = c
			closeLog, err = logger.Init(os.Stderr, c.LogLevel(), c.LogFile())
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGoal(topLevel)
	addRun(topLevel)
	addHistory(topLevel)
	addReport(topLevel)
	addSummary(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addKinds(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}

// openService opens the journal named by the loaded config.
func openService(ctx context.Context) (*app.Service, error) {
	j, err := store.Open(config)
	if err != nil {
		return nil, err
	}
	return app.Open(ctx, j)
}
