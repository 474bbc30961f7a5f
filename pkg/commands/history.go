package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/runlog/pkg/commands/options"
	"tableflip.dev/runlog/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show completed goals and runs logged for other days.",
		Example: `
runlog history
runlog history --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			defer svc.Close()
			s := history.History{
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
