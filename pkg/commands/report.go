package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/runlog/pkg/commands/options"
	"tableflip.dev/runlog/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display goals completed and runs logged recently, grouped by day",
		Long: `Report lists goals completed and runs logged within the specified time window,
grouped by day with the most recent day first.

Examples:
  runlog report
  runlog report --last 3d
  runlog report --last 1w2d`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			defer svc.Close()
			s := report.Report{
				Last:    wo.Last,
				JSON:    output.JSON,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	options.AddWindowArgs(cmd, wo)
	topLevel.AddCommand(cmd)
}
