package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/runlog/pkg/runner/summary"
)

func addSummary(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "summary",
		Aliases: []string{"home"},
		Short:   "Show the run streak, goal counts and mileage.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			defer svc.Close()
			s := summary.Summary{
				JSON:    output.JSON,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
