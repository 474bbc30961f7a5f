package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/runlog/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where goals and runs are stored.",
		Example: `
runlog info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			svc, err := openService(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			defer svc.Close()
			s := info.Info{
				Config:  config,
				Service: svc,
			}
			return output.HandleError(s.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
