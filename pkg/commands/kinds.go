package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/runlog/pkg/runner/key"
)

func addKinds(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "kinds",
		Aliases: []string{"key"},
		Short:   "show which targets each goal kind records",
		Example: `
runlog kinds
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Out: cmd.OutOrStdout()}
			return output.HandleError(k.Do(context.Background()))
		},
	}
	topLevel.AddCommand(cmd)
}
