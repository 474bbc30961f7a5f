package options

import (
	"github.com/spf13/cobra"
)

// UIOptions
type UIOptions struct {
	Ephemeral bool
}

func AddUIArgs(cmd *cobra.Command, o *UIOptions) {
	cmd.Flags().BoolVar(&o.Ephemeral, "ephemeral", false,
		"Start with empty stores and do not write the journal.")
}
