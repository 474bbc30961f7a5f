package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/runlog/pkg/timeutil"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Date of the run, example: --on=yesterday, --on="2024-2-28" or --on="2/28". Defaults to today.`)
}

// GetOn resolves the date relative to now.
func (o *OnOptions) GetOn(now time.Time) (time.Time, error) {
	return timeutil.ParseDay(o.OnString, now)
}
