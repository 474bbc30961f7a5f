package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/timeutil"
)

// RunOptions
type RunOptions struct {
	Distance float64
	Pace     string
	Duration string
}

func AddRunArgs(cmd *cobra.Command, o *RunOptions) {
	cmd.Flags().Float64VarP(&o.Distance, "distance", "d", 0,
		"Distance in miles, example: --distance=3.1.")
	cmd.Flags().StringVarP(&o.Pace, "pace", "p", "",
		`Pace per mile, example: --pace=8m30s or --pace="8:30".`)
	cmd.Flags().StringVarP(&o.Duration, "duration", "t", "",
		`Time on feet, example: --duration=1h2m or --duration="27:15".`)
}

// Metrics parses the flag values.
func (o *RunOptions) Metrics() (miles float64, pace, duration entry.Time, err error) {
	if o.Distance < 0 {
		return 0, pace, duration, fmt.Errorf("distance must not be negative, got %.2f", o.Distance)
	}
	if pace, err = timeutil.ParseTime(o.Pace); err != nil {
		return 0, pace, duration, fmt.Errorf("pace: %w", err)
	}
	if duration, err = timeutil.ParseTime(o.Duration); err != nil {
		return 0, pace, duration, fmt.Errorf("duration: %w", err)
	}
	return o.Distance, pace, duration, nil
}
