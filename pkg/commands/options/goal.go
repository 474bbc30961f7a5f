package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/runlog/pkg/entry"
)

// GoalOptions holds the numeric fields of a new goal. Each goal kind reads
// only the fields it uses.
type GoalOptions struct {
	Hours   int
	Minutes int

	PaceHours   int
	PaceMinutes int

	Miles    int
	Fraction float64
}

func AddGoalArgs(cmd *cobra.Command, o *GoalOptions) {
	cmd.Flags().IntVar(&o.Hours, "hours", 0, "Duration hours (0-23).")
	cmd.Flags().IntVar(&o.Minutes, "minutes", 0, "Duration minutes (0-59).")
	cmd.Flags().IntVar(&o.PaceHours, "pace-hours", 0, "Pace per mile, hours (0-23).")
	cmd.Flags().IntVar(&o.PaceMinutes, "pace-minutes", 0, "Pace per mile, minutes (0-59).")
	cmd.Flags().IntVar(&o.Miles, "miles", 0, "Whole miles (0-100).")
	cmd.Flags().Float64Var(&o.Fraction, "fraction", 0, "Tenths of a mile (0.0-0.9).")
}

// Fields converts the flags into goal form fields.
func (o *GoalOptions) Fields(name string) entry.Fields {
	return entry.Fields{
		Name:            name,
		Miles:           o.Miles,
		Fraction:        o.Fraction,
		PaceHours:       o.PaceHours,
		PaceMinutes:     o.PaceMinutes,
		DurationHours:   o.Hours,
		DurationMinutes: o.Minutes,
	}
}
