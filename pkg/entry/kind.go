package entry

import (
	"fmt"
	"math"
	"strings"
)

// Kind selects one of the goal creation flows. Each flow fills only the
// fields it is about and leaves the rest zero.
type Kind string

const (
	// KindDuration sets a time-on-feet target.
	KindDuration Kind = "duration"
	// KindMile sets a pace-per-mile target.
	KindMile Kind = "mile"
	// KindDistance sets a distance target.
	KindDistance Kind = "distance"
	// KindSprint combines distance and pace.
	KindSprint Kind = "sprint"
	// KindCustom sets distance, pace and duration.
	KindCustom Kind = "custom"
)

// AllKinds returns the creation flows in menu order.
func AllKinds() []Kind {
	return []Kind{KindDuration, KindMile, KindDistance, KindSprint, KindCustom}
}

// ParseKind converts a string to a Kind or returns an error for unknown values.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllKinds() {
		if candidate == k {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("entry: unknown goal kind %q", raw)
}

// Uses reports which of the three metric groups a kind populates.
func (k Kind) Uses() (distance, pace, duration bool) {
	switch k {
	case KindDuration:
		return false, false, true
	case KindMile:
		return false, true, false
	case KindDistance:
		return true, false, false
	case KindSprint:
		return true, true, false
	case KindCustom:
		return true, true, true
	}
	return false, false, false
}

// Picker bounds of the goal forms.
const (
	MaxHours   = 23
	MaxMinutes = 59
	MaxMiles   = 100
)

// Fields holds the raw values collected by a goal form.
type Fields struct {
	Name string

	Miles    int
	Fraction float64 // tenths of a mile, 0.0 to 0.9

	PaceHours   int
	PaceMinutes int

	DurationHours   int
	DurationMinutes int
}

// Validate checks the values against the form pickers. Stores never call it.
func (f Fields) Validate() error {
	switch {
	case f.Miles < 0 || f.Miles > MaxMiles:
		return fmt.Errorf("entry: miles must be between 0 and %d, got %d", MaxMiles, f.Miles)
	case f.Fraction < 0 || f.Fraction >= 1:
		return fmt.Errorf("entry: fraction must be between 0.0 and 0.9, got %.2f", f.Fraction)
	case f.PaceHours < 0 || f.PaceHours > MaxHours, f.DurationHours < 0 || f.DurationHours > MaxHours:
		return fmt.Errorf("entry: hours must be between 0 and %d", MaxHours)
	case f.PaceMinutes < 0 || f.PaceMinutes > MaxMinutes, f.DurationMinutes < 0 || f.DurationMinutes > MaxMinutes:
		return fmt.Errorf("entry: minutes must be between 0 and %d", MaxMinutes)
	}
	return nil
}

// NewGoal builds a goal with a fresh id for the given flow. Fields the flow
// does not use are zero-filled.
func NewGoal(kind Kind, f Fields) Goal {
	g := Goal{ID: NewID(), GoalName: f.Name}
	distance, pace, duration := kind.Uses()
	if distance {
		g.DistanceInMiles = float64(f.Miles) + roundTenth(f.Fraction)
	}
	if pace {
		g.PacePerMile = HMS(f.PaceHours, f.PaceMinutes, 0)
	}
	if duration {
		g.Duration = HMS(f.DurationHours, f.DurationMinutes, 0)
	}
	return g
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
