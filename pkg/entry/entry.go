// Package entry defines the goal and run records shared by every runlog
// component.
package entry

import (
	"time"

	"github.com/google/uuid"
)

// ID identifies a goal, completed goal or run. IDs are generated once at
// construction and never reused.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.New().String())
}

func (id ID) String() string {
	return string(id)
}

// Short returns the leading block of the id, enough to type on the command line.
func (id ID) Short() string {
	s := string(id)
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// Goal is a target the runner has not reached yet.
type Goal struct {
	ID              ID      `json:"id"`
	GoalName        string  `json:"goalName"`
	DistanceInMiles float64 `json:"distanceInMiles,omitempty"`
	PacePerMile     Time    `json:"pacePerMile"`
	Duration        Time    `json:"duration"`
}

// Is reports whether g and other are the same goal. Only ids are compared.
func (g Goal) Is(other Goal) bool {
	return g.ID == other.ID
}

// Lines returns the display lines for the goal's non-zero targets.
func (g Goal) Lines() []string {
	return Describe(g.DistanceInMiles, g.PacePerMile, g.Duration)
}

// CompletedGoal is the history record left behind by a completed Goal.
type CompletedGoal struct {
	ID              ID        `json:"id"`
	GoalName        string    `json:"goalName"`
	DistanceInMiles float64   `json:"distanceInMiles,omitempty"`
	PacePerMile     Time      `json:"pacePerMile"`
	Duration        Time      `json:"duration"`
	CompletedAt     Timestamp `json:"completedAt"`
}

// Complete copies the goal's fields into a new CompletedGoal. The record gets
// its own id; the goal's id is not carried over.
func Complete(g Goal, at time.Time) CompletedGoal {
	return CompletedGoal{
		ID:              NewID(),
		GoalName:        g.GoalName,
		DistanceInMiles: g.DistanceInMiles,
		PacePerMile:     g.PacePerMile,
		Duration:        g.Duration,
		CompletedAt:     Timestamp{Time: at},
	}
}

// Is reports whether c and other are the same record. Only ids are compared.
func (c CompletedGoal) Is(other CompletedGoal) bool {
	return c.ID == other.ID
}

// Lines returns the display lines for the record's non-zero targets.
func (c CompletedGoal) Lines() []string {
	return Describe(c.DistanceInMiles, c.PacePerMile, c.Duration)
}

// Run is one logged run.
type Run struct {
	ID              ID        `json:"id"`
	GoalName        string    `json:"goalName"`
	DistanceInMiles float64   `json:"distanceInMiles,omitempty"`
	PacePerMile     Time      `json:"pacePerMile"`
	Duration        Time      `json:"duration"`
	Date            Timestamp `json:"date"`
}

// NewRun creates a run dated now. Callers backdating a run overwrite Date.
func NewRun(name string, miles float64, pace, duration Time) Run {
	return Run{
		ID:              NewID(),
		GoalName:        name,
		DistanceInMiles: miles,
		PacePerMile:     pace,
		Duration:        duration,
		Date:            Timestamp{Time: time.Now()},
	}
}

// Is reports whether r and other are the same run. Only ids are compared.
// Is reports whether r and other are the same run. Only ids are compared.
func (r Run) Is(other Run) bool {
	return r.ID == other.ID
}

// Lines returns the display lines for the run's non-zero metrics.
func (r Run) Lines() []string {
	return Describe(r.DistanceInMiles, r.PacePerMile, r.Duration)
}
