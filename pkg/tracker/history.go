package tracker

import (
	"time"

	"tableflip.dev/runlog/pkg/entry"
)

// HistoryStore owns completed goals and runs that were not logged for today.
// History is append-only.
type HistoryStore struct {
	Notifier
	completed []entry.CompletedGoal
	runs      []entry.Run
	now       func() time.Time
}

// NewHistoryStore returns a store seeded with the given records, in order.
func NewHistoryStore(completed []entry.CompletedGoal, runs []entry.Run) *HistoryStore {
	return &HistoryStore{
		completed: append([]entry.CompletedGoal(nil), completed...),
		runs:      append([]entry.Run(nil), runs...),
		now:       time.Now,
	}
}

// CompleteGoal records g as completed and returns the new record. The record
// has its own id. Identical-looking goals are recorded again; nothing is
// deduplicated. The goal store is not touched.
func (s *HistoryStore) CompleteGoal(g entry.Goal) entry.CompletedGoal {
	c := entry.Complete(g, s.clock())
	s.completed = append(s.completed, c)
	s.notify(Change{Store: StoreCompletedGoals, Action: ActionAdd, ID: c.ID})
	return c
}

// AddRun appends r verbatim, id included.
func (s *HistoryStore) AddRun(r entry.Run) {
	s.runs = append(s.runs, r)
	s.notify(Change{Store: StoreHistoryRuns, Action: ActionAdd, ID: r.ID})
}

// CompletedGoals returns a copy of the completed goals in insertion order.
func (s *HistoryStore) CompletedGoals() []entry.CompletedGoal {
	return append([]entry.CompletedGoal(nil), s.completed...)
}

// Runs returns a copy of the history runs in insertion order.
func (s *HistoryStore) Runs() []entry.Run {
	return append([]entry.Run(nil), s.runs...)
}

func (s *HistoryStore) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
