package tracker

import (
	"time"

	"tableflip.dev/runlog/pkg/entry"
)

// RunStore owns the runs logged for today, plus future-dated ones.
type RunStore struct {
	Notifier
	runs []entry.Run
}

// NewRunStore returns a store seeded with runs, in order.
func NewRunStore(runs ...entry.Run) *RunStore {
	return &RunStore{runs: append([]entry.Run(nil), runs...)}
}

// AddRun appends r.
func (s *RunStore) AddRun(r entry.Run) {
	s.runs = append(s.runs, r)
	s.notify(Change{Store: StoreRuns, Action: ActionAdd, ID: r.ID})
}

// RemoveRun removes the run with the given id. It reports false and leaves the
// list untouched when no such run exists.
func (s *RunStore) RemoveRun(id entry.ID) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.runs = append(s.runs[:i:i], s.runs[i+1:]...)
	s.notify(Change{Store: StoreRuns, Action: ActionRemove, ID: id})
	return true
}

// FindRun looks up a run by id.
func (s *RunStore) FindRun(id entry.ID) (entry.Run, bool) {
	if i := s.index(id); i >= 0 {
		return s.runs[i], true
	}
	return entry.Run{}, false
}

// Runs returns a copy of the list in insertion order.
func (s *RunStore) Runs() []entry.Run {
	return append([]entry.Run(nil), s.runs...)
}

// PastRuns returns the runs logged for a day that has since passed, i.e. every
// run not dated on now's calendar day. Like TodayRuns it is a view; nothing is
// moved to history.
func (s *RunStore) PastRuns(now time.Time) []entry.Run {
	out := make([]entry.Run, 0, len(s.runs))
	for _, r := range s.runs {
		if !r.Date.SameDay(now) {
			out = append(out, r)
		}
	}
	return out
}

// TodayRuns filters the list down to runs dated on now's calendar day. The
// filter is computed on every call and never stored.
func (s *RunStore) TodayRuns(now time.Time) []entry.Run {
	out := make([]entry.Run, 0, len(s.runs))
	for _, r := range s.runs {
		if r.Date.SameDay(now) {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of runs in the store, whatever their date.
func (s *RunStore) Len() int {
	return len(s.runs)
}

func (s *RunStore) index(id entry.ID) int {
	for i, r := range s.runs {
		if r.ID == id {
			return i
		}
	}
	return -1
}
