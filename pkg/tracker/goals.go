package tracker

import "tableflip.dev/runlog/pkg/entry"

// GoalStore owns the list of goals that are not completed yet.
type GoalStore struct {
	Notifier
	goals []entry.Goal
}

// NewGoalStore returns a store seeded with goals, in order.
func NewGoalStore(goals ...entry.Goal) *GoalStore {
	return &GoalStore{goals: append([]entry.Goal(nil), goals...)}
}

// AddGoal appends g. Nothing is validated: empty names and all-zero goals
// are kept as given.
func (s *GoalStore) AddGoal(g entry.Goal) {
	s.goals = append(s.goals, g)
	s.notify(Change{Store: StoreGoals, Action: ActionAdd, ID: g.ID})
}

// RemoveGoal removes the goal with the given id. It reports false and leaves
// the list untouched when no such goal exists.
func (s *GoalStore) RemoveGoal(id entry.ID) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.goals = append(s.goals[:i:i], s.goals[i+1:]...)
	s.notify(Change{Store: StoreGoals, Action: ActionRemove, ID: id})
	return true
}

// FindGoal looks up a goal by id.
func (s *GoalStore) FindGoal(id entry.ID) (entry.Goal, bool) {
	if i := s.index(id); i >= 0 {
		return s.goals[i], true
	}
	return entry.Goal{}, false
}

// Goals returns a copy of the list in insertion order.
func (s *GoalStore) Goals() []entry.Goal {
	return append([]entry.Goal(nil), s.goals...)
}

// Len returns the number of active goals.
func (s *GoalStore) Len() int {
	return len(s.goals)
}

func (s *GoalStore) index(id entry.ID) int {
	for i, g := range s.goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}
