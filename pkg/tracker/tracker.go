package tracker

import (
	"time"

	"tableflip.dev/runlog/pkg/entry"
)

// Placement says where LogRun put a run.
type Placement int

const (
	// PlacedToday means the run landed in the run store.
	PlacedToday Placement = iota
	// PlacedHistory means the run was routed to the history store.
	PlacedHistory
)

func (p Placement) String() string {
	if p == PlacedHistory {
		return "history"
	}
	return "today"
}

// Tracker groups the three stores and the operations that span them. The only
// cross-store flows are goal completion (goals to history) and backdated run
// logging (runs to history).
type Tracker struct {
	Goals   *GoalStore
	History *HistoryStore
	Runs    *RunStore

	// Now is the clock used for routing and completion stamps.
	Now func() time.Time
}

// Option customises New.
type Option func(*Tracker)

// WithClock overrides the clock used for routing.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.Now = now
		}
	}
}

// WithStores replaces the empty stores New would create.
func WithStores(goals *GoalStore, history *HistoryStore, runs *RunStore) Option {
	return func(t *Tracker) {
		if goals != nil {
			t.Goals = goals
		}
		if history != nil {
			t.History = history
		}
		if runs != nil {
			t.Runs = runs
		}
	}
}

// New creates a tracker with empty stores.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		Goals:   NewGoalStore(),
		History: NewHistoryStore(nil, nil),
		Runs:    NewRunStore(),
		Now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.History.now = t.Now
	return t
}

// AddGoal appends g to the goal store.
func (t *Tracker) AddGoal(g entry.Goal) {
	t.Goals.AddGoal(g)
}

// DeleteGoal removes a goal without completing it.
func (t *Tracker) DeleteGoal(id entry.ID) bool {
	return t.Goals.RemoveGoal(id)
}

// CompleteGoal moves the goal with the given id into history: the completed
// record is appended first, then the goal is removed. An unknown id is a
// no-op.
func (t *Tracker) CompleteGoal(id entry.ID) (entry.CompletedGoal, bool) {
	g, ok := t.Goals.FindGoal(id)
	if !ok {
		return entry.CompletedGoal{}, false
	}
	c := t.History.CompleteGoal(g)
	t.Goals.RemoveGoal(id)
	return c, true
}

// LogRun routes r by its date. A run dated on today's local calendar day goes
// to the run store; any other day, past or future, goes to history. The
// decision is made once here and never revisited.
func (t *Tracker) LogRun(r entry.Run) Placement {
	if r.Date.SameDay(t.Now()) {
		t.Runs.AddRun(r)
		return PlacedToday
	}
	t.History.AddRun(r)
	return PlacedHistory
}

// DeleteRun removes a run from the run store.
func (t *Tracker) DeleteRun(id entry.ID) bool {
	return t.Runs.RemoveRun(id)
}

// TodayRuns returns the runs in the run store dated today.
func (t *Tracker) TodayRuns() []entry.Run {
	return t.Runs.TodayRuns(t.Now())
}

// Subscribe registers fn on all three stores. The returned function cancels
// every registration.
func (t *Tracker) Subscribe(fn func(Change)) (cancel func()) {
	cancels := []func(){
		t.Goals.Subscribe(fn),
		t.History.Subscribe(fn),
		t.Runs.Subscribe(fn),
	}
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}
