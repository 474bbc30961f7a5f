package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/store"
	"tableflip.dev/runlog/pkg/tracker"
)

// Service provides high-level operations for goals and runs.
// It wraps the tracker stores and an optional journal so UIs and CLIs can
// share logic.
type Service struct {
	Tracker *tracker.Tracker
	Journal store.Journal

	unsubscribe func()
	persistErr  error
}

var (
	ErrGoalNotFound = errors.New("app: goal not found")
	ErrRunNotFound  = errors.New("app: run not found")
	ErrAmbiguousID  = errors.New("app: id prefix matches more than one record")
)

// Open loads the journal into fresh stores and keeps the journal current as
// the stores change. A nil journal gives an in-memory service.
func Open(ctx context.Context, j store.Journal, opts ...tracker.Option) (*Service, error) {
	var snap store.Snapshot
	if j != nil {
		var err error
		snap, err = j.Load(ctx)
		if err != nil {
			return nil, err
		}
		slog.Debug("journal loaded",
			"location", j.Location(),
			"goals", len(snap.Goals),
			"runs", len(snap.Runs),
			"completed", len(snap.CompletedGoals),
			"history", len(snap.HistoryRuns))
	}

	opts = append([]tracker.Option{tracker.WithStores(
		tracker.NewGoalStore(snap.Goals...),
		tracker.NewHistoryStore(snap.CompletedGoals, snap.HistoryRuns),
		tracker.NewRunStore(snap.Runs...),
	)}, opts...)

	s := &Service{
		Tracker: tracker.New(opts...),
		Journal: j,
	}
	if j != nil {
		s.unsubscribe = s.Tracker.Subscribe(s.persist)
	}
	return s, nil
}

// Close stops journaling. The stores stay usable.
func (s *Service) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Service) persist(c tracker.Change) {
	var items any
	switch c.Store {
	case tracker.StoreGoals:
		items = s.Tracker.Goals.Goals()
	case tracker.StoreRuns:
		items = s.Tracker.Runs.Runs()
	case tracker.StoreCompletedGoals:
		items = s.Tracker.History.CompletedGoals()
	case tracker.StoreHistoryRuns:
		items = s.Tracker.History.Runs()
	default:
		return
	}
	if err := s.Journal.Write(c.Store, items); err != nil {
		slog.Error("journal write failed", "list", c.Store, "action", c.Action, "id", c.ID, "err", err)
		if s.persistErr == nil {
			s.persistErr = err
		}
	}
}

// flush reports the first journal failure since the last call.
func (s *Service) flush() error {
	err := s.persistErr
	s.persistErr = nil
	return err
}

// AddGoal validates the form fields, builds the goal for kind and stores it.
func (s *Service) AddGoal(ctx context.Context, kind entry.Kind, f entry.Fields) (entry.Goal, error) {
	if err := f.Validate(); err != nil {
		return entry.Goal{}, err
	}
	g := entry.NewGoal(kind, f)
	s.Tracker.AddGoal(g)
	slog.Debug("goal added", "id", g.ID, "kind", kind, "name", g.GoalName)
	return g, s.flush()
}

// Goals lists active goals in insertion order.
func (s *Service) Goals(ctx context.Context) []entry.Goal {
	return s.Tracker.Goals.Goals()
}

// CompleteGoal moves the goal referenced by ref into history.
func (s *Service) CompleteGoal(ctx context.Context, ref string) (entry.CompletedGoal, error) {
	g, err := s.ResolveGoal(ref)
	if err != nil {
		return entry.CompletedGoal{}, err
	}
	c, ok := s.Tracker.CompleteGoal(g.ID)
	if !ok {
		return entry.CompletedGoal{}, ErrGoalNotFound
	}
	slog.Debug("goal completed", "goal", g.ID, "record", c.ID, "name", c.GoalName)
	return c, s.flush()
}

// DeleteGoal drops the goal referenced by ref without recording it.
func (s *Service) DeleteGoal(ctx context.Context, ref string) (entry.Goal, error) {
	g, err := s.ResolveGoal(ref)
	if err != nil {
		return entry.Goal{}, err
	}
	s.Tracker.DeleteGoal(g.ID)
	slog.Debug("goal deleted", "id", g.ID, "name", g.GoalName)
	return g, s.flush()
}

// LogRun routes r into today's runs or history by its date.
func (s *Service) LogRun(ctx context.Context, r entry.Run) (tracker.Placement, error) {
	placed := s.Tracker.LogRun(r)
	slog.Debug("run logged", "id", r.ID, "name", r.GoalName, "date", r.Date, "placed", placed)
	return placed, s.flush()
}

// TodayRuns lists runs logged for today.
func (s *Service) TodayRuns(ctx context.Context) []entry.Run {
	return s.Tracker.TodayRuns()
}

// DeleteRun removes the run referenced by ref from the run store. History is
// append-only, so only runs logged for their own day can be deleted.
func (s *Service) DeleteRun(ctx context.Context, ref string) (entry.Run, error) {
	r, err := s.ResolveRun(ref)
	if err != nil {
		return entry.Run{}, err
	}
	s.Tracker.DeleteRun(r.ID)
	slog.Debug("run deleted", "id", r.ID, "name", r.GoalName)
	return r, s.flush()
}

// History returns completed goals in insertion order and every run not dated
// today, oldest first. Runs logged for a day that has since passed stay in the
// run store but are listed here with the history runs.
func (s *Service) History(ctx context.Context) ([]entry.CompletedGoal, []entry.Run) {
	runs := append(s.Tracker.History.Runs(), s.Tracker.Runs.PastRuns(s.Tracker.Now())...)
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Date.Before(runs[j].Date.Time)
	})
	return s.Tracker.History.CompletedGoals(), runs
}

// Summary returns the tracker summary as of now.
func (s *Service) Summary(ctx context.Context) tracker.Summary {
	return s.Tracker.Summarize()
}

// ResolveGoal finds an active goal by full id or unique id prefix.
func (s *Service) ResolveGoal(ref string) (entry.Goal, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return entry.Goal{}, ErrGoalNotFound
	}
	if g, ok := s.Tracker.Goals.FindGoal(entry.ID(ref)); ok {
		return g, nil
	}
	var match []entry.Goal
	for _, g := range s.Tracker.Goals.Goals() {
		if strings.HasPrefix(string(g.ID), ref) {
			match = append(match, g)
		}
	}
	switch len(match) {
	case 0:
		return entry.Goal{}, fmt.Errorf("%w: %s", ErrGoalNotFound, ref)
	case 1:
		return match[0], nil
	}
	return entry.Goal{}, fmt.Errorf("%w: %s", ErrAmbiguousID, ref)
}

// ResolveRun finds a run in the run store by full id or unique id prefix.
func (s *Service) ResolveRun(ref string) (entry.Run, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return entry.Run{}, ErrRunNotFound
	}
	if r, ok := s.Tracker.Runs.FindRun(entry.ID(ref)); ok {
		return r, nil
	}
	var match []entry.Run
	for _, r := range s.Tracker.Runs.Runs() {
		if strings.HasPrefix(string(r.ID), ref) {
			match = append(match, r)
		}
	}
	switch len(match) {
	case 0:
		return entry.Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, ref)
	case 1:
		return match[0], nil
	}
	return entry.Run{}, fmt.Errorf("%w: %s", ErrAmbiguousID, ref)
}
