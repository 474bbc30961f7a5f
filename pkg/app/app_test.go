package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/store"
	"tableflip.dev/runlog/pkg/tracker"
)

type memoryJournal struct {
	mu     sync.Mutex
	lists  map[tracker.StoreID][]byte
	writes []tracker.StoreID
	fail   error
}

func newMemoryJournal() *memoryJournal {
	return &memoryJournal{lists: make(map[tracker.StoreID][]byte)}
}

func (m *memoryJournal) Location() string {
	return "memory"
}

func (m *memoryJournal) Load(_ context.Context) (store.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var snap store.Snapshot
	decode := func(id tracker.StoreID, target any) error {
		data, ok := m.lists[id]
		if !ok {
			return nil
		}
		return json.Unmarshal(data, target)
	}
	if err := decode(tracker.StoreGoals, &snap.Goals); err != nil {
		return store.Snapshot{}, err
	}
	if err := decode(tracker.StoreRuns, &snap.Runs); err != nil {
		return store.Snapshot{}, err
	}
	if err := decode(tracker.StoreCompletedGoals, &snap.CompletedGoals); err != nil {
		return store.Snapshot{}, err
	}
	if err := decode(tracker.StoreHistoryRuns, &snap.HistoryRuns); err != nil {
		return store.Snapshot{}, err
	}
	return snap, nil
}

func (m *memoryJournal) Write(id tracker.StoreID, items any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	m.lists[id] = data
	m.writes = append(m.writes, id)
	return nil
}

func fixedClock(t time.Time) tracker.Option {
	return tracker.WithClock(func() time.Time { return t })
}

var testNow = time.Date(2024, time.January, 2, 9, 0, 0, 0, time.Local)

func openService(t *testing.T, j store.Journal) *Service {
	t.Helper()
	svc, err := Open(context.Background(), j, fixedClock(testNow))
	if err != nil {
		t.Fatalf("open service: %v", err)
	}
	t.Cleanup(svc.Close)
	return svc
}

func runOn(name string, miles float64, day time.Time) entry.Run {
	r := entry.NewRun(name, miles, entry.Time{}, entry.Time{})
	r.Date = entry.Timestamp{Time: day}
	return r
}

func TestOpenWithoutJournal(t *testing.T) {
	svc := openService(t, nil)
	ctx := context.Background()
	if _, err := svc.AddGoal(ctx, entry.KindDistance, entry.Fields{Name: "5K", Miles: 3, Fraction: 0.1}); err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if got := svc.Goals(ctx); len(got) != 1 || got[0].DistanceInMiles != 3.1 {
		t.Fatalf("unexpected goals %+v", got)
	}
}

func TestAddGoalRejectsOutOfRangeFields(t *testing.T) {
	svc := openService(t, nil)
	if _, err := svc.AddGoal(context.Background(), entry.KindDistance, entry.Fields{Name: "far", Miles: 101}); err == nil {
		t.Fatalf("expected validation error")
	}
	if svc.Tracker.Goals.Len() != 0 {
		t.Fatalf("invalid goal was stored")
	}
}

func TestServicePersistsAcrossOpen(t *testing.T) {
	j := newMemoryJournal()
	ctx := context.Background()

	svc := openService(t, j)
	goal, err := svc.AddGoal(ctx, entry.KindDistance, entry.Fields{Name: "5K", Miles: 3, Fraction: 0.1})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if _, err := svc.CompleteGoal(ctx, goal.ID.Short()); err != nil {
		t.Fatalf("complete goal: %v", err)
	}
	if _, err := svc.LogRun(ctx, runOn("Morning Jog", 3, testNow)); err != nil {
		t.Fatalf("log run: %v", err)
	}
	if _, err := svc.LogRun(ctx, runOn("Old Run", 5, testNow.AddDate(0, 0, -1))); err != nil {
		t.Fatalf("log run: %v", err)
	}
	svc.Close()

	again := openService(t, j)
	if again.Tracker.Goals.Len() != 0 {
		t.Fatalf("expected no active goals, got %d", again.Tracker.Goals.Len())
	}
	completed, history := again.History(ctx)
	if len(completed) != 1 || completed[0].GoalName != "5K" {
		t.Fatalf("unexpected completed goals %+v", completed)
	}
	if len(history) != 1 || history[0].GoalName != "Old Run" {
		t.Fatalf("unexpected history runs %+v", history)
	}
	today := again.TodayRuns(ctx)
	if len(today) != 1 || today[0].GoalName != "Morning Jog" {
		t.Fatalf("unexpected today runs %+v", today)
	}
}

func TestCompleteGoalWritesHistoryBeforeGoals(t *testing.T) {
	j := newMemoryJournal()
	svc := openService(t, j)
	ctx := context.Background()
	goal, err := svc.AddGoal(ctx, entry.KindMile, entry.Fields{Name: "pace", PaceMinutes: 8})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	j.writes = nil
	if _, err := svc.CompleteGoal(ctx, string(goal.ID)); err != nil {
		t.Fatalf("complete goal: %v", err)
	}
	want := []tracker.StoreID{tracker.StoreCompletedGoals, tracker.StoreGoals}
	if len(j.writes) != len(want) {
		t.Fatalf("expected writes %v, got %v", want, j.writes)
	}
	for i := range want {
		if j.writes[i] != want[i] {
			t.Fatalf("expected writes %v, got %v", want, j.writes)
		}
	}
}

func TestCompleteGoalUnknown(t *testing.T) {
	svc := openService(t, nil)
	if _, err := svc.CompleteGoal(context.Background(), "nope"); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
	if _, err := svc.DeleteGoal(context.Background(), ""); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestResolveGoalAmbiguousPrefix(t *testing.T) {
	svc := openService(t, nil)
	svc.Tracker.AddGoal(entry.Goal{ID: "abc-1", GoalName: "one"})
	svc.Tracker.AddGoal(entry.Goal{ID: "abc-2", GoalName: "two"})

	if _, err := svc.ResolveGoal("abc"); !errors.Is(err, ErrAmbiguousID) {
		t.Fatalf("expected ErrAmbiguousID, got %v", err)
	}
	g, err := svc.ResolveGoal("abc-2")
	if err != nil || g.GoalName != "two" {
		t.Fatalf("expected goal two, got %+v, %v", g, err)
	}
}

func TestDeleteRunOnlyTouchesRunStore(t *testing.T) {
	svc := openService(t, nil)
	ctx := context.Background()
	old := runOn("Old Run", 5, testNow.AddDate(0, 0, -3))
	if placed, _ := svc.LogRun(ctx, old); placed != tracker.PlacedHistory {
		t.Fatalf("expected history placement, got %v", placed)
	}
	if _, err := svc.DeleteRun(ctx, string(old.ID)); !errors.Is(err, ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound for history run, got %v", err)
	}

	today := runOn("Jog", 2, testNow)
	if _, err := svc.LogRun(ctx, today); err != nil {
		t.Fatalf("log run: %v", err)
	}
	if _, err := svc.DeleteRun(ctx, today.ID.Short()); err != nil {
		t.Fatalf("delete run: %v", err)
	}
	if len(svc.TodayRuns(ctx)) != 0 {
		t.Fatalf("expected run store to be empty")
	}
}

func TestHistoryListsRunsFromPastDays(t *testing.T) {
	now := testNow
	svc, err := Open(context.Background(), nil, tracker.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("open service: %v", err)
	}
	ctx := context.Background()

	if _, err := svc.LogRun(ctx, runOn("Old Run", 5, testNow.AddDate(0, 0, -3))); err != nil {
		t.Fatalf("log run: %v", err)
	}
	jog := runOn("Morning Jog", 3, testNow)
	if placed, _ := svc.LogRun(ctx, jog); placed != tracker.PlacedToday {
		t.Fatalf("expected today placement, got %v", placed)
	}
	if _, history := svc.History(ctx); len(history) != 1 {
		t.Fatalf("today's run must not be in history yet, got %+v", history)
	}

	now = testNow.AddDate(0, 0, 1)
	if len(svc.TodayRuns(ctx)) != 0 {
		t.Fatalf("expected no runs for the new day")
	}
	_, history := svc.History(ctx)
	if len(history) != 2 || history[0].GoalName != "Old Run" || history[1].ID != jog.ID {
		t.Fatalf("expected Old Run then Morning Jog, got %+v", history)
	}
	if svc.Tracker.Runs.Len() != 1 || len(svc.Tracker.History.Runs()) != 1 {
		t.Fatalf("history view must not move runs between stores")
	}
	if sum := svc.Summary(ctx); sum.TotalRuns != 2 {
		t.Fatalf("unexpected summary %+v", sum)
	}
}

func TestChangesAreLoggedAtDebug(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	svc := openService(t, nil)
	ctx := context.Background()
	g, err := svc.AddGoal(ctx, entry.KindDistance, entry.Fields{Name: "5K", Miles: 3, Fraction: 0.1})
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if _, err := svc.CompleteGoal(ctx, string(g.ID)); err != nil {
		t.Fatalf("complete goal: %v", err)
	}
	if _, err := svc.LogRun(ctx, runOn("jog", 2, testNow)); err != nil {
		t.Fatalf("log run: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no records at info, got %q", buf.String())
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	if _, err := svc.AddGoal(ctx, entry.KindCustom, entry.Fields{Name: "x"}); err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if !strings.Contains(buf.String(), "goal added") {
		t.Fatalf("expected debug record, got %q", buf.String())
	}
}

func TestJournalFailureSurfaces(t *testing.T) {
	j := newMemoryJournal()
	svc := openService(t, j)
	j.fail = errors.New("disk full")

	if _, err := svc.AddGoal(context.Background(), entry.KindCustom, entry.Fields{Name: "x"}); err == nil {
		t.Fatalf("expected journal error")
	}
	// The in-memory store still took the goal.
	if svc.Tracker.Goals.Len() != 1 {
		t.Fatalf("expected goal in memory")
	}

	j.fail = nil
	if _, err := svc.AddGoal(context.Background(), entry.KindCustom, entry.Fields{Name: "y"}); err != nil {
		t.Fatalf("expected error to be cleared, got %v", err)
	}
}

func TestReportGroupsByDay(t *testing.T) {
	svc := openService(t, nil)
	ctx := context.Background()

	for _, r := range []entry.Run{
		runOn("today", 3, testNow),
		runOn("yesterday", 2, testNow.AddDate(0, 0, -1)),
		runOn("yesterday again", 1.5, testNow.AddDate(0, 0, -1).Add(time.Hour)),
		runOn("long ago", 10, testNow.AddDate(0, -2, 0)),
	} {
		if _, err := svc.LogRun(ctx, r); err != nil {
			t.Fatalf("log run: %v", err)
		}
	}

	result, err := svc.Report(ctx, testNow.Add(7*24*time.Hour), testNow.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !result.Since.Before(result.Until) {
		t.Fatalf("expected bounds to be swapped, got %v..%v", result.Since, result.Until)
	}
	if result.Runs != 3 || result.Miles != 6.5 {
		t.Fatalf("unexpected totals %+v", result)
	}
	if len(result.Days) != 2 {
		t.Fatalf("expected two days, got %d", len(result.Days))
	}
	if result.Days[0].Runs[0].GoalName != "today" {
		t.Fatalf("expected most recent day first, got %+v", result.Days[0])
	}
	if len(result.Days[1].Runs) != 2 || result.Days[1].Miles != 3.5 {
		t.Fatalf("unexpected yesterday bucket %+v", result.Days[1])
	}
}
