package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/tracker"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func (t testConfig) LogLevel() string {
	return "info"
}

func (t testConfig) LogFile() string {
	return ""
}

func TestJournalLoadEmpty(t *testing.T) {
	j, err := Open(testConfig{path: filepath.Join(t.TempDir(), "db")})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	snap, err := j.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Goals) != 0 || len(snap.Runs) != 0 || len(snap.CompletedGoals) != 0 || len(snap.HistoryRuns) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestJournalRoundTripsEveryList(t *testing.T) {
	base := t.TempDir()
	j, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}

	goal := entry.NewGoal(entry.KindDistance, entry.Fields{Name: "5K", Miles: 3, Fraction: 0.1})
	done := entry.Complete(goal, time.Date(2024, time.March, 1, 7, 0, 0, 0, time.UTC))
	today := entry.NewRun("Morning Jog", 3, entry.HMS(0, 9, 0), entry.HMS(0, 27, 0))
	old := entry.NewRun("Old Run", 5, entry.Time{}, entry.HMS(0, 45, 0))
	old.Date = entry.Timestamp{Time: time.Date(2020, time.January, 1, 12, 0, 0, 0, time.UTC)}

	writes := []struct {
		id    tracker.StoreID
		items any
	}{
		{tracker.StoreGoals, []entry.Goal{goal}},
		{tracker.StoreRuns, []entry.Run{today}},
		{tracker.StoreCompletedGoals, []entry.CompletedGoal{done}},
		{tracker.StoreHistoryRuns, []entry.Run{old}},
	}
	for _, w := range writes {
		if err := j.Write(w.id, w.items); err != nil {
			t.Fatalf("write %s: %v", w.id, err)
		}
	}

	// A fresh journal over the same directory reads what the first wrote.
	j2, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("reopen journal: %v", err)
	}
	snap, err := j2.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Goals) != 1 || snap.Goals[0].ID != goal.ID || snap.Goals[0].DistanceInMiles != goal.DistanceInMiles {
		t.Fatalf("unexpected goals %+v", snap.Goals)
	}
	if len(snap.Runs) != 1 || snap.Runs[0].GoalName != "Morning Jog" {
		t.Fatalf("unexpected runs %+v", snap.Runs)
	}
	if len(snap.CompletedGoals) != 1 || snap.CompletedGoals[0].ID != done.ID {
		t.Fatalf("unexpected completed goals %+v", snap.CompletedGoals)
	}
	if !snap.CompletedGoals[0].CompletedAt.Equal(done.CompletedAt.Time) {
		t.Fatalf("completion time changed: %v", snap.CompletedGoals[0].CompletedAt)
	}
	if len(snap.HistoryRuns) != 1 || !snap.HistoryRuns[0].Date.Equal(old.Date.Time) {
		t.Fatalf("unexpected history runs %+v", snap.HistoryRuns)
	}
}

func TestJournalWriteReplacesList(t *testing.T) {
	j, err := Open(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	a := entry.NewGoal(entry.KindCustom, entry.Fields{Name: "a"})
	b := entry.NewGoal(entry.KindCustom, entry.Fields{Name: "b"})
	if err := j.Write(tracker.StoreGoals, []entry.Goal{a, b}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := j.Write(tracker.StoreGoals, []entry.Goal{b}); err != nil {
		t.Fatalf("write: %v", err)
	}
	snap, err := j.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Goals) != 1 || snap.Goals[0].ID != b.ID {
		t.Fatalf("expected only b, got %+v", snap.Goals)
	}
}

func TestJournalLoadCorrupt(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "goals"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	j, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	if _, err := j.Load(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestJournalLoadCanceled(t *testing.T) {
	j, err := Open(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := j.Load(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}
