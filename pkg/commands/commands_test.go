package commands

import (
	"context"
	"testing"

	"tableflip.dev/runlog/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string { return t.path }
func (t testConfig) LogLevel() string { return "error" }
func (t testConfig) LogFile() string  { return "" }

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := New()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestCommandTree(t *testing.T) {
	cmd := New()
	for _, path := range [][]string{
		{"goal", "add"}, {"goal", "list"}, {"goal", "complete"}, {"goal", "delete"},
		{"run", "add"}, {"run", "list"}, {"run", "delete"},
		{"history"}, {"report"}, {"summary"}, {"ui"}, {"mcp"}, {"kinds"}, {"info"}, {"version"},
	} {
		found, _, err := cmd.Find(path)
		if err != nil || found == nil || found.Name() != path[len(path)-1] {
			t.Fatalf("missing command %v: %v", path, err)
		}
	}
}

func TestGoalAndRunRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RUNLOG_CONFIG_PATH", dir)
	t.Setenv("RUNLOG_PATH", dir)
	t.Setenv("RUNLOG_LOG_LEVEL", "error")

	if err := execute(t, "goal", "add", "distance", "5K", "--miles", "3", "--fraction", "0.1"); err != nil {
		t.Fatalf("goal add: %v", err)
	}
	if err := execute(t, "run", "add", "Morning", "Jog", "--distance", "3", "--pace", "9m"); err != nil {
		t.Fatalf("run add: %v", err)
	}
	if err := execute(t, "run", "add", "Old Run", "--distance", "5", "--on", "2020-1-1"); err != nil {
		t.Fatalf("run add old: %v", err)
	}

	j, err := store.Open(testConfig{path: dir})
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	snap, err := j.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Goals) != 1 || snap.Goals[0].GoalName != "5K" || snap.Goals[0].DistanceInMiles != 3.1 {
		t.Fatalf("unexpected goals %+v", snap.Goals)
	}
	if len(snap.Runs) != 1 || snap.Runs[0].GoalName != "Morning Jog" {
		t.Fatalf("unexpected runs %+v", snap.Runs)
	}
	if len(snap.HistoryRuns) != 1 || snap.HistoryRuns[0].GoalName != "Old Run" {
		t.Fatalf("unexpected history %+v", snap.HistoryRuns)
	}

	if err := execute(t, "goal", "complete", snap.Goals[0].ID.Short()); err != nil {
		t.Fatalf("goal complete: %v", err)
	}
	j, err = store.Open(testConfig{path: dir})
	if err != nil {
		t.Fatalf("reopen journal: %v", err)
	}
	snap, err = j.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Goals) != 0 || len(snap.CompletedGoals) != 1 {
		t.Fatalf("expected goal in history, got %+v", snap)
	}
}

func TestGoalAddRejectsUnknownKind(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RUNLOG_CONFIG_PATH", dir)
	t.Setenv("RUNLOG_PATH", dir)
	if err := execute(t, "goal", "add", "marathon", "Big"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
