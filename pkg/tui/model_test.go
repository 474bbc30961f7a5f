package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/runlog/pkg/app"
	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/tracker"
)

var testNow = time.Date(2024, time.January, 2, 9, 0, 0, 0, time.Local)

func newTestModel(t *testing.T) (*Model, *app.Service) {
	t.Helper()
	svc, err := app.Open(context.Background(), nil, tracker.WithClock(func() time.Time { return testNow }))
	if err != nil {
		t.Fatalf("open service: %v", err)
	}
	m := New(svc)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, svc
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyPressMsg
		switch k {
		case "enter":
			msg = tea.KeyPressMsg{Code: tea.KeyEnter}
		case "tab":
			msg = tea.KeyPressMsg{Code: tea.KeyTab}
		case "esc":
			msg = tea.KeyPressMsg{Code: tea.KeyEscape}
		case "right":
			msg = tea.KeyPressMsg{Code: tea.KeyRight}
		case "down":
			msg = tea.KeyPressMsg{Code: tea.KeyDown}
		default:
			r := []rune(k)[0]
			msg = tea.KeyPressMsg{Code: r, Text: k}
		}
		m.Update(msg)
	}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		press(m, string(r))
	}
}

func TestGoalFormAddsDistanceGoal(t *testing.T) {
	m, svc := newTestModel(t)

	press(m, "n")
	if m.form == nil || m.form.kind != goalForm {
		t.Fatalf("expected goal form to open")
	}
	press(m, "right", "right")
	if m.form.selectedKind() != entry.KindDistance {
		t.Fatalf("expected distance kind, got %s", m.form.selectedKind())
	}

	press(m, "tab")
	typeText(m, "5K")
	press(m, "tab")
	typeText(m, "3")
	press(m, "tab")
	typeText(m, "0.1")
	press(m, "enter")

	if m.form != nil {
		t.Fatalf("expected form to close, err=%q", m.form.err)
	}
	goals := svc.Goals(context.Background())
	if len(goals) != 1 {
		t.Fatalf("expected one goal, got %d", len(goals))
	}
	g := goals[0]
	if g.GoalName != "5K" || g.DistanceInMiles != 3.1 || !g.PacePerMile.IsZero() || !g.Duration.IsZero() {
		t.Fatalf("unexpected goal %+v", g)
	}
	if !strings.Contains(m.View(), "5K") {
		t.Fatalf("expected goal in view")
	}
}

func TestGoalFormRejectsBadNumber(t *testing.T) {
	m, svc := newTestModel(t)

	press(m, "n", "right", "right", "tab")
	typeText(m, "far")
	press(m, "tab")
	typeText(m, "abc")
	press(m, "tab", "enter")

	if m.form == nil || m.form.err == "" {
		t.Fatalf("expected form to stay open with an error")
	}
	if len(svc.Goals(context.Background())) != 0 {
		t.Fatalf("invalid goal was stored")
	}
	press(m, "esc")
	if m.form != nil {
		t.Fatalf("expected esc to close the form")
	}
}

func TestCompleteGoalNeedsConfirmation(t *testing.T) {
	m, svc := newTestModel(t)
	ctx := context.Background()
	svc.Tracker.AddGoal(entry.Goal{ID: "a", GoalName: "first"})
	svc.Tracker.AddGoal(entry.Goal{ID: "b", GoalName: "second"})

	press(m, "down", "x")
	if m.confirm == nil {
		t.Fatalf("expected confirmation prompt")
	}
	press(m, "n")
	if len(svc.Goals(ctx)) != 2 {
		t.Fatalf("cancel should keep the goal")
	}

	press(m, "x", "y")
	goals := svc.Goals(ctx)
	if len(goals) != 1 || goals[0].GoalName != "first" {
		t.Fatalf("expected second goal completed, got %+v", goals)
	}
	completed, _ := svc.History(ctx)
	if len(completed) != 1 || completed[0].GoalName != "second" {
		t.Fatalf("unexpected history %+v", completed)
	}
	if m.cursor[tabGoals] != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", m.cursor[tabGoals])
	}
}

func TestDeleteGoal(t *testing.T) {
	m, svc := newTestModel(t)
	svc.Tracker.AddGoal(entry.Goal{ID: "a", GoalName: "first"})

	press(m, "d", "y")
	if len(svc.Goals(context.Background())) != 0 {
		t.Fatalf("expected goal deleted")
	}
	completed, _ := svc.History(context.Background())
	if len(completed) != 0 {
		t.Fatalf("delete must not record history")
	}
}

func TestRunFormRoutesByDate(t *testing.T) {
	m, svc := newTestModel(t)
	ctx := context.Background()

	press(m, "2", "n")
	if m.form == nil || m.form.kind != runForm {
		t.Fatalf("expected run form to open")
	}
	typeText(m, "OldRun")
	press(m, "tab")
	typeText(m, "5")
	press(m, "tab", "tab", "tab")
	typeText(m, "yesterday")
	press(m, "enter")
	if m.form != nil {
		t.Fatalf("expected form to close, err=%q", m.form.err)
	}

	press(m, "n")
	typeText(m, "MorningJog")
	press(m, "tab")
	typeText(m, "3")
	press(m, "tab")
	typeText(m, "9:00")
	press(m, "tab", "tab", "enter")
	if m.form != nil {
		t.Fatalf("expected form to close, err=%q", m.form.err)
	}

	today := svc.TodayRuns(ctx)
	if len(today) != 1 || today[0].GoalName != "MorningJog" || today[0].PacePerMile != entry.HMS(0, 9, 0) {
		t.Fatalf("unexpected today runs %+v", today)
	}
	_, history := svc.History(ctx)
	if len(history) != 1 || history[0].GoalName != "OldRun" {
		t.Fatalf("unexpected history runs %+v", history)
	}
	if !strings.Contains(m.status, "today") {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestTabsSwitch(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, "tab")
	if m.tab != tabToday {
		t.Fatalf("expected today tab, got %v", m.tab)
	}
	press(m, "3")
	if m.tab != tabHistory {
		t.Fatalf("expected history tab, got %v", m.tab)
	}
	press(m, "tab")
	if m.tab != tabGoals {
		t.Fatalf("expected wrap to goals, got %v", m.tab)
	}
	view := m.View()
	for _, want := range []string{"Goals", "Today", "History", "Streak 0 days"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestRowsShareColourById(t *testing.T) {
	m, svc := newTestModel(t)
	svc.Tracker.AddGoal(entry.Goal{ID: "a", GoalName: "first"})
	_ = m.View()
	before := m.colors.ColorFor("a")
	_ = m.View()
	if m.colors.ColorFor("a") != before {
		t.Fatalf("colour changed between renders")
	}
}

func TestWindowKeepsFocusVisible(t *testing.T) {
	lines := []string{"0", "1", "2", "3", "4", "5"}
	got := window(lines, 4, 6, 3)
	if strings.Join(got, "") != "345" {
		t.Fatalf("unexpected window %v", got)
	}
	got = window(lines, 0, 1, 3)
	if strings.Join(got, "") != "012" {
		t.Fatalf("unexpected window %v", got)
	}
	if len(window(lines, 0, 1, 10)) != 6 {
		t.Fatalf("expected all lines")
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	m, _ := newTestModel(t)
	if strings.Contains(m.View(), "runlog") {
		t.Fatalf("help should be hidden by default")
	}
	press(m, "?")
	if m.help == nil {
		t.Fatalf("expected help to open")
	}
	if !strings.Contains(m.View(), "runlog") {
		t.Fatalf("expected help content in view:\n%s", m.View())
	}
	press(m, "down", "esc")
	if m.help != nil {
		t.Fatalf("expected esc to close help")
	}
	press(m, "n")
	if m.form == nil {
		t.Fatalf("keys should reach the list once help is closed")
	}
}
