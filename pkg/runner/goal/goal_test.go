package goal

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/runlog/pkg/app"
	"tableflip.dev/runlog/pkg/entry"
)

func init() {
	color.NoColor = true
}

func newService(t *testing.T) *app.Service {
	t.Helper()
	svc, err := app.Open(context.Background(), nil)
	if err != nil {
		t.Fatalf("open service: %v", err)
	}
	return svc
}

func TestAddThenComplete(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	var buf bytes.Buffer
	add := Add{
		Kind:    entry.KindDuration,
		Fields:  entry.Fields{Name: "Long run", DurationHours: 1, DurationMinutes: 30},
		Out:     &buf,
		Service: svc,
	}
	if err := add.Do(ctx); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(buf.String(), "Duration: 1h 30m 0s") {
		t.Fatalf("unexpected output %q", buf.String())
	}

	id := svc.Goals(ctx)[0].ID
	buf.Reset()
	complete := Complete{ID: id.Short(), JSON: true, Out: &buf, Service: svc}
	if err := complete.Do(ctx); err != nil {
		t.Fatalf("complete: %v", err)
	}
	var got entry.CompletedGoal
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.GoalName != "Long run" || got.ID == id {
		t.Fatalf("unexpected completed goal %+v", got)
	}
	if len(svc.Goals(ctx)) != 0 {
		t.Fatalf("goal still active")
	}
}

func TestCompleteUnknown(t *testing.T) {
	svc := newService(t)
	c := Complete{ID: "missing", Out: &bytes.Buffer{}, Service: svc}
	if err := c.Do(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestListJSON(t *testing.T) {
	svc := newService(t)
	svc.Tracker.AddGoal(entry.Goal{ID: "a", GoalName: "one"})
	var buf bytes.Buffer
	l := List{JSON: true, Out: &buf, Service: svc}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	var goals []entry.Goal
	if err := json.Unmarshal(buf.Bytes(), &goals); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(goals) != 1 || goals[0].GoalName != "one" {
		t.Fatalf("unexpected goals %+v", goals)
	}
}
