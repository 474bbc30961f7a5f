package options

import (
	"testing"
	"time"

	"tableflip.dev/runlog/pkg/entry"
)

func TestGoalOptionsFields(t *testing.T) {
	o := GoalOptions{Hours: 1, Minutes: 5, PaceMinutes: 8, Miles: 3, Fraction: 0.1}
	f := o.Fields("5K")
	if f.Name != "5K" || f.DurationHours != 1 || f.DurationMinutes != 5 || f.PaceMinutes != 8 || f.Miles != 3 {
		t.Fatalf("unexpected fields %+v", f)
	}
}

func TestRunOptionsMetrics(t *testing.T) {
	o := RunOptions{Distance: 3.1, Pace: "8:30", Duration: "26m21s"}
	miles, pace, duration, err := o.Metrics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if miles != 3.1 || pace != entry.HMS(0, 8, 30) || duration != entry.HMS(0, 26, 21) {
		t.Fatalf("unexpected metrics %v %v %v", miles, pace, duration)
	}

	bad := RunOptions{Pace: "fast"}
	if _, _, _, err := bad.Metrics(); err == nil {
		t.Fatalf("expected error")
	}
	neg := RunOptions{Distance: -1}
	if _, _, _, err := neg.Metrics(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOnOptionsDefaultsToToday(t *testing.T) {
	now := time.Date(2024, time.January, 2, 8, 0, 0, 0, time.Local)
	o := OnOptions{}
	got, err := o.GetOn(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !entry.SameDay(got, now) {
		t.Fatalf("expected today, got %v", got)
	}
}
