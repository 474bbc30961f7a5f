package tracker

import (
	"time"

	"tableflip.dev/runlog/pkg/entry"
)

// Summary is the at-a-glance view of the tracker.
type Summary struct {
	ActiveGoals    int
	CompletedGoals int

	TodayRuns  int
	TodayMiles float64

	// TotalRuns and TotalMiles cover every run in either store.
	TotalRuns  int
	TotalMiles float64

	// Streak counts consecutive days with at least one run, ending today, or
	// yesterday when nothing has been logged today yet.
	Streak int
}

// Summarize computes a Summary as of the tracker clock.
func (t *Tracker) Summarize() Summary {
	now := t.Now()
	sum := Summary{
		ActiveGoals:    t.Goals.Len(),
		CompletedGoals: len(t.History.completed),
	}
	for _, r := range t.Runs.TodayRuns(now) {
		sum.TodayRuns++
		sum.TodayMiles += r.DistanceInMiles
	}

	days := make(map[string]struct{})
	for _, runs := range [][]entry.Run{t.Runs.runs, t.History.runs} {
		for _, r := range runs {
			sum.TotalRuns++
			sum.TotalMiles += r.DistanceInMiles
			days[dayKey(r.Date.Time)] = struct{}{}
		}
	}
	sum.Streak = streak(days, entry.StartOfDay(now))
	return sum
}

func streak(days map[string]struct{}, today time.Time) int {
	day := today
	if _, ok := days[dayKey(day)]; !ok {
		day = day.AddDate(0, 0, -1)
	}
	n := 0
	for {
		if _, ok := days[dayKey(day)]; !ok {
			return n
		}
		n++
		day = day.AddDate(0, 0, -1)
	}
}

func dayKey(t time.Time) string {
	return t.Local().Format(entry.LayoutISO)
}
