package app

import (
	"context"
	"sort"
	"time"

	"tableflip.dev/runlog/pkg/entry"
)

// ReportDay groups what happened on one local calendar day.
type ReportDay struct {
	Day       time.Time
	Completed []entry.CompletedGoal
	Runs      []entry.Run
	Miles     float64
}

// ReportResult encapsulates goals completed and runs logged in a time window.
type ReportResult struct {
	Since time.Time
	Until time.Time
	Days  []ReportDay

	Completed int
	Runs      int
	Miles     float64
}

// Report returns completed goals and runs from every store between the
// provided bounds, grouped by day with the most recent day first.
func (s *Service) Report(ctx context.Context, since, until time.Time) (ReportResult, error) {
	if since.After(until) {
		since, until = until, since
	}
	if err := ctx.Err(); err != nil {
		return ReportResult{}, err
	}

	within := func(t time.Time) bool {
		return !t.Before(since) && !t.After(until)
	}
	grouped := make(map[time.Time]*ReportDay)
	bucket := func(t time.Time) *ReportDay {
		day := entry.StartOfDay(t)
		d, ok := grouped[day]
		if !ok {
			d = &ReportDay{Day: day}
			grouped[day] = d
		}
		return d
	}

	result := ReportResult{Since: since, Until: until}
	for _, c := range s.Tracker.History.CompletedGoals() {
		if !within(c.CompletedAt.Time) {
			continue
		}
		d := bucket(c.CompletedAt.Time)
		d.Completed = append(d.Completed, c)
		result.Completed++
	}

	runs := append(s.Tracker.History.Runs(), s.Tracker.Runs.Runs()...)
	for _, r := range runs {
		if !within(r.Date.Time) {
			continue
		}
		d := bucket(r.Date.Time)
		d.Runs = append(d.Runs, r)
		d.Miles += r.DistanceInMiles
		result.Runs++
		result.Miles += r.DistanceInMiles
	}

	result.Days = make([]ReportDay, 0, len(grouped))
	for _, d := range grouped {
		sort.SliceStable(d.Runs, func(i, j int) bool {
			return d.Runs[i].Date.Before(d.Runs[j].Date.Time)
		})
		result.Days = append(result.Days, *d)
	}
	sort.Slice(result.Days, func(i, j int) bool {
		return result.Days[i].Day.After(result.Days[j].Day)
	})
	return result, nil
}
