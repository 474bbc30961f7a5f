// Package timeutil parses the human-friendly time and date values accepted by
// the runlog CLI.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/runlog/pkg/entry"
)

type unit int

const (
	unitHours unit = iota
	unitMinutes
	unitSeconds
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	clockPattern   = regexp.MustCompile(`^(\d+):(\d+)(?::(\d+))?$`)
	unitMap        = map[string]unit{
		"h":       unitHours,
		"hr":      unitHours,
		"hrs":     unitHours,
		"hour":    unitHours,
		"hours":   unitHours,
		"m":       unitMinutes,
		"min":     unitMinutes,
		"mins":    unitMinutes,
		"minute":  unitMinutes,
		"minutes": unitMinutes,
		"s":       unitSeconds,
		"sec":     unitSeconds,
		"secs":    unitSeconds,
		"second":  unitSeconds,
		"seconds": unitSeconds,
	}
)

// ParseTime parses values such as "1h30m", "8m30s", "90m" or "8:30" into an
// entry.Time. Each unit lands in its own field and nothing is carried over:
// "90m" stays 90 minutes. A clock value "m:ss" or "h:mm:ss" is read the way a
// runner writes a pace or a finishing time. An empty input is a zero Time.
func ParseTime(input string) (entry.Time, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return entry.Time{}, nil
	}
	if m := clockPattern.FindStringSubmatch(remaining); m != nil {
		return parseClock(m)
	}

	var t entry.Time
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return entry.Time{}, fmt.Errorf("invalid time segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return entry.Time{}, fmt.Errorf("invalid time value %q: %w", matches[1], err)
		}
		u, ok := unitMap[matches[2]]
		if !ok {
			return entry.Time{}, fmt.Errorf("unsupported time unit %q", matches[2])
		}
		switch u {
		case unitHours:
			t.Hours += value
		case unitMinutes:
			t.Minutes += value
		case unitSeconds:
			t.Seconds += value
		}
		remaining = remaining[len(matches[0]):]
	}
	return t, nil
}

func parseClock(m []string) (entry.Time, error) {
	nums := make([]int, 0, 3)
	for _, s := range m[1:] {
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return entry.Time{}, fmt.Errorf("invalid time value %q: %w", s, err)
		}
		nums = append(nums, v)
	}
	if len(nums) == 2 {
		return entry.HMS(0, nums[0], nums[1]), nil
	}
	return entry.HMS(nums[0], nums[1], nums[2]), nil
}

// FormatTime renders t compactly, skipping zero fields: "1h30m", "8m30s".
func FormatTime(t entry.Time) string {
	if t.IsZero() {
		return "0s"
	}
	var b strings.Builder
	if t.Hours != 0 {
		fmt.Fprintf(&b, "%dh", t.Hours)
	}
	if t.Minutes != 0 {
		fmt.Fprintf(&b, "%dm", t.Minutes)
	}
	if t.Seconds != 0 {
		fmt.Fprintf(&b, "%ds", t.Seconds)
	}
	return b.String()
}

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// ParseDay resolves a run date relative to now. It accepts "today",
// "yesterday", "tomorrow", "2024-1-2" and "1/2". A month/day without a year is
// taken as the most recent such day, since runs are logged after the fact.
// The result is local noon on that day.
func ParseDay(input string, now time.Time) (time.Time, error) {
	now = now.Local()
	v := strings.ToLower(strings.TrimSpace(input))
	switch v {
	case "", "today":
		return noon(now), nil
	case "yesterday":
		return noon(now.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return noon(now.AddDate(0, 0, 1)), nil
	}

	t, err := time.ParseInLocation(layoutISO, v, time.Local)
	if err == nil {
		return noon(t), nil
	}
	t, err = time.ParseInLocation(layoutISOShort, v, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-M-D or M/D", input)
	}
	t = time.Date(now.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local)
	if t.After(noon(now)) {
		t = t.AddDate(-1, 0, 0)
	}
	return t, nil
}

func noon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local)
}
