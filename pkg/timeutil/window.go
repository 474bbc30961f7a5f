package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is the report window used when none is given.
const DefaultWindow = "1w"

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var windowUnits = map[string]time.Duration{
	"h":     time.Hour,
	"hr":    time.Hour,
	"hrs":   time.Hour,
	"hour":  time.Hour,
	"hours": time.Hour,
	"d":     day,
	"day":   day,
	"days":  day,
	"w":     week,
	"wk":    week,
	"wks":   week,
	"week":  week,
	"weeks": week,
}

// ParseWindow parses a look-back window such as "1w", "10d" or "1w2d" and
// returns it with a compact label. An empty input uses DefaultWindow.
func ParseWindow(input string) (time.Duration, string, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		remaining = DefaultWindow
	}

	var total time.Duration
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		base, ok := windowUnits[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = remaining[len(matches[0]):]
	}
	if total <= 0 {
		return 0, "", fmt.Errorf("window must be greater than zero")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders d with week, day and hour tokens. Anything below an
// hour is dropped.
func FormatWindow(d time.Duration) string {
	var b strings.Builder
	for _, u := range []struct {
		label string
		value time.Duration
	}{{"w", week}, {"d", day}, {"h", time.Hour}} {
		if d < u.value {
			continue
		}
		n := d / u.value
		d -= n * u.value
		fmt.Fprintf(&b, "%d%s", n, u.label)
	}
	if b.Len() == 0 {
		return "0h"
	}
	return b.String()
}
