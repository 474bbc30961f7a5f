package entry

import "fmt"

// Describe renders the non-zero metrics of a goal or run, one per line, in the
// order distance, pace, duration.
func Describe(miles float64, pace, duration Time) []string {
	lines := make([]string, 0, 3)
	if miles > 0 {
		lines = append(lines, fmt.Sprintf("Distance: %.2f miles", miles))
	}
	if !pace.IsZero() {
		lines = append(lines, fmt.Sprintf("Pace: %s per mile", pace))
	}
	if !duration.IsZero() {
		lines = append(lines, fmt.Sprintf("Duration: %s", duration))
	}
	return lines
}
