package entry

import "fmt"

// Time is an hours/minutes/seconds triple used both for durations and for
// pace per mile. Values are stored exactly as entered: 90 minutes stays 90
// minutes and is never rolled into hours.
type Time struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// HMS builds a Time.
func HMS(hours, minutes, seconds int) Time {
	return Time{Hours: hours, Minutes: minutes, Seconds: seconds}
}

// IsZero reports whether all three fields are zero.
func (t Time) IsZero() bool {
	return t.Hours == 0 && t.Minutes == 0 && t.Seconds == 0
}

// TotalSeconds flattens the triple. It is only used for arithmetic, the stored
// value keeps its original shape.
func (t Time) TotalSeconds() int {
	return t.Hours*3600 + t.Minutes*60 + t.Seconds
}

func (t Time) String() string {
	return fmt.Sprintf("%dh %dm %ds", t.Hours, t.Minutes, t.Seconds)
}
