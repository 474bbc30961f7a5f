package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

type Timestamp struct {
	time.Time
}

// SameDay compares calendar days in the local calendar.
func (t Timestamp) SameDay(then time.Time) bool {
	return SameDay(t.Time, then)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Day() == b.Day() &&
		a.Month() == b.Month() &&
		a.Year() == b.Year()
}

// StartOfDay returns local midnight for t.
func StartOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.Format(time.RFC3339Nano))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = time.Parse(time.RFC3339Nano, timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// DayLabel renders the local calendar day, e.g. "January 2, 2006".
func (t Timestamp) DayLabel() string {
	return t.Local().Format(LayoutUS)
}

const (
	LayoutISO = "2006-01-02"
	LayoutUS  = "January 2, 2006"
)
