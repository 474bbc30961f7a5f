package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/timeutil"
	"tableflip.dev/runlog/pkg/tui/theme"
)

type formKind int

const (
	goalForm formKind = iota
	runForm
)

// focusPicker is the focus index of the goal kind picker.
const focusPicker = -1

type field struct {
	key   string
	label string
	input textinput.Model
}

// form collects the values for a new goal or a new run.
type form struct {
	kind  formKind
	title string

	kinds   []entry.Kind
	kindIdx int

	fields []field
	focus  int
	err    string
}

func newField(key, label, placeholder string) field {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	return field{key: key, label: label, input: in}
}

func newGoalForm() *form {
	f := &form{
		kind:  goalForm,
		title: "New goal",
		kinds: entry.AllKinds(),
		focus: focusPicker,
	}
	f.rebuildGoalFields()
	return f
}

func newRunForm() (*form, tea.Cmd) {
	f := &form{
		kind:  runForm,
		title: "Log a run",
		fields: []field{
			newField("name", "Name", "Morning jog"),
			newField("miles", "Miles", "3.1"),
			newField("pace", "Pace per mile", "8:30 or 8m30s"),
			newField("duration", "Duration", "26:21 or 1h5m"),
			newField("date", "Date", "today, yesterday, 2024-1-2"),
		},
	}
	return f, f.setFocus(0)
}

// rebuildGoalFields lays out the inputs the selected kind uses. The name is
// carried over.
func (f *form) rebuildGoalFields() {
	name := ""
	if len(f.fields) > 0 {
		name = f.fields[0].input.Value()
	}
	nameField := newField("name", "Name", "5K")
	nameField.input.SetValue(name)
	fields := []field{nameField}

	distance, pace, duration := f.kinds[f.kindIdx].Uses()
	if distance {
		fields = append(fields,
			newField("miles", "Miles", fmt.Sprintf("0-%d", entry.MaxMiles)),
			newField("fraction", "Fraction", "0.0-0.9"))
	}
	if pace {
		fields = append(fields,
			newField("pace-hours", "Pace hours", fmt.Sprintf("0-%d", entry.MaxHours)),
			newField("pace-minutes", "Pace minutes", fmt.Sprintf("0-%d", entry.MaxMinutes)))
	}
	if duration {
		fields = append(fields,
			newField("hours", "Hours", fmt.Sprintf("0-%d", entry.MaxHours)),
			newField("minutes", "Minutes", fmt.Sprintf("0-%d", entry.MaxMinutes)))
	}
	f.fields = fields
}

func (f *form) selectedKind() entry.Kind {
	return f.kinds[f.kindIdx]
}

func (f *form) minFocus() int {
	if f.kind == goalForm {
		return focusPicker
	}
	return 0
}

func (f *form) setFocus(i int) tea.Cmd {
	if i < f.minFocus() {
		i = f.minFocus()
	}
	if i >= len(f.fields) {
		i = len(f.fields) - 1
	}
	f.focus = i
	var cmd tea.Cmd
	for j := range f.fields {
		if j == i {
			cmd = f.fields[j].input.Focus()
			continue
		}
		f.fields[j].input.Blur()
	}
	return cmd
}

func (f *form) last() bool {
	return f.focus == len(f.fields)-1
}

// formResult is what a key press did to the form.
type formResult int

const (
	formPending formResult = iota
	formCancel
	formSubmit
)

func (f *form) update(msg tea.KeyPressMsg) (formResult, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return formCancel, nil
	case "tab", "down":
		return formPending, f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return formPending, f.setFocus(f.focus - 1)
	case "enter":
		if f.last() {
			return formSubmit, nil
		}
		return formPending, f.setFocus(f.focus + 1)
	}

	if f.focus == focusPicker {
		switch msg.String() {
		case "left", "h":
			f.kindIdx = (f.kindIdx + len(f.kinds) - 1) % len(f.kinds)
			f.rebuildGoalFields()
		case "right", "l":
			f.kindIdx = (f.kindIdx + 1) % len(f.kinds)
			f.rebuildGoalFields()
		}
		return formPending, nil
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return formPending, cmd
}

func (f *form) value(key string) string {
	for _, fl := range f.fields {
		if fl.key == key {
			return strings.TrimSpace(fl.input.Value())
		}
	}
	return ""
}

func (f *form) intValue(key string) (int, error) {
	v := f.value(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", key)
	}
	return n, nil
}

func (f *form) floatValue(key string) (float64, error) {
	v := f.value(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return n, nil
}

// goalFields converts the form into goal fields for the selected kind.
func (f *form) goalFields() (entry.Fields, error) {
	out := entry.Fields{Name: f.value("name")}
	var err error
	ints := []struct {
		key    string
		target *int
	}{
		{"miles", &out.Miles},
		{"pace-hours", &out.PaceHours},
		{"pace-minutes", &out.PaceMinutes},
		{"hours", &out.DurationHours},
		{"minutes", &out.DurationMinutes},
	}
	for _, i := range ints {
		if *i.target, err = f.intValue(i.key); err != nil {
			return entry.Fields{}, err
		}
	}
	if out.Fraction, err = f.floatValue("fraction"); err != nil {
		return entry.Fields{}, err
	}
	return out, nil
}

// run converts the form into a run dated relative to now.
func (f *form) run(now time.Time) (entry.Run, error) {
	name := f.value("name")
	if name == "" {
		return entry.Run{}, errors.New("name is required")
	}
	miles, err := f.floatValue("miles")
	if err != nil {
		return entry.Run{}, err
	}
	if miles < 0 {
		return entry.Run{}, errors.New("miles must not be negative")
	}
	pace, err := timeutil.ParseTime(f.value("pace"))
	if err != nil {
		return entry.Run{}, fmt.Errorf("pace: %w", err)
	}
	duration, err := timeutil.ParseTime(f.value("duration"))
	if err != nil {
		return entry.Run{}, fmt.Errorf("duration: %w", err)
	}
	r := entry.NewRun(name, miles, pace, duration)
	if f.value("date") == "" {
		r.Date = entry.Timestamp{Time: now}
		return r, nil
	}
	day, err := timeutil.ParseDay(f.value("date"), now)
	if err != nil {
		return entry.Run{}, err
	}
	r.Date = entry.Timestamp{Time: day}
	return r, nil
}

func (f *form) view(th theme.Theme, width int) string {
	lines := []string{th.Modal.Title.Render(f.title), ""}

	if f.kind == goalForm {
		label := th.Modal.Label
		if f.focus == focusPicker {
			label = th.Modal.Focused
		}
		opts := make([]string, 0, len(f.kinds))
		for i, k := range f.kinds {
			style := th.Modal.Option
			if i == f.kindIdx {
				style = th.Modal.Chosen
			}
			opts = append(opts, style.Render(string(k)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			label.Render("Kind"), lipgloss.JoinHorizontal(lipgloss.Top, opts...)))
	}

	for i, fl := range f.fields {
		label := th.Modal.Label
		if i == f.focus {
			label = th.Modal.Focused
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(fl.label), fl.input.View()))
	}

	lines = append(lines, "")
	if f.err != "" {
		lines = append(lines, th.Footer.Error.Render(f.err))
	} else {
		hint := "tab next · enter save · esc cancel"
		if f.kind == goalForm {
			hint = "←/→ kind · " + hint
		}
		lines = append(lines, th.Footer.Help.Render(hint))
	}

	frame := th.Modal.Frame
	if width > 8 {
		frame = frame.Width(min(width-4, 72))
	}
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
