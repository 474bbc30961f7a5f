package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/runlog/pkg/app"
	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/tracker"
)

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

var (
	spacing = strings.Repeat(" ", len("171dff69  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, noun)
	if count != 1 {
		_, _ = c.Fprint(pp.out(), "s")
	}
	_, _ = c.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// row prints the name line followed by the indented detail lines.
func (pp *PrettyPrint) row(id entry.ID, name, suffix string, lines []string) {
	t := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	if pp.ShowID {
		_, _ = y.Fprint(pp.out(), id.Short())
		_, _ = y.Fprint(pp.out(), strings.Repeat(" ", len(spacing)-len(id.Short())))
	}
	if name == "" {
		name = "<unnamed>"
	}
	_, _ = t.Fprint(pp.out(), name)
	if suffix != "" {
		_, _ = f.Fprintf(pp.out(), "  %s", suffix)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
	for _, l := range lines {
		if pp.ShowID {
			_, _ = fmt.Fprint(pp.out(), spacing)
		}
		_, _ = fmt.Fprintf(pp.out(), "  %s\n", l)
	}
}

func (pp *PrettyPrint) Goals(goals ...entry.Goal) {
	if len(goals) == 0 {
		pp.none()
		return
	}
	for _, g := range goals {
		pp.row(g.ID, g.GoalName, "", g.Lines())
	}
	pp.NewLine()
}

func (pp *PrettyPrint) Completed(completed ...entry.CompletedGoal) {
	if len(completed) == 0 {
		pp.none()
		return
	}
	for _, c := range completed {
		pp.row(c.ID, c.GoalName, "completed "+c.CompletedAt.Local().Format(entry.LayoutUS), c.Lines())
	}
	pp.NewLine()
}

func (pp *PrettyPrint) Runs(runs ...entry.Run) {
	if len(runs) == 0 {
		pp.none()
		return
	}
	for _, r := range runs {
		pp.row(r.ID, r.GoalName, r.Date.DayLabel(), r.Lines())
	}
	pp.NewLine()
}

// Placed confirms where a logged run ended up.
func (pp *PrettyPrint) Placed(r entry.Run, placed tracker.Placement) {
	g := color.New(color.FgGreen)
	switch placed {
	case tracker.PlacedToday:
		_, _ = g.Fprintf(pp.out(), "Logged %q for today.\n", r.GoalName)
	default:
		_, _ = g.Fprintf(pp.out(), "Logged %q to history for %s.\n", r.GoalName, r.Date.DayLabel())
	}
}

func (pp *PrettyPrint) Summary(sum tracker.Summary) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Streak"), days(sum.Streak))
	tbl.AddRow(bold.Sprint("Active goals"), sum.ActiveGoals)
	tbl.AddRow(bold.Sprint("Completed goals"), sum.CompletedGoals)
	tbl.AddRow(bold.Sprint("Today"), fmt.Sprintf("%d runs, %.2f miles", sum.TodayRuns, sum.TodayMiles))
	tbl.AddRow(bold.Sprint("All time"), fmt.Sprintf("%d runs, %.2f miles", sum.TotalRuns, sum.TotalMiles))
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) Report(result app.ReportResult, label string) {
	since := result.Since.Local().Format("2006-01-02 15:04")
	until := result.Until.Local().Format("2006-01-02 15:04")
	pp.Title(fmt.Sprintf("Report · last %s (%s → %s)", label, since, until))

	if len(result.Days) == 0 {
		pp.none()
		return
	}
	f := color.New(color.Faint)
	for _, d := range result.Days {
		_, _ = fmt.Fprintln(pp.out(), "")
		_, _ = color.New(color.Bold).Fprint(pp.out(), d.Day.Format(entry.LayoutUS))
		_, _ = f.Fprintf(pp.out(), "  %.2f miles\n", d.Miles)
		for _, c := range d.Completed {
			pp.row(c.ID, "✓ "+c.GoalName, "", c.Lines())
		}
		for _, r := range d.Runs {
			pp.row(r.ID, r.GoalName, "", r.Lines())
		}
	}
	pp.NewLine()
	_, _ = f.Fprintf(pp.out(), "%d goals completed, %d runs, %.2f miles\n", result.Completed, result.Runs, result.Miles)
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
