// Package tui is the interactive terminal front end: goals, today's runs and
// history on three tabs, with the summary line on top.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/runlog/pkg/app"
	"tableflip.dev/runlog/pkg/entry"
	"tableflip.dev/runlog/pkg/palette"
	"tableflip.dev/runlog/pkg/tui/theme"
)

type tab int

const (
	tabGoals tab = iota
	tabToday
	tabHistory
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabGoals:
		return "Goals"
	case tabToday:
		return "Today"
	case tabHistory:
		return "History"
	}
	return ""
}

// confirmation is a pending destructive action.
type confirmation struct {
	prompt string
	action func() (string, error)
}

// Model is the root Bubble Tea model. Every store read and write happens in
// Update or View, on the program's event loop.
type Model struct {
	ctx     context.Context
	service *app.Service
	colors  *palette.Assigner
	theme   theme.Theme

	width  int
	height int

	tab    tab
	cursor [tabCount]int

	form    *form
	confirm *confirmation
	help    *helpOverlay

	status    string
	statusErr bool
}

// New constructs a root model over the provided service.
func New(service *app.Service) *Model {
	return &Model{
		ctx:     context.Background(),
		service: service,
		colors:  palette.MustNew(),
		theme:   theme.Default(),
		width:   80,
		height:  24,
	}
}

// Run launches the Bubble Tea program.
func Run(service *app.Service) error {
	p := tea.NewProgram(New(service), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update routes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		if m.help != nil {
			m.help.setSize(m.helpSize())
		}
	case tea.KeyPressMsg:
		if v.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.form != nil:
			return m, m.updateForm(v)
		case m.confirm != nil:
			m.updateConfirm(v)
			return m, nil
		case m.help != nil:
			switch v.String() {
			case "?", "esc", "q":
				m.help = nil
				return m, nil
			}
			return m, m.help.update(v)
		}
		return m.handleKey(v)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % tabCount
	case "shift+tab", "left", "h":
		m.tab = (m.tab + tabCount - 1) % tabCount
	case "1":
		m.tab = tabGoals
	case "2":
		m.tab = tabToday
	case "3":
		m.tab = tabHistory
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "n":
		return m, m.openForm()
	case "x":
		m.askComplete()
	case "d":
		m.askDelete()
	case "?":
		w, h := m.helpSize()
		m.help = newHelpOverlay(m.theme.Modal.Frame, w, h)
	}
	return m, nil
}

func (m *Model) helpSize() (int, int) {
	return m.width - 2, m.height - 4
}

func (m *Model) rows() int {
	switch m.tab {
	case tabGoals:
		return len(m.service.Goals(m.ctx))
	case tabToday:
		return len(m.service.TodayRuns(m.ctx))
	case tabHistory:
		completed, runs := m.service.History(m.ctx)
		return len(completed) + len(runs)
	}
	return 0
}

func (m *Model) moveCursor(delta int) {
	m.cursor[m.tab] += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := m.rows()
	if m.cursor[m.tab] >= n {
		m.cursor[m.tab] = n - 1
	}
	if m.cursor[m.tab] < 0 {
		m.cursor[m.tab] = 0
	}
}

func (m *Model) setStatus(s string, err error) {
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return
	}
	m.status = s
	m.statusErr = false
}

func (m *Model) openForm() tea.Cmd {
	switch m.tab {
	case tabGoals:
		m.form = newGoalForm()
		return nil
	case tabToday:
		f, cmd := newRunForm()
		m.form = f
		return cmd
	}
	return nil
}

func (m *Model) updateForm(msg tea.KeyPressMsg) tea.Cmd {
	result, cmd := m.form.update(msg)
	switch result {
	case formCancel:
		m.form = nil
		m.setStatus("Cancelled", nil)
	case formSubmit:
		m.submitForm()
	}
	return cmd
}

func (m *Model) submitForm() {
	f := m.form
	switch f.kind {
	case goalForm:
		fields, err := f.goalFields()
		if err != nil {
			f.err = err.Error()
			return
		}
		g, err := m.service.AddGoal(m.ctx, f.selectedKind(), fields)
		if err != nil {
			f.err = err.Error()
			return
		}
		m.form = nil
		m.cursor[tabGoals] = m.rows() - 1
		m.setStatus(fmt.Sprintf("Added goal %q", g.GoalName), nil)
	case runForm:
		r, err := f.run(m.service.Tracker.Now())
		if err != nil {
			f.err = err.Error()
			return
		}
		placed, err := m.service.LogRun(m.ctx, r)
		if err != nil {
			f.err = err.Error()
			return
		}
		m.form = nil
		m.clampCursor()
		m.setStatus(fmt.Sprintf("Logged %q to %s", r.GoalName, placed), nil)
	}
}

func (m *Model) updateConfirm(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "y", "Y", "enter":
		status, err := m.confirm.action()
		m.confirm = nil
		m.clampCursor()
		m.setStatus(status, err)
	case "n", "N", "esc", "q":
		m.confirm = nil
		m.setStatus("Cancelled", nil)
	}
}

func (m *Model) askComplete() {
	if m.tab != tabGoals {
		return
	}
	m.clampCursor()
	goals := m.service.Goals(m.ctx)
	if len(goals) == 0 {
		return
	}
	g := goals[m.cursor[tabGoals]]
	m.confirm = &confirmation{
		prompt: fmt.Sprintf("Complete %q and move it to history?", g.GoalName),
		action: func() (string, error) {
			if _, err := m.service.CompleteGoal(m.ctx, string(g.ID)); err != nil {
				return "", err
			}
			return fmt.Sprintf("Completed %q", g.GoalName), nil
		},
	}
}

func (m *Model) askDelete() {
	m.clampCursor()
	switch m.tab {
	case tabGoals:
		goals := m.service.Goals(m.ctx)
		if len(goals) == 0 {
			return
		}
		g := goals[m.cursor[tabGoals]]
		m.confirm = &confirmation{
			prompt: fmt.Sprintf("Delete goal %q?", g.GoalName),
			action: func() (string, error) {
				if _, err := m.service.DeleteGoal(m.ctx, string(g.ID)); err != nil {
					return "", err
				}
				return fmt.Sprintf("Deleted %q", g.GoalName), nil
			},
		}
	case tabToday:
		runs := m.service.TodayRuns(m.ctx)
		if len(runs) == 0 {
			return
		}
		r := runs[m.cursor[tabToday]]
		m.confirm = &confirmation{
			prompt: fmt.Sprintf("Delete run %q?", r.GoalName),
			action: func() (string, error) {
				if _, err := m.service.DeleteRun(m.ctx, string(r.ID)); err != nil {
					return "", err
				}
				return fmt.Sprintf("Deleted %q", r.GoalName), nil
			},
		}
	}
}

// View renders the tab bar, summary, active list and footer.
func (m *Model) View() string {
	header := m.renderTabs()
	summary := m.renderSummary()
	footer := m.renderFooter()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(summary) - lipgloss.Height(footer) - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch {
	case m.form != nil:
		body = m.form.view(m.theme, m.width)
	case m.help != nil:
		body = m.help.view()
	default:
		body = strings.Join(m.renderList(bodyHeight), "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, summary, body, footer)
}

func (m *Model) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		style := m.theme.Header.Tab
		if t == m.tab {
			style = m.theme.Header.ActiveTab
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", t+1, t)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderSummary() string {
	sum := m.service.Summary(m.ctx)
	streak := fmt.Sprintf("Streak %d", sum.Streak)
	if sum.Streak == 1 {
		streak += " day"
	} else {
		streak += " days"
	}
	rest := fmt.Sprintf(" · %d goals · %d completed · today %d runs, %.2f mi",
		sum.ActiveGoals, sum.CompletedGoals, sum.TodayRuns, sum.TodayMiles)
	return m.theme.Header.Streak.Render(streak) + m.theme.Header.Summary.Render(rest)
}

func (m *Model) renderFooter() string {
	if m.confirm != nil {
		return m.theme.Footer.Error.Render(m.confirm.prompt + " (y/n)")
	}
	var help string
	switch m.tab {
	case tabGoals:
		help = "n new · x complete · d delete · ↑/↓ move · tab switch · ? help · q quit"
	case tabToday:
		help = "n log run · d delete · ↑/↓ move · tab switch · ? help · q quit"
	case tabHistory:
		help = "↑/↓ scroll · tab switch · ? help · q quit"
	}
	lines := []string{m.theme.Footer.Help.Render(help)}
	if m.status != "" {
		style := m.theme.Footer.Status
		if m.statusErr {
			style = m.theme.Footer.Error
		}
		lines = append(lines, style.Render(m.status))
	}
	return strings.Join(lines, "\n")
}

// row is one rendered list item and its detail lines.
type row struct {
	id    entry.ID
	name  string
	meta  string
	lines []string
}

func (m *Model) tabRows() ([]row, string) {
	var rows []row
	switch m.tab {
	case tabGoals:
		for _, g := range m.service.Goals(m.ctx) {
			rows = append(rows, row{id: g.ID, name: g.GoalName, lines: g.Lines()})
		}
		return rows, "No goals yet. Press n to add one."
	case tabToday:
		for _, r := range m.service.TodayRuns(m.ctx) {
			rows = append(rows, row{id: r.ID, name: r.GoalName, lines: r.Lines()})
		}
		return rows, "No runs today. Press n to log one."
	case tabHistory:
		completed, runs := m.service.History(m.ctx)
		for _, c := range completed {
			rows = append(rows, row{id: c.ID, name: c.GoalName, meta: "completed " + c.CompletedAt.DayLabel(), lines: c.Lines()})
		}
		for _, r := range runs {
			rows = append(rows, row{id: r.ID, name: r.GoalName, meta: r.Date.DayLabel(), lines: r.Lines()})
		}
		return rows, "Nothing in history yet."
	}
	return nil, ""
}

func (m *Model) renderList(height int) []string {
	rows, empty := m.tabRows()
	if len(rows) == 0 {
		return []string{"", m.theme.List.Empty.Render("  " + empty)}
	}

	cursor := m.cursor[m.tab]
	var lines []string
	focusStart, focusEnd := 0, 0
	for i, r := range rows {
		if i == cursor {
			focusStart = len(lines)
		}
		lines = append(lines, m.renderRow(r, i == cursor)...)
		if i == cursor {
			focusEnd = len(lines)
		}
	}
	return window(lines, focusStart, focusEnd, height)
}

func (m *Model) renderRow(r row, selected bool) []string {
	c := m.colors.ColorFor(r.id)
	swatch := m.theme.List.Name.
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(c.Foreground().Hex()))

	marker := "  "
	if selected {
		marker = m.theme.List.Selected.Render("> ")
	}
	name := r.name
	if name == "" {
		name = "<unnamed>"
	}
	avail := m.width - 8 - len(r.meta)
	if avail < 8 {
		avail = 8
	}
	name = truncate.StringWithTail(name, uint(avail), "…")

	head := marker + swatch.Render(name)
	if r.meta != "" {
		head += " " + m.theme.List.Meta.Render(r.meta)
	}
	out := []string{head}
	for _, l := range r.lines {
		out = append(out, m.theme.List.Detail.Render(l))
	}
	return out
}

// window returns at most height lines, scrolled so that [start, end) is
// visible.
func window(lines []string, start, end, height int) []string {
	if len(lines) <= height {
		return lines
	}
	top := 0
	if end > height {
		top = end - height
	}
	if start < top {
		top = start
	}
	bottom := top + height
	if bottom > len(lines) {
		bottom = len(lines)
	}
	return lines[top:bottom]
}
