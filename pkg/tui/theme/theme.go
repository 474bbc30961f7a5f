package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/runlog/pkg/palette"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	List   ListTheme
	Footer FooterTheme
	Modal  ModalTheme
}

// HeaderTheme styles the tab bar and the summary line.
type HeaderTheme struct {
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Summary   lipgloss.Style
	Streak    lipgloss.Style
}

// ListTheme styles goal and run rows.
type ListTheme struct {
	Name     lipgloss.Style
	Selected lipgloss.Style
	Detail   lipgloss.Style
	Meta     lipgloss.Style
	Section  lipgloss.Style
	Empty    lipgloss.Style
}

// FooterTheme groups styles used by the bottom help and status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// ModalTheme styles the goal and run forms and confirmations.
type ModalTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Option  lipgloss.Style
	Chosen  lipgloss.Style
}

// Default returns the built-in theme, drawn from the row palette.
func Default() Theme {
	teal := lipgloss.Color(palette.Default[0])
	mint := lipgloss.Color(palette.Default[1])
	coral := lipgloss.Color(palette.Default[4])
	gold := lipgloss.Color(palette.Default[5])

	tab := lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("244"))

	return Theme{
		Header: HeaderTheme{
			Tab: tab,
			ActiveTab: tab.
				Bold(true).
				Foreground(lipgloss.Color("#ffffff")).
				Background(teal),
			Summary: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Streak:  lipgloss.NewStyle().Bold(true).Foreground(gold),
		},
		List: ListTheme{
			Name:     lipgloss.NewStyle().Bold(true).Padding(0, 1),
			Selected: lipgloss.NewStyle().Bold(true).Foreground(mint),
			Detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(4),
			Meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Section:  lipgloss.NewStyle().Bold(true).Underline(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(mint),
			Error:  lipgloss.NewStyle().Foreground(coral).Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(teal).
				Padding(1, 2),
			Title:   lipgloss.NewStyle().Bold(true).Foreground(mint),
			Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16),
			Focused: lipgloss.NewStyle().Foreground(gold).Bold(true).Width(16),
			Option:  lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("244")),
			Chosen:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#000000")).Background(gold),
		},
	}
}
