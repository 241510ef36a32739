package ui

import "github.com/charmbracelet/lipgloss"

// palette is the raw color set behind a theme.
type palette struct {
	accent    lipgloss.Color
	accentFg  lipgloss.Color
	text      lipgloss.Color
	dim       lipgloss.Color
	danger    lipgloss.Color
	highlight lipgloss.Color
}

var lightPalette = palette{
	accent:    lipgloss.Color("#25A065"),
	accentFg:  lipgloss.Color("#FFFDF5"),
	text:      lipgloss.Color("#1A1A1A"),
	dim:       lipgloss.Color("#8A8A8A"),
	danger:    lipgloss.Color("#C53B53"),
	highlight: lipgloss.Color("#DCE0E8"),
}

var darkPalette = palette{
	accent:    lipgloss.Color("#25A065"),
	accentFg:  lipgloss.Color("#FFFDF5"),
	text:      lipgloss.Color("#CDD6F4"),
	dim:       lipgloss.Color("#6C7086"),
	danger:    lipgloss.Color("#F38BA8"),
	highlight: lipgloss.Color("#313244"),
}

// Theme bundles every style the screens render with. Screens never
// reach for lipgloss directly, so swapping the theme restyles the whole
// tree on the next render.
type Theme struct {
	Dark bool

	Screen   lipgloss.Style
	Title    lipgloss.Style
	Logo     lipgloss.Style
	Item     lipgloss.Style
	ItemDone lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Hint     lipgloss.Style
	Input    lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// ThemeFor builds the style set for the requested color scheme.
func ThemeFor(dark bool) Theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return Theme{
		Dark:     dark,
		Screen:   lipgloss.NewStyle().Padding(1, 2),
		Title:    lipgloss.NewStyle().Foreground(p.accentFg).Background(p.accent).Padding(0, 1).Bold(true),
		Logo:     lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Item:     lipgloss.NewStyle().Foreground(p.text),
		ItemDone: lipgloss.NewStyle().Foreground(p.dim).Strikethrough(true),
		Selected: lipgloss.NewStyle().Background(p.highlight),
		Cursor:   lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Hint:     lipgloss.NewStyle().Foreground(p.dim),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(1).Margin(1),
		Error:    lipgloss.NewStyle().Foreground(p.danger).Bold(true),
		Help:     lipgloss.NewStyle().Foreground(p.dim),
	}
}
