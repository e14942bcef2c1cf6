package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - headings, prompt
	Secondary lipgloss.Color // Gold/orange - banner gradient end

	// Text hierarchy (most to least prominent)
	FgBase  lipgloss.Color
	FgMuted lipgloss.Color

	Border lipgloss.Color

	// Status colors
	Success lipgloss.Color // Green - playing, created
	Error   lipgloss.Color // Red - failed operations
	Warning lipgloss.Color // Yellow/orange - paused, no-op reports

	styles *Styles
}

// Styles contains pre-built lipgloss styles for the command loop.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Heading   lipgloss.Style // list headers ("Showing all playlists:")
	Prompt    lipgloss.Style
	Playing   lipgloss.Style
	Paused    lipgloss.Style
	StatusBar lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:  lipgloss.Color("#c0c0c0"),
	FgMuted: lipgloss.Color("#808080"),

	Border: lipgloss.Color("#585858"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Base:    lipgloss.NewStyle().Foreground(t.FgBase),
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Heading: lipgloss.NewStyle().Foreground(t.Primary),
		Prompt:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Playing: lipgloss.NewStyle().Foreground(t.Success),
		Paused:  lipgloss.NewStyle().Foreground(t.Warning),
		StatusBar: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
