package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient colors each grapheme of text along a blend from one hex color to
// another. Non-hex colors render text with the from color only.
func Gradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	start, err1 := colorful.Hex(string(from))
	end, err2 := colorful.Hex(string(to))
	if err1 != nil || err2 != nil || len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		c := start.BlendLuv(end, float64(i)/last).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(cluster))
	}
	return b.String()
}

// Banner renders the application title with the theme gradient.
func (t *Theme) Banner(text string) string {
	return Gradient(text, t.Primary, t.Secondary)
}
