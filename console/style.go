package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style controls how console output is decorated.
type Style struct {
	Title  lipgloss.Style
	Prompt lipgloss.Style

	MenuKey  lipgloss.Style
	MenuDesc lipgloss.Style

	Priority lipgloss.Style
	Task     lipgloss.Style
	Empty    lipgloss.Style

	Status lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyle builds the default palette on r.
func DefaultStyle(r *lipgloss.Renderer) Style {
	muted := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Title:    r.NewStyle().Bold(true),
		Prompt:   r.NewStyle().Foreground(lipgloss.Color("39")),
		MenuKey:  r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		MenuDesc: muted,
		Priority: r.NewStyle().Foreground(lipgloss.Color("250")),
		Task:     r.NewStyle(),
		Empty:    muted.Italic(true),
		Status:   r.NewStyle().Foreground(lipgloss.Color("114")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// renderLines renders each line of s on its own. Render pads multi-line
// text to its widest line, which would move the column the editor starts at.
func renderLines(st lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = st.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
