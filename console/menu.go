package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuItem runs Action when Binding matches a key.
type MenuItem struct {
	Binding key.Binding
	Action  func() error
}

// Menu is a set of single-key commands.
type Menu struct {
	Title string
	Items []MenuItem
}

// Dispatch runs the first enabled item whose binding matches msg.
func (m *Menu) Dispatch(msg tea.KeyMsg) (bool, error) {
	for _, it := range m.Items {
		if !key.Matches(msg, it.Binding) {
			continue
		}
		if it.Action == nil {
			return true, nil
		}
		return true, it.Action()
	}
	return false, nil
}

// Render lists the enabled items as "key desc" pairs, using each binding's
// help.
func (m *Menu) Render(s Style) string {
	parts := make([]string, 0, len(m.Items))
	for _, it := range m.Items {
		if !it.Binding.Enabled() {
			continue
		}
		h := it.Binding.Help()
		parts = append(parts, s.MenuKey.Render(h.Key)+" "+s.MenuDesc.Render(h.Desc))
	}

	line := strings.Join(parts, "  ")
	if m.Title == "" {
		return line
	}
	return s.Title.Render(m.Title) + "\n" + line
}
