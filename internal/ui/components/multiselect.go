package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Atchuta30/JEE-Prep-AI/internal/ui/theme"
)

// MultiSelect is a vertical list where any number of items can be
// checked. Used for picking the topics a paper should cover.
type MultiSelect struct {
	Items   []string
	Cursor  int
	checked map[int]bool

	// MaxVisible limits how many rows render at once; 0 means all.
	MaxVisible int
	offset     int
}

// NewMultiSelect creates a multi-select over the given items.
func NewMultiSelect(items []string, maxVisible int) MultiSelect {
	return MultiSelect{
		Items:      items,
		checked:    make(map[int]bool),
		MaxVisible: maxVisible,
	}
}

// Update handles navigation and toggling.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	case "space", " ", "enter":
		m.checked[m.Cursor] = !m.checked[m.Cursor]
	}

	m.scrollToCursor()
	return m, nil
}

func (m *MultiSelect) scrollToCursor() {
	if m.MaxVisible <= 0 {
		return
	}
	if m.Cursor < m.offset {
		m.offset = m.Cursor
	}
	if m.Cursor >= m.offset+m.MaxVisible {
		m.offset = m.Cursor - m.MaxVisible + 1
	}
}

// Selected returns the checked items in list order.
func (m MultiSelect) Selected() []string {
	var out []string
	for i, item := range m.Items {
		if m.checked[i] {
			out = append(out, item)
		}
	}
	return out
}

// Count returns how many items are checked.
func (m MultiSelect) Count() int {
	n := 0
	for _, v := range m.checked {
		if v {
			n++
		}
	}
	return n
}

// View renders the visible window of the list.
func (m MultiSelect) View() string {
	start, end := 0, len(m.Items)
	if m.MaxVisible > 0 && end > m.MaxVisible {
		start = m.offset
		end = start + m.MaxVisible
		if end > len(m.Items) {
			end = len(m.Items)
		}
	}

	var s string
	if start > 0 {
		s += lipgloss.NewStyle().Foreground(theme.TextDim).Render("    ↑ more") + "\n"
	}
	for i := start; i < end; i++ {
		check := "[ ]"
		if m.checked[i] {
			check = "[x]"
		}
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}

		line := prefix + check + " " + m.Items[i]
		switch {
		case i == m.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case m.checked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	if end < len(m.Items) {
		s += lipgloss.NewStyle().Foreground(theme.TextDim).Render("    ↓ more") + "\n"
	}
	return s
}
