package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"salesdesk/internal/query"
	"salesdesk/internal/tui/themes"
)

// SortChosenMsg is sent when the user picks an ordering.
type SortChosenMsg struct {
	Key query.SortKey
}

// SortCancelledMsg is sent when the menu is dismissed.
type SortCancelledMsg struct{}

// SortMenu is the modal sort picker.
type SortMenu struct {
	theme   themes.Theme
	current query.SortKey
	cursor  int
	width   int
	height  int
}

// NewSortMenu creates a menu with the cursor on the active ordering.
func NewSortMenu(current query.SortKey, theme themes.Theme) SortMenu {
	cursor := 0
	for i, s := range query.SortKeys {
		if s.Key == current {
			cursor = i
			break
		}
	}
	return SortMenu{theme: theme, current: current, cursor: cursor, width: 80, height: 24}
}

// Resize updates the menu size.
func (m *SortMenu) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m SortMenu) Update(msg tea.Msg) (SortMenu, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.cursor < len(query.SortKeys)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		chosen := query.SortKeys[m.cursor].Key
		return m, func() tea.Msg { return SortChosenMsg{Key: chosen} }
	case "esc", "s":
		return m, func() tea.Msg { return SortCancelledMsg{} }
	}
	return m, nil
}

// View renders the menu.
func (m SortMenu) View() string {
	lines := []string{m.theme.Title.Render("Sort By")}
	for i, s := range query.SortKeys {
		mark := "( )"
		if s.Key == m.current {
			mark = "(•)"
		}
		line := mark + " " + s.Label
		if i == m.cursor {
			line = m.theme.Selected.Render(line)
		} else {
			line = m.theme.Normal.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, m.theme.Faint.Render("[Enter] apply  [Esc] cancel"))

	box := m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
