package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"salesdesk/internal/model"
	"salesdesk/internal/tui/themes"
)

// DeleteConfirmedMsg is sent when the user confirms a deletion.
type DeleteConfirmedMsg struct {
	ID string
}

// DeleteCancelledMsg is sent when the prompt is dismissed.
type DeleteCancelledMsg struct{}

// ConfirmDelete is the yes/no prompt shown before a record is removed.
type ConfirmDelete struct {
	theme  themes.Theme
	txn    model.Transaction
	yes    bool
	width  int
	height int
}

// NewConfirmDelete creates a prompt for txn, defaulting to "No".
func NewConfirmDelete(txn model.Transaction, theme themes.Theme) ConfirmDelete {
	return ConfirmDelete{theme: theme, txn: txn, width: 80, height: 24}
}

// Resize updates the prompt size.
func (m *ConfirmDelete) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m ConfirmDelete) Update(msg tea.Msg) (ConfirmDelete, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "h", "left", "l", "right", "tab":
		m.yes = !m.yes
	case "y":
		m.yes = true
		return m.confirm()
	case "n", "esc":
		return m, func() tea.Msg { return DeleteCancelledMsg{} }
	case "enter":
		if m.yes {
			return m.confirm()
		}
		return m, func() tea.Msg { return DeleteCancelledMsg{} }
	}
	return m, nil
}

func (m ConfirmDelete) confirm() (ConfirmDelete, tea.Cmd) {
	id := m.txn.ID
	return m, func() tea.Msg { return DeleteConfirmedMsg{ID: id} }
}

// View renders the prompt.
func (m ConfirmDelete) View() string {
	question := "Delete transaction " + m.txn.DisplayID() + " for " + m.txn.CustomerName + "?"

	var yes, no string
	if m.yes {
		yes = m.theme.StatusError.Render("[ Yes ]")
		no = m.theme.Normal.Render("  No  ")
	} else {
		yes = m.theme.Normal.Render("  Yes  ")
		no = m.theme.Selected.Render("[ No ]")
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Confirm Delete"),
		m.theme.Normal.Render(question),
		m.theme.Faint.Render("This cannot be undone."),
		lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no),
	)

	box := m.theme.RoundedBox.BorderForeground(m.theme.Error).Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
