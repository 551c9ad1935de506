// Package components holds the reusable pieces of the dashboard UI.
package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"salesdesk/internal/model"
	"salesdesk/internal/tui/themes"
)

// TransactionTable renders one page of transactions.
type TransactionTable struct {
	theme        themes.Theme
	transactions []model.Transaction
	table        table.Model
	width        int
	height       int
}

// NewTransactionTable creates an empty table sized for a page of rows.
func NewTransactionTable(theme themes.Theme) TransactionTable {
	columns := []table.Column{
		{Title: "ID", Width: 10},
		{Title: "Customer", Width: 20},
		{Title: "Product", Width: 22},
		{Title: "Qty", Width: 4},
		{Title: "Amount", Width: 14},
		{Title: "Date", Width: 10},
		{Title: "Region", Width: 8},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return TransactionTable{
		theme:  theme,
		table:  t,
		width:  80,
		height: 16,
	}
}

// SetTransactions replaces the visible page.
func (m *TransactionTable) SetTransactions(txns []model.Transaction) {
	m.transactions = txns
	m.table.SetRows(m.buildRows())
	if m.table.Cursor() >= len(txns) {
		m.table.SetCursor(max(0, len(txns)-1))
	}
}

// Selected returns the transaction under the cursor, if any.
func (m TransactionTable) Selected() (model.Transaction, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.transactions) {
		return model.Transaction{}, false
	}
	return m.transactions[i], true
}

// Update handles messages.
func (m TransactionTable) Update(msg tea.Msg) (TransactionTable, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table.
func (m TransactionTable) View() string {
	if len(m.transactions) == 0 {
		return m.theme.Faint.Render("No transactions match the current filters.")
	}
	return m.table.View()
}

// Resize updates the component size.
func (m *TransactionTable) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(3, height-2))
	m.updateColumnWidths()
}

func (m *TransactionTable) buildRows() []table.Row {
	rows := make([]table.Row, 0, len(m.transactions))
	for _, txn := range m.transactions {
		status := m.theme.StatusStyle(txn.OrderStatus).Render(txn.OrderStatus)
		rows = append(rows, table.Row{
			txn.DisplayID(),
			truncate(txn.CustomerName, 20),
			truncate(txn.ProductName, 22),
			strconv.Itoa(txn.Quantity),
			model.FormatAmount(txn.TotalAmount, txn.Currency),
			txn.Date.Display(),
			txn.Region,
			status,
		})
	}
	return rows
}

func (m *TransactionTable) updateColumnWidths() {
	availableWidth := m.width - 4
	if availableWidth < 90 {
		availableWidth = 90
	}

	columns := []table.Column{
		{Title: "ID", Width: 10},
		{Title: "Customer", Width: max(14, int(float64(availableWidth)*0.20))},
		{Title: "Product", Width: max(16, int(float64(availableWidth)*0.24))},
		{Title: "Qty", Width: 4},
		{Title: "Amount", Width: max(12, int(float64(availableWidth)*0.15))},
		{Title: "Date", Width: 10},
		{Title: "Region", Width: 8},
		{Title: "Status", Width: 10},
	}
	m.table.SetColumns(columns)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

