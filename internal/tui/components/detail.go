package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"salesdesk/internal/model"
	"salesdesk/internal/tui/themes"
)

// DetailView renders a single transaction's full record.
type DetailView struct {
	theme  themes.Theme
	txn    model.Transaction
	width  int
	height int
}

// NewDetailView creates a detail view for txn.
func NewDetailView(txn model.Transaction, theme themes.Theme) DetailView {
	return DetailView{theme: theme, txn: txn, width: 80, height: 24}
}

// Resize updates the view size.
func (m *DetailView) Resize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the record.
func (m DetailView) View() string {
	t := m.txn

	discount := model.FormatAmount(t.Discount, t.Currency)
	if t.Discount == 0 {
		discount = m.theme.Faint.Render("none")
	}
	tags := strings.Join(t.Tags, ", ")
	if tags == "" {
		tags = m.theme.Faint.Render("none")
	}

	rows := [][2]string{
		{"Transaction", t.DisplayID()},
		{"Customer", t.CustomerName},
		{"Customer ID", t.CustomerID},
		{"Phone", t.PhoneNumber},
		{"Product", t.ProductName},
		{"Product ID", t.ProductID},
		{"Employee", t.EmployeeName},
		{"Quantity", fmt.Sprintf("%d", t.Quantity)},
		{"Total Amount", model.FormatAmount(t.TotalAmount, t.Currency)},
		{"Final Amount", model.FormatAmount(t.FinalAmount, t.Currency)},
		{"Discount", discount},
		{"Date", t.Date.Display()},
		{"Status", m.theme.StatusStyle(t.OrderStatus).Render(t.OrderStatus)},
		{"Region", t.Region},
		{"Gender", t.Gender},
		{"Age", zeroBlank(t.Age)},
		{"Category", t.Category},
		{"Payment", t.PaymentMethod},
		{"Tags", tags},
	}

	lines := []string{m.theme.Title.Render("Transaction Details")}
	for _, row := range rows {
		value := row[1]
		if value == "" {
			value = m.theme.Faint.Render("-")
		}
		lines = append(lines, m.theme.Subtitle.Render(fmt.Sprintf("%-14s", row[0]))+value)
	}
	lines = append(lines, m.theme.Faint.Render("[e] edit  [d] delete  [i] invoice  [Esc] back"))

	box := m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Transaction returns the record being shown.
func (m DetailView) Transaction() model.Transaction {
	return m.txn
}

// Invoice renders the record as a plain-text invoice suitable for the
// terminal scrollback or a printer.
func (m DetailView) Invoice() string {
	t := m.txn
	var b strings.Builder

	b.WriteString("================ INVOICE ================\n")
	fmt.Fprintf(&b, "Transaction: %s\n", t.DisplayID())
	fmt.Fprintf(&b, "Date:        %s\n", t.Date.Display())
	b.WriteString("-----------------------------------------\n")
	fmt.Fprintf(&b, "Billed to:   %s\n", t.CustomerName)
	if t.PhoneNumber != "" {
		fmt.Fprintf(&b, "Phone:       %s\n", t.PhoneNumber)
	}
	b.WriteString("-----------------------------------------\n")
	fmt.Fprintf(&b, "%-24s x%-3d %s\n", t.ProductName, t.Quantity,
		model.FormatAmount(t.TotalAmount, t.Currency))
	if t.Discount > 0 {
		fmt.Fprintf(&b, "%-29s-%s\n", "Discount", model.FormatAmount(t.Discount, t.Currency))
	}
	b.WriteString("-----------------------------------------\n")
	fmt.Fprintf(&b, "%-29s%s\n", "Total", model.FormatAmount(t.FinalAmount, t.Currency))
	fmt.Fprintf(&b, "Payment:     %s\n", t.PaymentMethod)
	fmt.Fprintf(&b, "Status:      %s\n", t.OrderStatus)
	b.WriteString("=========================================")
	return b.String()
}
