package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"salesdesk/internal/model"
	"salesdesk/internal/query"
	"salesdesk/internal/tui/themes"
)

// FormSubmittedMsg is sent when the form passes validation.
type FormSubmittedMsg struct {
	Transaction model.Transaction
}

// FormCancelledMsg is sent when the form is dismissed.
type FormCancelledMsg struct{}

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSelect
)

type formField struct {
	label    string
	kind     fieldKind
	input    textinput.Model
	options  []string
	optIndex int
}

func (f formField) value() string {
	if f.kind == fieldSelect {
		if len(f.options) == 0 {
			return ""
		}
		return f.options[f.optIndex]
	}
	return strings.TrimSpace(f.input.Value())
}

// Field positions within the form.
const (
	fieldCustomerName = iota
	fieldCountryCode
	fieldPhone
	fieldProductName
	fieldQuantity
	fieldAmount
	fieldDiscount
	fieldDate
	fieldCurrency
	fieldRegion
	fieldGender
	fieldAge
	fieldCategory
	fieldPayment
	fieldTags
	fieldImage
	fieldCount
)

// TransactionForm is the modal create/edit form. Editing pre-fills every
// field from the record, including the phone split into country code and
// local number.
type TransactionForm struct {
	theme    themes.Theme
	original model.Transaction
	fields   []formField
	cursor   int
	errText  string
	editing  bool
	width    int
	height   int
}

// NewTransactionForm builds a form for txn. A record without a server ID
// is treated as a new draft.
func NewTransactionForm(txn model.Transaction, theme themes.Theme) TransactionForm {
	code, local := model.SplitPhone(txn.PhoneNumber)

	codes := make([]string, len(model.CountryCodes))
	for i, cc := range model.CountryCodes {
		codes[i] = cc.Code
	}
	currencies := make([]string, len(model.Currencies))
	for i, c := range model.Currencies {
		currencies[i] = c.Code
	}

	fields := make([]formField, fieldCount)
	fields[fieldCustomerName] = textField("Customer Name", txn.CustomerName, 40)
	fields[fieldCountryCode] = selectField("Country Code", codes, code)
	fields[fieldPhone] = textField("Phone", local, 15)
	fields[fieldProductName] = textField("Product Name", txn.ProductName, 40)
	fields[fieldQuantity] = textField("Quantity", strconv.Itoa(txn.Quantity), 6)
	fields[fieldAmount] = textField("Total Amount", formatAmountInput(txn.TotalAmount), 12)
	fields[fieldDiscount] = textField("Discount", formatAmountInput(txn.Discount), 12)
	fields[fieldDate] = textField("Date (yyyy-mm-dd)", txn.Date.ISO(), 10)
	fields[fieldCurrency] = selectField("Currency", currencies, txn.Currency)
	fields[fieldRegion] = selectField("Region", withBlank(query.DimensionOptions[query.DimRegion]), txn.Region)
	fields[fieldGender] = selectField("Gender", withBlank(query.DimensionOptions[query.DimGender]), txn.Gender)
	fields[fieldAge] = textField("Age", zeroBlank(txn.Age), 3)
	fields[fieldCategory] = selectField("Category", withBlank(query.DimensionOptions[query.DimCategory]), txn.Category)
	fields[fieldPayment] = selectField("Payment Method", withBlank(query.DimensionOptions[query.DimPayment]), txn.PaymentMethod)
	fields[fieldTags] = textField("Tags (comma separated)", strings.Join(txn.Tags, ", "), 60)
	fields[fieldImage] = textField("Image URL", txn.ImageURL, 120)
	fields[fieldImage].input.Width = 40

	fields[fieldCustomerName].input.Focus()

	return TransactionForm{
		theme:    theme,
		original: txn,
		fields:   fields,
		editing:  txn.ID != "",
		width:    80,
		height:   24,
	}
}

func textField(label, value string, limit int) formField {
	in := textinput.New()
	in.CharLimit = limit
	in.Width = max(limit, 20)
	in.SetValue(value)
	return formField{label: label, kind: fieldText, input: in}
}

func selectField(label string, options []string, current string) formField {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	return formField{label: label, kind: fieldSelect, options: options, optIndex: idx}
}

func withBlank(options []string) []string {
	return append([]string{""}, options...)
}

func zeroBlank(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func formatAmountInput(a model.Amount) string {
	if a == 0 {
		return ""
	}
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}

// Resize updates the form size.
func (m *TransactionForm) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m TransactionForm) Update(msg tea.Msg) (TransactionForm, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		return m, func() tea.Msg { return FormCancelledMsg{} }

	case "enter":
		txn, err := m.assemble()
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return FormSubmittedMsg{Transaction: txn} }

	case "tab", "down":
		m.focusField((m.cursor + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		m.focusField((m.cursor + fieldCount - 1) % fieldCount)
		return m, nil
	}

	field := &m.fields[m.cursor]
	if field.kind == fieldSelect {
		switch key.String() {
		case "l", "right", " ":
			field.optIndex = (field.optIndex + 1) % len(field.options)
		case "h", "left":
			field.optIndex = (field.optIndex + len(field.options) - 1) % len(field.options)
		}
		return m, nil
	}

	var cmd tea.Cmd
	field.input, cmd = field.input.Update(key)
	return m, cmd
}

func (m *TransactionForm) focusField(i int) {
	if m.fields[m.cursor].kind == fieldText {
		m.fields[m.cursor].input.Blur()
	}
	m.cursor = i
	if m.fields[m.cursor].kind == fieldText {
		m.fields[m.cursor].input.Focus()
	}
}

// assemble parses the inputs back into a transaction and validates it.
func (m TransactionForm) assemble() (model.Transaction, error) {
	txn := m.original

	txn.CustomerName = m.fields[fieldCustomerName].value()
	txn.ProductName = m.fields[fieldProductName].value()

	if local := m.fields[fieldPhone].value(); local != "" {
		if !model.DigitsOnly(local) {
			return txn, fmt.Errorf("phone number must be digits only")
		}
		txn.PhoneNumber = model.JoinPhone(m.fields[fieldCountryCode].value(), local)
	} else {
		txn.PhoneNumber = ""
	}

	qty, err := strconv.Atoi(m.fields[fieldQuantity].value())
	if err != nil || qty < 1 {
		return txn, fmt.Errorf("quantity must be a whole number of at least 1")
	}
	txn.Quantity = qty

	amount, err := parseAmountInput(m.fields[fieldAmount].value())
	if err != nil {
		return txn, fmt.Errorf("total amount must be a non-negative number")
	}
	txn.TotalAmount = amount

	discount, err := parseAmountInput(m.fields[fieldDiscount].value())
	if err != nil {
		return txn, fmt.Errorf("discount must be a non-negative number")
	}
	txn.Discount = discount

	date, err := model.ParseDate(m.fields[fieldDate].value())
	if err != nil {
		return txn, fmt.Errorf("date must be yyyy-mm-dd")
	}
	txn.Date = date

	txn.Currency = m.fields[fieldCurrency].value()
	txn.Region = m.fields[fieldRegion].value()
	txn.Gender = m.fields[fieldGender].value()
	txn.Category = m.fields[fieldCategory].value()
	txn.PaymentMethod = m.fields[fieldPayment].value()

	if age := m.fields[fieldAge].value(); age != "" {
		n, err := strconv.Atoi(age)
		if err != nil || n < 0 {
			return txn, fmt.Errorf("age must be a non-negative whole number")
		}
		txn.Age = n
	} else {
		txn.Age = 0
	}

	txn.Tags = nil
	for _, tag := range strings.Split(m.fields[fieldTags].value(), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			txn.Tags = append(txn.Tags, tag)
		}
	}

	txn.ImageURL = m.fields[fieldImage].value()

	if err := txn.Validate(); err != nil {
		return txn, err
	}
	return txn, nil
}

func parseAmountInput(s string) (model.Amount, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return model.Amount(v), nil
}

// View renders the form.
func (m TransactionForm) View() string {
	title := "Add Transaction"
	if m.editing {
		title = "Edit Transaction"
	}

	lines := []string{m.theme.Title.Render(title)}
	for i, f := range m.fields {
		label := fmt.Sprintf("%-24s", f.label)
		if i == m.cursor {
			label = m.theme.Bold.Render(label)
		} else {
			label = m.theme.Subtitle.Render(label)
		}

		var value string
		if f.kind == fieldSelect {
			display := f.value()
			if display == "" {
				display = "(none)"
			}
			value = "‹ " + display + " ›"
			if i == m.cursor {
				value = m.theme.Selected.Render(value)
			} else {
				value = m.theme.Normal.Render(value)
			}
		} else {
			value = f.input.View()
		}
		lines = append(lines, label+value)
	}

	if m.errText != "" {
		lines = append(lines, m.theme.StatusError.Render(m.errText))
	}
	lines = append(lines, m.theme.Faint.Render("[Tab/↑↓] field  [←/→] choose  [Enter] save  [Esc] cancel"))

	box := m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
