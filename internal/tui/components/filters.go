package components

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"salesdesk/internal/model"
	"salesdesk/internal/query"
	"salesdesk/internal/tui/themes"
)

// FilterAppliedMsg is sent when the user confirms the filter panel.
type FilterAppliedMsg struct {
	Filters query.Filters
}

// FilterCancelledMsg is sent when the panel is dismissed without applying.
type FilterCancelledMsg struct{}

// Section indexes: 0..4 are the multi-select dimensions in display order,
// then the age range and the date range.
const (
	sectionAge   = 5
	sectionDates = 6
	sectionCount = 7
)

// FilterPanel is the modal filter editor. It works on a copy of the
// filters and only hands them back on apply.
type FilterPanel struct {
	theme     themes.Theme
	filters   query.Filters
	startDate textinput.Model
	endDate   textinput.Model
	section   int
	cursor    int
	width     int
	height    int
}

// NewFilterPanel creates a panel seeded from the current selection.
func NewFilterPanel(filters query.Filters, theme themes.Theme) FilterPanel {
	start := textinput.New()
	start.Placeholder = "yyyy-mm-dd"
	start.CharLimit = 10
	start.Width = 12
	if !filters.StartDate.IsZero() {
		start.SetValue(filters.StartDate.ISO())
	}

	end := textinput.New()
	end.Placeholder = "yyyy-mm-dd"
	end.CharLimit = 10
	end.Width = 12
	if !filters.EndDate.IsZero() {
		end.SetValue(filters.EndDate.ISO())
	}

	return FilterPanel{
		theme:     theme,
		filters:   filters.Clone(),
		startDate: start,
		endDate:   end,
		width:     80,
		height:    24,
	}
}

// Resize updates the panel size.
func (m *FilterPanel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m FilterPanel) Update(msg tea.Msg) (FilterPanel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		return m, func() tea.Msg { return FilterCancelledMsg{} }

	case "enter":
		m.commitDates()
		filters := m.filters
		return m, func() tea.Msg { return FilterAppliedMsg{Filters: filters} }

	case "tab", "shift+tab":
		if key.String() == "tab" {
			m.section = (m.section + 1) % sectionCount
		} else {
			m.section = (m.section + sectionCount - 1) % sectionCount
		}
		m.cursor = 0
		m.syncDateFocus()
		return m, nil

	case "r":
		if m.section != sectionDates {
			m.filters.Reset()
			m.startDate.SetValue("")
			m.endDate.SetValue("")
			return m, nil
		}
	}

	switch {
	case m.section < len(query.Dimensions):
		m.updateDimension(key)
		return m, nil
	case m.section == sectionAge:
		m.updateAge(key)
		return m, nil
	default:
		return m, m.updateDates(key)
	}
}

func (m *FilterPanel) updateDimension(key tea.KeyMsg) {
	dim := query.Dimensions[m.section]
	options := query.DimensionOptions[dim]

	switch key.String() {
	case "j", "down":
		if m.cursor < len(options)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case " ", "x":
		m.filters.Toggle(dim, options[m.cursor])
	}
}

func (m *FilterPanel) updateAge(key tea.KeyMsg) {
	step := 1
	switch key.String() {
	case "j", "down":
		m.cursor = 1
	case "k", "up":
		m.cursor = 0
	case "L":
		step = 5
		fallthrough
	case "l", "right":
		if m.cursor == 0 && m.filters.MinAge+step <= m.filters.MaxAge {
			m.filters.MinAge += step
		} else if m.cursor == 1 && m.filters.MaxAge+step <= 100 {
			m.filters.MaxAge += step
		}
	case "H":
		step = 5
		fallthrough
	case "h", "left":
		if m.cursor == 0 && m.filters.MinAge-step >= 0 {
			m.filters.MinAge -= step
		} else if m.cursor == 1 && m.filters.MaxAge-step >= m.filters.MinAge {
			m.filters.MaxAge -= step
		}
	}
}

func (m *FilterPanel) updateDates(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "j", "down", "k", "up":
		m.commitDates()
		m.cursor = 1 - m.cursor
		m.syncDateFocus()
		return nil
	}

	var cmd tea.Cmd
	if m.cursor == 0 {
		m.startDate, cmd = m.startDate.Update(key)
	} else {
		m.endDate, cmd = m.endDate.Update(key)
	}
	return cmd
}

// commitDates parses the date inputs into the filter state. Unparseable
// text clears the bound rather than blocking the apply.
func (m *FilterPanel) commitDates() {
	m.filters.StartDate = parseDateInput(m.startDate.Value())
	m.filters.EndDate = parseDateInput(m.endDate.Value())
}

func parseDateInput(s string) model.Date {
	d, err := model.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return model.Date{}
	}
	return d
}

func (m *FilterPanel) syncDateFocus() {
	m.startDate.Blur()
	m.endDate.Blur()
	if m.section == sectionDates {
		if m.cursor == 0 {
			m.startDate.Focus()
		} else {
			m.endDate.Focus()
		}
	}
}

// View renders the panel.
func (m FilterPanel) View() string {
	var cols []string
	for i, dim := range query.Dimensions {
		cols = append(cols, m.renderDimension(i, dim))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, m.renderAge(), "  ", m.renderDates())

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Filters"),
		top,
		bottom,
		m.theme.Faint.Render("[Tab] section  [Space] toggle  [r] reset  [Enter] apply  [Esc] cancel"),
	)

	box := m.theme.RoundedBox.Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m FilterPanel) renderDimension(index int, dim query.Dimension) string {
	active := m.section == index
	selected := m.filters.Selected(dim)

	var b strings.Builder
	title := dim.Title()
	if active {
		b.WriteString(m.theme.Bold.Render(title))
	} else {
		b.WriteString(m.theme.Subtitle.Render(title))
	}
	b.WriteString("\n")

	for i, opt := range query.DimensionOptions[dim] {
		mark := "[ ]"
		if slices.Contains(selected, opt) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, opt)
		if active && i == m.cursor {
			line = m.theme.Selected.Render(line)
		} else if slices.Contains(selected, opt) {
			line = m.theme.PillActive.Render(line)
		} else {
			line = m.theme.Normal.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().PaddingRight(3).Render(b.String())
}

func (m FilterPanel) renderAge() string {
	active := m.section == sectionAge

	title := "Age Range"
	if active {
		title = m.theme.Bold.Render(title)
	} else {
		title = m.theme.Subtitle.Render(title)
	}

	minLine := fmt.Sprintf("Min: %d", m.filters.MinAge)
	maxLine := fmt.Sprintf("Max: %d", m.filters.MaxAge)
	if active && m.cursor == 0 {
		minLine = m.theme.Selected.Render(minLine)
	}
	if active && m.cursor == 1 {
		maxLine = m.theme.Selected.Render(maxLine)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, minLine, maxLine,
		m.theme.Faint.Render("←/→ adjust"))
}

func (m FilterPanel) renderDates() string {
	active := m.section == sectionDates

	title := "Date Range"
	if active {
		title = m.theme.Bold.Render(title)
	} else {
		title = m.theme.Subtitle.Render(title)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title,
		"From: "+m.startDate.View(),
		"To:   "+m.endDate.View(),
	)
}
