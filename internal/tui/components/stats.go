package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"salesdesk/internal/model"
	"salesdesk/internal/tui/themes"
)

// StatsPanel shows the dataset-wide totals next to the current page's
// totals as a row of cards. Until the global totals arrive, or after they
// fail to, the cards sum the visible page instead and are labeled as
// page-scoped.
type StatsPanel struct {
	theme    themes.Theme
	global   model.GlobalStats
	page     model.PageStats
	loaded   bool
	havePage bool
	width    int
}

// NewStatsPanel creates an empty stats panel.
func NewStatsPanel(theme themes.Theme) StatsPanel {
	return StatsPanel{theme: theme, width: 80}
}

// SetGlobal updates the dataset-wide totals.
func (s *StatsPanel) SetGlobal(stats model.GlobalStats) {
	s.global = stats
	s.loaded = true
}

// SetUnavailable marks the global totals as unfetchable, dropping the view
// back to the page-scoped cards.
func (s *StatsPanel) SetUnavailable() {
	s.loaded = false
}

// SetPage updates the current-page totals.
func (s *StatsPanel) SetPage(txns []model.Transaction) {
	s.page = model.SumPage(txns)
	s.havePage = true
}

// Resize updates the panel width.
func (s *StatsPanel) Resize(width int) {
	s.width = width
}

// View renders the card row.
func (s StatsPanel) View() string {
	if s.loaded {
		cards := []string{
			s.card("Total Units", fmt.Sprintf("%d", s.global.TotalUnits)),
			s.card("Total Sales", model.FormatRounded(s.global.TotalAmount)),
			s.card("Total Discount", model.FormatRounded(s.global.TotalDiscount)),
			s.card("This Page", fmt.Sprintf("%d orders / %s", s.page.Records, model.FormatRounded(s.page.Amount))),
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	if !s.havePage {
		return s.theme.Faint.Render("Loading totals...")
	}

	cards := []string{
		s.card("Units (page)", fmt.Sprintf("%d", s.page.Units)),
		s.card("Sales (page)", model.FormatRounded(s.page.Amount)),
		s.card("Discount (page)", model.FormatRounded(s.page.Discount)),
		s.card("This Page", fmt.Sprintf("%d orders / %s", s.page.Records, model.FormatRounded(s.page.Amount))),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (s StatsPanel) card(label, value string) string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		s.theme.Subtitle.Render(label),
		s.theme.Bold.Render(value),
	)
	return s.theme.Card.Render(content)
}
