package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"salesdesk/internal/query"
)

// View renders the whole screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.renderLoading()
	}

	switch m.state {
	case StateFiltering:
		return m.filterPanel.View()
	case StateSorting:
		return m.sortMenu.View()
	case StateForm:
		return m.form.View()
	case StateConfirmDelete:
		return m.confirm.View()
	case StateDetail:
		return m.detail.View()
	case StateHelp:
		return m.renderHelp()
	}

	snap := m.coord.Snapshot()

	sections := []string{m.renderHeader(snap)}
	if m.config.ShowStats {
		sections = append(sections, m.statsPanel.View())
	}
	if pills := m.renderFilterPills(snap); pills != "" {
		sections = append(sections, pills)
	}
	sections = append(sections,
		m.table.View(),
		m.pagination.View(),
		m.renderFooter(snap),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderLoading renders the initial loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Sales Desk"),
		"",
		m.theme.Faint.Render("Loading transactions..."),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderHeader renders the title row and search line.
func (m Model) renderHeader(snap query.Snapshot) string {
	title := m.theme.Title.Render("Sales Desk")

	var search string
	if m.state == StateSearching {
		search = m.searchInput.View()
	} else if snap.Search != "" {
		search = m.theme.PillActive.Render(fmt.Sprintf("Search: %q", snap.Search))
	} else {
		search = m.theme.Faint.Render("Press / to search")
	}

	loading := ""
	if snap.Loading {
		loading = m.theme.StatusInfo.Render("  fetching…")
	}

	return lipgloss.JoinVertical(lipgloss.Left, title+loading, search)
}

// renderFilterPills summarizes the active filters in one line.
func (m Model) renderFilterPills(snap query.Snapshot) string {
	var pills []string
	for _, dim := range query.Dimensions {
		if selected := snap.Filters.Selected(dim); len(selected) > 0 {
			pills = append(pills, dim.Title()+": "+strings.Join(selected, ", "))
		}
	}
	if snap.Filters.MinAge != query.DefaultMinAge || snap.Filters.MaxAge != query.DefaultMaxAge {
		pills = append(pills, fmt.Sprintf("Age: %d-%d", snap.Filters.MinAge, snap.Filters.MaxAge))
	}
	if !snap.Filters.StartDate.IsZero() || !snap.Filters.EndDate.IsZero() {
		pills = append(pills, fmt.Sprintf("Date: %s to %s",
			orAny(snap.Filters.StartDate.ISO()), orAny(snap.Filters.EndDate.ISO())))
	}
	if len(pills) == 0 {
		return ""
	}
	return m.theme.PillActive.Render("⚑ " + strings.Join(pills, "  |  "))
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}

// renderFooter renders the status line and key hints.
func (m Model) renderFooter(snap query.Snapshot) string {
	hints := []string{
		"[/] search",
		"[f] filter",
		"[s] sort " + m.theme.Faint.Render("("+snap.Filters.Sort.Label()+")"),
		"[a] add",
		"[e] edit",
		"[d] delete",
		"[?] help",
		"[q] quit",
	}
	hintLine := m.theme.Faint.Render(strings.Join(hints, "  "))

	var statusLine string
	switch {
	case m.status != "" && m.statusError:
		statusLine = m.theme.StatusError.Render(m.status)
	case m.status != "":
		statusLine = m.theme.StatusSuccess.Render(m.status)
	case snap.Err != "":
		statusLine = m.theme.StatusError.Render("Error: " + snap.Err + " (showing last good results)")
	}

	if statusLine == "" {
		return hintLine
	}
	return lipgloss.JoinVertical(lipgloss.Left, statusLine, hintLine)
}

// renderHelp renders the full key binding reference.
func (m Model) renderHelp() string {
	lines := []string{m.theme.Title.Render("Keyboard Shortcuts"), ""}
	for _, group := range m.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			lines = append(lines, fmt.Sprintf("%s %s",
				m.theme.Bold.Render(fmt.Sprintf("%-14s", h.Key)),
				m.theme.Normal.Render(h.Desc)))
		}
		lines = append(lines, "")
	}
	lines = append(lines, m.theme.Faint.Render("Press any key to return"))

	box := m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
