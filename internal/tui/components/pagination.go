package components

import (
	"fmt"
	"strconv"
	"strings"

	"salesdesk/internal/query"
	"salesdesk/internal/tui/themes"
)

// PaginationBar renders the windowed page selector under the table.
type PaginationBar struct {
	theme      themes.Theme
	current    int
	totalPages int
	total      int
}

// NewPaginationBar creates a pagination bar.
func NewPaginationBar(theme themes.Theme) PaginationBar {
	return PaginationBar{theme: theme, current: 1, totalPages: 1}
}

// SetPage updates the current position and totals.
func (p *PaginationBar) SetPage(current, totalPages, total int) {
	p.current = current
	p.totalPages = totalPages
	p.total = total
}

// View renders the bar, e.g. "‹ 1 … 9 [10] 11 … 20 ›  (200 records)".
func (p PaginationBar) View() string {
	var b strings.Builder

	prev := "‹"
	if p.current <= 1 {
		prev = p.theme.Faint.Render(prev)
	} else {
		prev = p.theme.PageNumber.Render(prev)
	}
	b.WriteString(prev)

	for _, tok := range query.PageWindow(p.current, p.totalPages) {
		if tok == query.Ellipsis {
			b.WriteString(p.theme.Faint.Render(" … "))
			continue
		}
		label := strconv.Itoa(tok)
		if tok == p.current {
			b.WriteString(p.theme.PageCurrent.Render(label))
		} else {
			b.WriteString(p.theme.PageNumber.Render(label))
		}
	}

	next := "›"
	if p.current >= p.totalPages {
		next = p.theme.Faint.Render(next)
	} else {
		next = p.theme.PageNumber.Render(next)
	}
	b.WriteString(next)

	b.WriteString(p.theme.Subtitle.Render(fmt.Sprintf("  %d records", p.total)))
	return b.String()
}
