// Package query owns the client-side browsing state: the filter model, the
// pagination window, and the coordinator that turns both into gateway
// requests.
package query

// Ellipsis marks a gap in the rendered page window.
const Ellipsis = -1

// maxVisible is the widest window rendered without collapsing to ellipses.
const maxVisible = 7

// PageWindow maps (current, total) to the ordered sequence of page buttons
// shown under the table. Entries are page numbers, or Ellipsis for a gap.
//
// Up to seven pages render in full. Beyond that the first and last page are
// always shown, with a window of up to three pages around the current one;
// the window widens to page 4 near the start and back to total-3 near the
// end so the bar keeps a stable width.
func PageWindow(current, total int) []int {
	if total <= 1 {
		return []int{1}
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	if total <= maxVisible {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	pages := []int{1}
	if current > 3 {
		pages = append(pages, Ellipsis)
	}

	start := max(2, current-1)
	end := min(total-1, current+1)
	if current <= 3 {
		end = min(total-1, 4)
	}
	if current >= total-2 {
		start = max(2, total-3)
	}
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	if current < total-2 {
		pages = append(pages, Ellipsis)
	}
	return append(pages, total)
}
