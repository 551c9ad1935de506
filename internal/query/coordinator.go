package query

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"salesdesk/internal/model"
)

// Page is one fetched page of results plus the server-reported totals.
type Page struct {
	Transactions []model.Transaction
	Total        int
	TotalPages   int
}

// Lister fetches one page of transactions. The production implementation is
// the API gateway; tests substitute scripted fakes.
type Lister interface {
	List(ctx context.Context, params url.Values) (Page, error)
}

// DefaultPerPage is the page size used when none is configured.
const DefaultPerPage = 10

// Coordinator unifies filter state, search text and the pagination cursor
// into gateway requests, and owns the fetched result. Every mutation of a
// filter or the search text snaps the cursor back to page one, so a stale
// cursor from a larger result set can never select past the end of a newer,
// smaller one.
//
// Fetches carry a monotonically increasing sequence number. A response is
// applied only when no newer fetch has been issued in the meantime; late
// replies from superseded fetches are discarded rather than allowed to
// clobber current state.
type Coordinator struct {
	gateway Lister

	mu           sync.Mutex
	filters      Filters
	search       string
	page         int
	perPage      int
	total        int
	totalPages   int
	transactions []model.Transaction
	lastError    string
	issued       uint64
	applied      uint64
	inflight     int
}

// NewCoordinator creates a coordinator over the given gateway with default
// filters and page size.
func NewCoordinator(gateway Lister, perPage int) *Coordinator {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &Coordinator{
		gateway: gateway,
		filters: NewFilters(),
		page:    1,
		perPage: perPage,
	}
}

// Snapshot is an immutable view of the coordinator for rendering.
type Snapshot struct {
	Transactions []model.Transaction
	Search       string
	Err          string
	Filters      Filters
	Page         int
	PerPage      int
	Total        int
	TotalPages   int
	Loading      bool
}

// Snapshot returns the current state for rendering.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Transactions: c.transactions,
		Search:       c.search,
		Err:          c.lastError,
		Filters:      c.filters.Clone(),
		Page:         c.page,
		PerPage:      c.perPage,
		Total:        c.total,
		TotalPages:   c.totalPages,
		Loading:      c.inflight > 0,
	}
}

// SetPage moves the pagination cursor, clamped to [1, max(1, totalPages)].
func (c *Coordinator) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	limit := max(1, c.totalPages)
	c.page = min(max(1, page), limit)
}

// SetSearch replaces the free-text search and resets to the first page.
func (c *Coordinator) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = text
	c.page = 1
}

// ToggleFilter toggles one option of a multi-select dimension and resets to
// the first page.
func (c *Coordinator) ToggleFilter(dim Dimension, option string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Toggle(dim, option)
	c.page = 1
}

// SetAgeRange replaces the age range and resets to the first page.
func (c *Coordinator) SetAgeRange(minAge, maxAge int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.MinAge = minAge
	c.filters.MaxAge = maxAge
	c.page = 1
}

// SetDateRange replaces the date range and resets to the first page.
func (c *Coordinator) SetDateRange(start, end model.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.StartDate = start
	c.filters.EndDate = end
	c.page = 1
}

// SetFilters replaces the whole filter selection and resets to the first
// page.
func (c *Coordinator) SetFilters(f Filters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = f.Clone()
	c.page = 1
}

// SetSort replaces the sort key and resets to the first page.
func (c *Coordinator) SetSort(key SortKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Sort = key
	c.page = 1
}

// ResetFilters clears all filters and the search text, back to page one.
func (c *Coordinator) ResetFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Reset()
	c.search = ""
	c.page = 1
}

// Begin opens a fetch: it assigns the next sequence number and captures the
// request parameters under the current state. The caller performs the fetch
// and hands the outcome to Resolve with the same sequence number.
func (c *Coordinator) Begin() (seq uint64, params url.Values) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued++
	c.inflight++
	params = c.filters.Params()
	params.Set("page", strconv.Itoa(c.page))
	params.Set("perPage", strconv.Itoa(c.perPage))
	if c.search != "" {
		params.Set("search", c.search)
	}
	return c.issued, params
}

// Resolve applies a completed fetch. A response is accepted only when its
// sequence number is the newest issued so far; anything older is a stale
// reply and is dropped. On an accepted failure the previous result set is
// kept and only the error message changes. Returns whether the response was
// applied.
func (c *Coordinator) Resolve(seq uint64, page Page, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight > 0 {
		c.inflight--
	}
	if seq < c.issued || seq <= c.applied {
		return false
	}
	c.applied = seq
	if err != nil {
		c.lastError = err.Error()
		return true
	}
	c.lastError = ""
	c.transactions = page.Transactions
	c.total = page.Total
	c.totalPages = page.TotalPages
	if c.page > max(1, c.totalPages) {
		c.page = max(1, c.totalPages)
	}
	return true
}

// Refresh performs a full fetch cycle synchronously. The interactive UI
// splits Begin/Resolve across its command boundary instead; Refresh serves
// the one-shot commands and tests.
func (c *Coordinator) Refresh(ctx context.Context) error {
	seq, params := c.Begin()
	page, err := c.gateway.List(ctx, params)
	c.Resolve(seq, page, err)
	return err
}
