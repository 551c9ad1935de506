package query

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"salesdesk/internal/model"
)

// SortKey is one of the six orderings the API understands.
type SortKey string

// Sort orderings.
const (
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
	SortDateDesc   SortKey = "date-desc"
	SortDateAsc    SortKey = "date-asc"
	SortAmountDesc SortKey = "amount-desc"
	SortAmountAsc  SortKey = "amount-asc"
)

// SortKeys lists every ordering in menu order with its display label.
var SortKeys = []struct {
	Key   SortKey
	Label string
}{
	{SortNameAsc, "Customer Name (A-Z)"},
	{SortNameDesc, "Customer Name (Z-A)"},
	{SortDateDesc, "Date (Newest First)"},
	{SortDateAsc, "Date (Oldest First)"},
	{SortAmountDesc, "Amount (High to Low)"},
	{SortAmountAsc, "Amount (Low to High)"},
}

// ParseSortKey validates a wire sort name against the known orderings.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if string(k.Key) == s {
			return k.Key, nil
		}
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

// Label returns the menu label for a sort key.
func (k SortKey) Label() string {
	for _, s := range SortKeys {
		if s.Key == k {
			return s.Label
		}
	}
	return string(k)
}

// Dimension identifies one multi-select filter facet.
type Dimension string

// Multi-select dimensions, keyed by their wire parameter names.
const (
	DimRegion   Dimension = "region"
	DimGender   Dimension = "gender"
	DimCategory Dimension = "category"
	DimTags     Dimension = "tags"
	DimPayment  Dimension = "paymentMethod"
)

// Dimensions lists the multi-select facets in display order.
var Dimensions = []Dimension{DimRegion, DimGender, DimCategory, DimTags, DimPayment}

// Option vocabularies shown by the filter bar. The API's /options endpoint
// exists but the dashboard has always carried its own lists; we keep that
// behavior rather than silently unifying the two.
var DimensionOptions = map[Dimension][]string{
	DimRegion:   {"North", "South", "East", "West", "Central"},
	DimGender:   {"Male", "Female"},
	DimCategory: {"Clothing", "Electronics", "Home", "Beauty"},
	DimTags:     {"New", "Sale", "Popular"},
	DimPayment:  {"Card", "UPI", "Cash"},
}

// Title returns the label above a dimension's options.
func (d Dimension) Title() string {
	switch d {
	case DimRegion:
		return "Customer Region"
	case DimGender:
		return "Gender"
	case DimCategory:
		return "Product Category"
	case DimTags:
		return "Tags"
	case DimPayment:
		return "Payment Method"
	default:
		return string(d)
	}
}

// Default age range bounds.
const (
	DefaultMinAge = 18
	DefaultMaxAge = 65
)

// Filters is the client-owned filter selection: one string set per
// multi-select dimension, an age range, a date range, and a sort key. It
// never touches the network; Params flattens it into wire query fields.
type Filters struct {
	selections map[Dimension][]string
	StartDate  model.Date
	EndDate    model.Date
	Sort       SortKey
	MinAge     int
	MaxAge     int
}

// NewFilters returns the default (inactive) selection.
func NewFilters() Filters {
	return Filters{
		selections: make(map[Dimension][]string),
		MinAge:     DefaultMinAge,
		MaxAge:     DefaultMaxAge,
		Sort:       SortNameAsc,
	}
}

// Clone returns a deep copy. Filters copies by value but selections is a
// map, so a plain assignment would share backing storage with the original.
func (f Filters) Clone() Filters {
	out := f
	out.selections = make(map[Dimension][]string, len(f.selections))
	for dim, values := range f.selections {
		out.selections[dim] = slices.Clone(values)
	}
	return out
}

// Selected returns the chosen options for a dimension.
func (f Filters) Selected(dim Dimension) []string {
	return f.selections[dim]
}

// Set replaces a dimension's selection wholesale.
func (f *Filters) Set(dim Dimension, values []string) {
	if f.selections == nil {
		f.selections = make(map[Dimension][]string)
	}
	if len(values) == 0 {
		delete(f.selections, dim)
		return
	}
	f.selections[dim] = values
}

// Toggle adds the option to the dimension's set if absent, removes it if
// present.
func (f *Filters) Toggle(dim Dimension, option string) {
	current := f.selections[dim]
	if i := slices.Index(current, option); i >= 0 {
		f.Set(dim, slices.Delete(slices.Clone(current), i, i+1))
		return
	}
	f.Set(dim, append(slices.Clone(current), option))
}

// Reset clears every dimension back to defaults. The sort key survives a
// reset, matching the dashboard.
func (f *Filters) Reset() {
	sort := f.Sort
	*f = NewFilters()
	f.Sort = sort
}

// Active reports whether any filter differs from its default: a non-empty
// multi-select set, a non-default age range, or a date bound. Sort alone
// never counts as active.
func (f Filters) Active() bool {
	for _, values := range f.selections {
		if len(values) > 0 {
			return true
		}
	}
	if f.MinAge != DefaultMinAge || f.MaxAge != DefaultMaxAge {
		return true
	}
	return !f.StartDate.IsZero() || !f.EndDate.IsZero()
}

// Params flattens the active filters into wire query fields. Inactive
// dimensions and default ranges are omitted entirely; ranges decompose into
// their scalar min/max and start/end fields. The composite Filters value
// stays behind for redisplay; Params is the one place UI state becomes wire
// format.
func (f Filters) Params() url.Values {
	params := url.Values{}
	for _, dim := range Dimensions {
		for _, v := range f.selections[dim] {
			params.Add(string(dim), v)
		}
	}
	if f.MinAge != DefaultMinAge || f.MaxAge != DefaultMaxAge {
		params.Set("minAge", strconv.Itoa(f.MinAge))
		params.Set("maxAge", strconv.Itoa(f.MaxAge))
	}
	if !f.StartDate.IsZero() {
		params.Set("startDate", f.StartDate.ISO())
	}
	if !f.EndDate.IsZero() {
		params.Set("endDate", f.EndDate.ISO())
	}
	if f.Sort != "" {
		params.Set("sort", string(f.Sort))
	}
	return params
}
