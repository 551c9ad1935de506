package query

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/model"
)

// fakeGateway records every request and replays scripted responses.
type fakeGateway struct {
	pages    []Page
	errs     []error
	requests []url.Values
}

func (g *fakeGateway) List(_ context.Context, params url.Values) (Page, error) {
	i := len(g.requests)
	g.requests = append(g.requests, params)
	var page Page
	if i < len(g.pages) {
		page = g.pages[i]
	}
	var err error
	if i < len(g.errs) {
		err = g.errs[i]
	}
	return page, err
}

func txns(names ...string) []model.Transaction {
	out := make([]model.Transaction, 0, len(names))
	for _, n := range names {
		out = append(out, model.Transaction{CustomerName: n})
	}
	return out
}

func TestCoordinator_Refresh(t *testing.T) {
	gw := &fakeGateway{pages: []Page{{Transactions: txns("a", "b"), Total: 42, TotalPages: 5}}}
	c := NewCoordinator(gw, 10)

	require.NoError(t, c.Refresh(context.Background()))

	snap := c.Snapshot()
	assert.Len(t, snap.Transactions, 2)
	assert.Equal(t, 42, snap.Total)
	assert.Equal(t, 5, snap.TotalPages)
	assert.Empty(t, snap.Err)
	assert.False(t, snap.Loading)

	require.Len(t, gw.requests, 1)
	assert.Equal(t, "1", gw.requests[0].Get("page"))
	assert.Equal(t, "10", gw.requests[0].Get("perPage"))
	assert.Empty(t, gw.requests[0].Get("search"))
}

func TestCoordinator_FailureKeepsPreviousResult(t *testing.T) {
	gw := &fakeGateway{
		pages: []Page{{Transactions: txns("a"), Total: 1, TotalPages: 1}, {}},
		errs:  []error{nil, errors.New("boom")},
	}
	c := NewCoordinator(gw, 10)

	require.NoError(t, c.Refresh(context.Background()))
	assert.Error(t, c.Refresh(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, "boom", snap.Err)
	assert.Len(t, snap.Transactions, 1, "previous page survives a failed fetch")
	assert.Equal(t, 1, snap.Total)
	assert.False(t, snap.Loading)
}

func TestCoordinator_ErrorClearsOnNextSuccess(t *testing.T) {
	gw := &fakeGateway{
		pages: []Page{{}, {Transactions: txns("a"), Total: 1, TotalPages: 1}},
		errs:  []error{errors.New("down"), nil},
	}
	c := NewCoordinator(gw, 10)

	assert.Error(t, c.Refresh(context.Background()))
	require.NoError(t, c.Refresh(context.Background()))
	assert.Empty(t, c.Snapshot().Err)
}

func TestCoordinator_MutationsResetPage(t *testing.T) {
	tests := []struct {
		mutate func(*Coordinator)
		name   string
	}{
		{name: "search", mutate: func(c *Coordinator) { c.SetSearch("asha") }},
		{name: "toggle filter", mutate: func(c *Coordinator) { c.ToggleFilter(DimRegion, "North") }},
		{name: "age range", mutate: func(c *Coordinator) { c.SetAgeRange(20, 30) }},
		{name: "date range", mutate: func(c *Coordinator) { c.SetDateRange(date("2024-01-01"), date("2024-02-01")) }},
		{name: "sort", mutate: func(c *Coordinator) { c.SetSort(SortAmountAsc) }},
		{name: "reset", mutate: func(c *Coordinator) { c.ResetFilters() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{pages: []Page{{Total: 100, TotalPages: 10}}}
			c := NewCoordinator(gw, 10)
			require.NoError(t, c.Refresh(context.Background()))

			c.SetPage(7)
			require.Equal(t, 7, c.Snapshot().Page)

			tt.mutate(c)
			assert.Equal(t, 1, c.Snapshot().Page)
		})
	}
}

func TestCoordinator_SnapshotFiltersDetached(t *testing.T) {
	c := NewCoordinator(&fakeGateway{}, 10)
	c.ToggleFilter(DimRegion, "North")

	snap := c.Snapshot()
	snap.Filters.Toggle(DimRegion, "South")
	snap.Filters.Toggle(DimRegion, "North")

	// Mutating the snapshot must not reach back into the coordinator.
	assert.Equal(t, []string{"North"}, c.Snapshot().Filters.Selected(DimRegion))
}

func TestCoordinator_SetPageClamps(t *testing.T) {
	gw := &fakeGateway{pages: []Page{{Total: 30, TotalPages: 3}}}
	c := NewCoordinator(gw, 10)
	require.NoError(t, c.Refresh(context.Background()))

	c.SetPage(99)
	assert.Equal(t, 3, c.Snapshot().Page)

	c.SetPage(0)
	assert.Equal(t, 1, c.Snapshot().Page)
}

func TestCoordinator_StaleResponseDiscarded(t *testing.T) {
	c := NewCoordinator(&fakeGateway{}, 10)

	// Fetch A issued first, fetch B issued second. B completes before A.
	seqA, _ := c.Begin()
	seqB, _ := c.Begin()

	applied := c.Resolve(seqB, Page{Transactions: txns("newer"), Total: 1, TotalPages: 1}, nil)
	assert.True(t, applied)

	applied = c.Resolve(seqA, Page{Transactions: txns("older"), Total: 99, TotalPages: 9}, nil)
	assert.False(t, applied, "late reply from the superseded fetch must be dropped")

	snap := c.Snapshot()
	require.Len(t, snap.Transactions, 1)
	assert.Equal(t, "newer", snap.Transactions[0].CustomerName)
	assert.Equal(t, 1, snap.Total)
	assert.False(t, snap.Loading)
}

func TestCoordinator_StaleErrorDiscarded(t *testing.T) {
	c := NewCoordinator(&fakeGateway{}, 10)

	seqA, _ := c.Begin()
	seqB, _ := c.Begin()

	require.True(t, c.Resolve(seqB, Page{Transactions: txns("ok"), Total: 1, TotalPages: 1}, nil))
	assert.False(t, c.Resolve(seqA, Page{}, errors.New("slow failure")))
	assert.Empty(t, c.Snapshot().Err)
}

func TestCoordinator_LoadingTracksInflight(t *testing.T) {
	c := NewCoordinator(&fakeGateway{}, 10)

	seq, _ := c.Begin()
	assert.True(t, c.Snapshot().Loading)

	c.Resolve(seq, Page{}, nil)
	assert.False(t, c.Snapshot().Loading)
}

func TestCoordinator_BeginCapturesState(t *testing.T) {
	c := NewCoordinator(&fakeGateway{}, 25)
	c.SetSearch("rao")
	c.ToggleFilter(DimCategory, "Beauty")
	c.SetAgeRange(21, 45)

	_, params := c.Begin()

	assert.Equal(t, "1", params.Get("page"))
	assert.Equal(t, "25", params.Get("perPage"))
	assert.Equal(t, "rao", params.Get("search"))
	assert.Equal(t, []string{"Beauty"}, params["category"])
	assert.Equal(t, "21", params.Get("minAge"))
	assert.Equal(t, "45", params.Get("maxAge"))
}

func TestCoordinator_PageClampedAfterShrink(t *testing.T) {
	gw := &fakeGateway{pages: []Page{
		{Total: 100, TotalPages: 10},
		{Total: 15, TotalPages: 2},
	}}
	c := NewCoordinator(gw, 10)
	require.NoError(t, c.Refresh(context.Background()))

	c.SetPage(9)
	require.NoError(t, c.Refresh(context.Background()))

	assert.Equal(t, 2, c.Snapshot().Page, "cursor clamps when the result set shrinks")
}

func TestCoordinator_SequencesAreMonotonic(t *testing.T) {
	c := NewCoordinator(&fakeGateway{}, 10)
	var last uint64
	for i := 0; i < 10; i++ {
		seq, _ := c.Begin()
		assert.Greater(t, seq, last, fmt.Sprintf("iteration %d", i))
		last = seq
	}
}
