package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/query"
)

func filterCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addFilterFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestFiltersFromFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		filters, err := filtersFromFlags(filterCmd(t))
		require.NoError(t, err)
		assert.False(t, filters.Active())
		assert.Equal(t, query.SortNameAsc, filters.Sort)
	})

	t.Run("repeatable dimensions", func(t *testing.T) {
		filters, err := filtersFromFlags(filterCmd(t, "--region", "North", "--region", "West"))
		require.NoError(t, err)
		assert.Equal(t, []string{"North", "West"}, filters.Selected(query.DimRegion))
	})

	t.Run("valid sort", func(t *testing.T) {
		filters, err := filtersFromFlags(filterCmd(t, "--sort", "amount-desc"))
		require.NoError(t, err)
		assert.Equal(t, query.SortAmountDesc, filters.Sort)
	})

	t.Run("unknown sort rejected", func(t *testing.T) {
		_, err := filtersFromFlags(filterCmd(t, "--sort", "price-desc"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --sort")
	})

	t.Run("inverted age range rejected", func(t *testing.T) {
		_, err := filtersFromFlags(filterCmd(t, "--min-age", "50", "--max-age", "20"))
		assert.Error(t, err)
	})

	t.Run("bad start date rejected", func(t *testing.T) {
		_, err := filtersFromFlags(filterCmd(t, "--start-date", "01/02/2024"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --start-date")
	})
}
