package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"salesdesk/internal/model"
)

func date(s string) model.Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return model.NewDate(t)
}

func TestFilters_Active(t *testing.T) {
	t.Run("defaults are inactive", func(t *testing.T) {
		f := NewFilters()
		assert.False(t, f.Active())
	})

	t.Run("zero value is inactive once ranges default", func(t *testing.T) {
		f := NewFilters()
		f.MinAge = DefaultMinAge
		f.MaxAge = DefaultMaxAge
		assert.False(t, f.Active())
	})

	t.Run("any multi-select activates", func(t *testing.T) {
		for _, dim := range Dimensions {
			f := NewFilters()
			f.Toggle(dim, DimensionOptions[dim][0])
			assert.True(t, f.Active(), "dimension %s", dim)
		}
	})

	t.Run("non-default age range activates", func(t *testing.T) {
		f := NewFilters()
		f.MinAge = 21
		assert.True(t, f.Active())
	})

	t.Run("age range back to 18-65 deactivates", func(t *testing.T) {
		f := NewFilters()
		f.MinAge, f.MaxAge = 21, 40
		f.MinAge, f.MaxAge = 18, 65
		assert.False(t, f.Active())
	})

	t.Run("date bound activates", func(t *testing.T) {
		f := NewFilters()
		f.StartDate = date("2024-01-01")
		assert.True(t, f.Active())
	})

	t.Run("sort alone stays inactive", func(t *testing.T) {
		f := NewFilters()
		f.Sort = SortAmountDesc
		assert.False(t, f.Active())
	})
}

func TestParseSortKey(t *testing.T) {
	for _, s := range SortKeys {
		key, err := ParseSortKey(string(s.Key))
		assert.NoError(t, err)
		assert.Equal(t, s.Key, key)
	}

	_, err := ParseSortKey("price-desc")
	assert.Error(t, err)
}

func TestFilters_Toggle(t *testing.T) {
	f := NewFilters()

	f.Toggle(DimRegion, "North")
	assert.Equal(t, []string{"North"}, f.Selected(DimRegion))

	f.Toggle(DimRegion, "South")
	assert.Equal(t, []string{"North", "South"}, f.Selected(DimRegion))

	// Toggling an existing option removes it.
	f.Toggle(DimRegion, "North")
	assert.Equal(t, []string{"South"}, f.Selected(DimRegion))

	f.Toggle(DimRegion, "South")
	assert.Empty(t, f.Selected(DimRegion))
	assert.False(t, f.Active())
}

func TestFilters_Set(t *testing.T) {
	f := NewFilters()
	f.Set(DimCategory, []string{"Beauty", "Home"})
	assert.Equal(t, []string{"Beauty", "Home"}, f.Selected(DimCategory))

	f.Set(DimCategory, nil)
	assert.Empty(t, f.Selected(DimCategory))
	assert.False(t, f.Active())
}

func TestFilters_Clone(t *testing.T) {
	f := NewFilters()
	f.Toggle(DimRegion, "North")

	clone := f.Clone()
	clone.Toggle(DimRegion, "South")
	clone.Toggle(DimGender, "Female")

	// The clone's map is independent of the original's.
	assert.Equal(t, []string{"North"}, f.Selected(DimRegion))
	assert.Empty(t, f.Selected(DimGender))
	assert.Equal(t, []string{"North", "South"}, clone.Selected(DimRegion))
}

func TestFilters_Reset(t *testing.T) {
	f := NewFilters()
	f.Toggle(DimGender, "Female")
	f.MinAge, f.MaxAge = 30, 40
	f.StartDate = date("2024-01-01")
	f.Sort = SortDateDesc

	f.Reset()

	assert.False(t, f.Active())
	assert.Equal(t, DefaultMinAge, f.MinAge)
	assert.Equal(t, DefaultMaxAge, f.MaxAge)
	assert.True(t, f.StartDate.IsZero())
	// Sort survives a reset.
	assert.Equal(t, SortDateDesc, f.Sort)
}

func TestFilters_Params(t *testing.T) {
	t.Run("defaults send only the sort", func(t *testing.T) {
		params := NewFilters().Params()
		assert.Equal(t, "name-asc", params.Get("sort"))
		assert.Len(t, params, 1)
	})

	t.Run("multi-select repeats the key", func(t *testing.T) {
		f := NewFilters()
		f.Toggle(DimRegion, "North")
		f.Toggle(DimRegion, "West")
		params := f.Params()
		assert.Equal(t, []string{"North", "West"}, params["region"])
	})

	t.Run("default age range is omitted", func(t *testing.T) {
		params := NewFilters().Params()
		assert.Empty(t, params.Get("minAge"))
		assert.Empty(t, params.Get("maxAge"))
	})

	t.Run("age range flattens to min and max", func(t *testing.T) {
		f := NewFilters()
		f.MinAge, f.MaxAge = 25, 50
		params := f.Params()
		assert.Equal(t, "25", params.Get("minAge"))
		assert.Equal(t, "50", params.Get("maxAge"))
	})

	t.Run("date range flattens to start and end", func(t *testing.T) {
		f := NewFilters()
		f.StartDate = date("2024-01-01")
		f.EndDate = date("2024-03-31")
		params := f.Params()
		assert.Equal(t, "2024-01-01", params.Get("startDate"))
		assert.Equal(t, "2024-03-31", params.Get("endDate"))
	})

	t.Run("open-ended date range sends only the set bound", func(t *testing.T) {
		f := NewFilters()
		f.EndDate = date("2024-03-31")
		params := f.Params()
		assert.Empty(t, params.Get("startDate"))
		assert.Equal(t, "2024-03-31", params.Get("endDate"))
	})
}
