package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name    string
		want    []int
		current int
		total   int
	}{
		{
			name:    "single page",
			current: 1,
			total:   1,
			want:    []int{1},
		},
		{
			name:    "zero pages still renders page one",
			current: 1,
			total:   0,
			want:    []int{1},
		},
		{
			name:    "single page ignores cursor",
			current: 5,
			total:   1,
			want:    []int{1},
		},
		{
			name:    "seven pages render in full",
			current: 4,
			total:   7,
			want:    []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:    "three pages render in full",
			current: 2,
			total:   3,
			want:    []int{1, 2, 3},
		},
		{
			name:    "first page of twenty",
			current: 1,
			total:   20,
			want:    []int{1, 2, 3, 4, Ellipsis, 20},
		},
		{
			name:    "third page still anchored at start",
			current: 3,
			total:   20,
			want:    []int{1, 2, 3, 4, Ellipsis, 20},
		},
		{
			name:    "fourth page opens leading gap",
			current: 4,
			total:   20,
			want:    []int{1, Ellipsis, 3, 4, 5, Ellipsis, 20},
		},
		{
			name:    "middle page has both gaps",
			current: 10,
			total:   20,
			want:    []int{1, Ellipsis, 9, 10, 11, Ellipsis, 20},
		},
		{
			name:    "third from last anchored at end",
			current: 18,
			total:   20,
			want:    []int{1, Ellipsis, 17, 18, 19, 20},
		},
		{
			name:    "last page",
			current: 20,
			total:   20,
			want:    []int{1, Ellipsis, 17, 18, 19, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageWindow(tt.current, tt.total))
		})
	}
}

func TestPageWindow_SmallTotalsEnumerate(t *testing.T) {
	for total := 2; total <= 7; total++ {
		for current := 1; current <= total; current++ {
			got := PageWindow(current, total)
			assert.Len(t, got, total, "total=%d current=%d", total, current)
			for i, p := range got {
				assert.Equal(t, i+1, p)
			}
		}
	}
}

func TestPageWindow_Invariants(t *testing.T) {
	for total := 8; total <= 40; total++ {
		for current := 1; current <= total; current++ {
			t.Run(fmt.Sprintf("total=%d/current=%d", total, current), func(t *testing.T) {
				got := PageWindow(current, total)

				assert.Equal(t, 1, got[0], "always starts at page 1")
				assert.Equal(t, total, got[len(got)-1], "always ends at the last page")

				prev := 0
				for _, p := range got {
					if p == Ellipsis {
						continue
					}
					assert.Greater(t, p, prev, "pages strictly increase")
					assert.GreaterOrEqual(t, p, 1)
					assert.LessOrEqual(t, p, total)
					prev = p
				}
			})
		}
	}
}
