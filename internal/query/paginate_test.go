package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginatePartitionsWithoutLossOrOverlap(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5, 6, 49, 50, 51, 237} {
		for _, size := range PageSizes {
			t.Run(fmt.Sprintf("n=%d size=%d", n, size), func(t *testing.T) {
				items := sequence(n)

				first := Paginate(items, 1, size)
				wantPages := (n + size - 1) / size
				if wantPages < 1 {
					wantPages = 1
				}
				require.Equal(t, wantPages, first.TotalPages)
				require.Equal(t, n, first.Total)

				concat := []int{}
				for page := 1; page <= first.TotalPages; page++ {
					concat = append(concat, Paginate(items, page, size).Items...)
				}
				require.Equal(t, items, concat)
			})
		}
	}
}

func TestPaginateRange(t *testing.T) {
	items := sequence(12)

	p := Paginate(items, 2, 5)
	require.Equal(t, 6, p.From)
	require.Equal(t, 10, p.To)
	require.Equal(t, []int{5, 6, 7, 8, 9}, p.Items)

	p = Paginate(items, 3, 5)
	require.Equal(t, 11, p.From)
	require.Equal(t, 12, p.To)
	require.Len(t, p.Items, 2)
}

func TestPaginateEmptySet(t *testing.T) {
	p := Paginate([]int{}, 1, 5)
	require.Equal(t, 1, p.TotalPages)
	require.Equal(t, 0, p.Total)
	require.Equal(t, 0, p.From)
	require.Equal(t, 0, p.To)
	require.Empty(t, p.Items)
}

func TestPaginateClampsPageNumber(t *testing.T) {
	items := sequence(7)

	p := Paginate(items, 99, 5)
	require.Equal(t, 2, p.Number)
	require.Len(t, p.Items, 2)

	p = Paginate(items, 0, 5)
	require.Equal(t, 1, p.Number)
}

func TestPaginateRejectsUnlistedSize(t *testing.T) {
	p := Paginate(sequence(20), 1, 7)
	require.Equal(t, DefaultPageSize, p.Size)
	require.Len(t, p.Items, DefaultPageSize)
}
