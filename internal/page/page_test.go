package page

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	require.Equal(t, 0, TotalPages(0, 6))
	require.Equal(t, 1, TotalPages(1, 6))
	require.Equal(t, 1, TotalPages(6, 6))
	require.Equal(t, 2, TotalPages(7, 6))
	require.Equal(t, 2, TotalPages(13, 12))
	require.Equal(t, 0, TotalPages(10, 0))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 1, Clamp(0, 5))
	require.Equal(t, 1, Clamp(1, 5))
	require.Equal(t, 5, Clamp(9, 5))
	require.Equal(t, 3, Clamp(3, 5))
	// Empty collection still has a well-formed page 1.
	require.Equal(t, 1, Clamp(4, 0))
}

func TestBounds_SliceLength(t *testing.T) {
	for n := 0; n <= 40; n++ {
		for _, perPage := range []int{1, 3, 6, 12} {
			total := TotalPages(n, perPage)
			for current := 1; current <= max(1, total); current++ {
				lo, hi := Bounds(current, perPage, n)
				want := n - (current-1)*perPage
				if want > perPage {
					want = perPage
				}
				if want < 0 {
					want = 0
				}
				require.Equalf(t, want, hi-lo, "n=%d perPage=%d page=%d", n, perPage, current)
				if n > 0 {
					require.NotEqualf(t, lo, hi, "n=%d perPage=%d page=%d: slice empty", n, perPage, current)
				}
			}
		}
	}
}

func TestVisible_WindowShape(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for current := 1; current <= total; current++ {
			pages := Visible(current, total)

			want := total
			if want > windowSpan {
				want = windowSpan
			}
			require.Lenf(t, pages, want, "total=%d current=%d", total, current)

			require.Contains(t, pages, current)
			for i := 1; i < len(pages); i++ {
				require.Equalf(t, pages[i-1]+1, pages[i], "total=%d current=%d: window not contiguous", total, current)
			}
		}
	}
	require.Empty(t, Visible(1, 0))
}

func TestVisible_SlidesAndPins(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4, 5}, Visible(1, 9))
	require.Equal(t, []int{1, 2, 3, 4, 5}, Visible(3, 9))
	require.Equal(t, []int{4, 5, 6, 7, 8}, Visible(6, 9))
	require.Equal(t, []int{5, 6, 7, 8, 9}, Visible(9, 9))
	require.Equal(t, []int{1, 2}, Visible(2, 2))
}

func TestReclampAfterShrink(t *testing.T) {
	// 13 items at 12 per page put one item on page 2. Deleting it leaves a
	// single page, and the stale page number must clamp back to 1.
	const perPage = 12

	total := TotalPages(13, perPage)
	require.Equal(t, 2, total)
	lo, hi := Bounds(2, perPage, 13)
	require.Equal(t, 1, hi-lo)

	total = TotalPages(12, perPage)
	require.Equal(t, 1, total)
	require.Equal(t, 1, Clamp(2, total))
}

func TestScenario_EightBooksSixPerPage(t *testing.T) {
	const n, perPage = 8, 6

	total := TotalPages(n, perPage)
	require.Equal(t, 2, total)

	lo, hi := Bounds(1, perPage, n)
	require.Equal(t, 0, lo)
	require.Equal(t, 6, hi)

	lo, hi = Bounds(2, perPage, n)
	require.Equal(t, 6, lo)
	require.Equal(t, 8, hi)

	require.Equal(t, []int{1, 2}, Visible(2, total))
	require.False(t, HasNext(2, total))
	require.True(t, HasPrevious(2))
	require.False(t, HasPrevious(1))
}
