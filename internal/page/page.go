// Package page computes pagination windows over an in-memory collection.
// All functions are pure: identical inputs always produce identical outputs.
package page

// windowSpan is the maximum number of page numbers shown as navigation
// controls. The window slides to stay centered on the current page.
const windowSpan = 5

// TotalPages returns the number of pages needed to show n items at perPage
// items each. Zero when the collection is empty.
func TotalPages(n, perPage int) int {
	if n <= 0 || perPage <= 0 {
		return 0
	}
	return (n + perPage - 1) / perPage
}

// Clamp forces current into [1, max(1, totalPages)]. Callers re-clamp after
// every snapshot replacement so a shrinking collection can never leave the
// view on a page that no longer exists.
func Clamp(current, totalPages int) int {
	if current < 1 {
		return 1
	}
	if totalPages < 1 {
		return 1
	}
	if current > totalPages {
		return totalPages
	}
	return current
}

// Bounds returns the half-open index range [lo, hi) of the items on the
// current page, clipped to [0, n).
func Bounds(current, perPage, n int) (int, int) {
	if n <= 0 || perPage <= 0 || current < 1 {
		return 0, 0
	}
	lo := (current - 1) * perPage
	if lo > n {
		lo = n
	}
	hi := lo + perPage
	if hi > n {
		hi = n
	}
	return lo, hi
}

// Visible returns the ordered page numbers to render as controls: up to
// windowSpan consecutive pages centered on current, pinned to the ends of
// the range so the window never shrinks while pages remain.
func Visible(current, totalPages int) []int {
	if totalPages < 1 {
		return nil
	}
	start := current - 2
	if start < 1 {
		start = 1
	}
	end := start + windowSpan - 1
	if end > totalPages {
		end = totalPages
	}
	if end-start < windowSpan-1 {
		start = end - windowSpan + 1
		if start < 1 {
			start = 1
		}
	}
	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// HasPrevious reports whether a previous-page control should be offered.
func HasPrevious(current int) bool {
	return current > 1
}

// HasNext reports whether a next-page control should be offered.
func HasNext(current, totalPages int) bool {
	return current < totalPages
}
