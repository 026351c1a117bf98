// Package paginate slices full in-memory collections into fixed-size pages.
//
// All list endpoints fetch the complete filtered collection from the upstream
// API and page it locally, so the math lives in one place: total pages is
// ceil(n/size) with a floor of one page, and out-of-range page requests clamp
// into [1, TotalPages] instead of failing. Clamping is what makes a view step
// back a page when the underlying collection shrinks under it.
package paginate

// Info is the pagination envelope attached to list responses.
type Info struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// TotalPages returns ceil(n/size), and at least 1 so an empty collection
// still renders as a single empty page.
func TotalPages(n, size int) int {
	if size <= 0 {
		return 1
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Clamp forces page into [1, totalPages].
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Page returns the slice [ (page-1)*size, page*size ) of items together with
// the envelope describing it. The requested page is clamped first, so after a
// deletion empties the last page the caller lands on the previous one.
func Page[T any](items []T, page, size int) ([]T, Info) {
	n := len(items)
	totalPages := TotalPages(n, size)
	page = Clamp(page, totalPages)

	lo := (page - 1) * size
	hi := lo + size
	if lo > n {
		lo = n
	}
	if hi > n {
		hi = n
	}

	return items[lo:hi], Info{
		Total:      n,
		Page:       page,
		Limit:      size,
		TotalPages: totalPages,
	}
}
