package paging

// Pure page arithmetic. Every function here is side-effect free and total:
// out-of-domain inputs map to the empty-collection values rather than
// panicking, because the caller may be mid-keystroke in a live view.

// TotalPages returns the number of pages needed to hold total items at
// limit items per page. An empty collection has zero pages.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit > 0 {
		pages++
	}
	return pages
}

// Offset returns the zero-based index of the first item on page.
// Pages are 1-indexed throughout the engine.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// ItemRange returns the 1-based inclusive item bounds shown on page,
// e.g. "11-15 of 23". Both bounds are zero when the collection is empty.
func ItemRange(page, limit, total int) (start, end int) {
	if total <= 0 {
		return 0, 0
	}
	off := Offset(page, limit)
	start = off + 1
	end = off + limit
	if end > total {
		end = total
	}
	return start, end
}

// HasPrev reports whether a page before the current one exists.
func HasPrev(page int) bool {
	return page > 1
}

// HasNext reports whether a page after the current one exists, given a
// known page count. For unknown-total sources see Controller, which tracks
// the data source's has-more signal instead.
func HasNext(page, totalPages int) bool {
	return page < totalPages
}
