// Package pagination slices ordered result sets into fixed-size, page-numbered
// windows. Every feed in the application (home, group, profile, follow) uses the
// same window size and clamping rules.
package pagination

// DefaultPageSize is the number of items per feed page.
const DefaultPageSize = 10

// Page describes one window into an ordered collection. Out-of-range requests
// clamp to the nearest valid page instead of erroring, so Number always refers
// to a page that exists (page 1 when the collection is empty).
type Page struct {
	Number     int   `json:"page"`
	Size       int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// New computes the page window for a collection of totalItems, clamping the
// requested page number into the valid range. A size of zero or less falls back
// to DefaultPageSize.
func New(totalItems int64, requested, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}

	totalPages := int((totalItems + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	number := requested
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return Page{
		Number:     number,
		Size:       size,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
	}
}

// Offset returns the item offset of the first element on this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit returns the maximum number of items on this page.
func (p Page) Limit() int {
	return p.Size
}
