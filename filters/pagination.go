package filters

// DefaultPageSize matches the collection grid (12 products per page).
const DefaultPageSize = 12

// Window describes the 1-based display range for a page of results.
type Window struct {
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
	Total   int `json:"total"`
	Start   int `json:"start"`
	End     int `json:"end"`
}

// Paginate derives the display window for a 1-based page cursor over total
// results. An empty result set yields a [0, 0] window.
func Paginate(page, perPage, total int) Window {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPageSize
	}
	w := Window{Page: page, PerPage: perPage, Total: total}
	if total == 0 {
		return w
	}
	w.Start = (page-1)*perPage + 1
	w.End = page * perPage
	if w.End > total {
		w.End = total
	}
	return w
}

// HasPrev reports whether a previous page exists.
func (w Window) HasPrev() bool {
	return w.Page > 1
}

// HasNext reports whether a further page exists.
func (w Window) HasNext() bool {
	return w.Page*w.PerPage < w.Total
}

// TotalPages is the number of pages needed to show every result.
func (w Window) TotalPages() int {
	if w.Total == 0 {
		return 0
	}
	return (w.Total + w.PerPage - 1) / w.PerPage
}
