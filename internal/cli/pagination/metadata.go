package pagination

// Meta describes the printed page.
type Meta struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// NewMeta computes page metadata for total items.
func NewMeta(p Params, total int) Meta {
	size := p.effectivePageSize(total)
	pages := 0
	if total > 0 {
		pages = (total + size - 1) / size
	}
	current := max(p.Page, 1)
	if pages > 0 {
		current = min(current, pages)
	}
	return Meta{
		CurrentPage: current,
		PageSize:    size,
		TotalPages:  pages,
		TotalItems:  total,
		HasPrevious: current > 1,
		HasNext:     current < pages,
	}
}
