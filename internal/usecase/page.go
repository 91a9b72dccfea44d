package usecase

// PageInput is the 1-based page request of admin and notification listings.
type PageInput struct {
	Page  int
	Limit int
}

// Normalize fills in page 1 and defaultLimit for missing or non-positive values.
func (p PageInput) Normalize(defaultLimit int) PageInput {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}

	return p
}

// Offset is the number of rows skipped before this page.
func (p PageInput) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is one page of a listing with its totals.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewPage builds a page from a normalized request.
func NewPage[T any](items []T, total int64, in PageInput) *Page[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if in.Limit > 0 {
		totalPages = int((total + int64(in.Limit) - 1) / int64(in.Limit))
	}

	return &Page[T]{
		Items:      items,
		Total:      total,
		Page:       in.Page,
		Limit:      in.Limit,
		TotalPages: totalPages,
	}
}
