package pagination

// PageResult represents one page of an offset-paginated result set.
// Generic type T allows reuse across different entity types
type PageResult[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	HasNext       bool  `json:"hasNext"`
	HasPrevious   bool  `json:"hasPrevious"`
}

// NewPageResult builds the page metadata from the items of the page, the total number
// of matching items and the pageable used to fetch them.
func NewPageResult[T any](items []T, total int64, p Pageable) *PageResult[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if p.Size > 0 {
		totalPages = int((total + int64(p.Size) - 1) / int64(p.Size))
	}

	hasNext := p.Page < totalPages-1

	return &PageResult[T]{
		Content:       items,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         p.Page == 0,
		Last:          !hasNext,
		HasNext:       hasNext,
		HasPrevious:   p.Page > 0,
	}
}
