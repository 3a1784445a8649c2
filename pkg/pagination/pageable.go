package pagination

import (
	"fmt"
	"math"
)

// Pageable is a normalized request for one bounded slice of a larger result set.
// Page is zero-based.
type Pageable struct {
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	SortField     string    `json:"sortField"`
	SortDirection Direction `json:"sortDirection"`
}

// DefaultPageable returns the first page with package defaults
func DefaultPageable() Pageable {
	return Pageable{
		Page:          0,
		Size:          DefaultPageSize,
		SortField:     DefaultSortField,
		SortDirection: ASC,
	}
}

// Offset returns the number of items preceding the page.
// Negative inputs yield 0 and a product beyond the int range saturates at math.MaxInt.
func (p Pageable) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

func (p Pageable) String() string {
	return fmt.Sprintf("page=%d size=%d sort=%s,%s", p.Page, p.Size, p.SortField, p.SortDirection)
}
