package validation

import (
	"cmp"
	"fmt"
	"slices"
)

const chainName = "ValidationChain"

// Chain runs requests through handlers ordered by ascending priority.
// It is immutable after construction and safe for concurrent use.
type Chain struct {
	handlers []Handler
	head     *link
}

// NewChain orders handlers by priority, keeping registration order for equal priorities,
// and links them into a forward list. Nil handlers are skipped.
func NewChain(handlers ...Handler) *Chain {
	sorted := make([]Handler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			sorted = append(sorted, h)
		}
	}
	slices.SortStableFunc(sorted, func(a, b Handler) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})

	var head *link
	for i := len(sorted) - 1; i >= 0; i-- {
		head = &link{handler: sorted[i], next: head}
	}

	return &Chain{handlers: sorted, head: head}
}

// NewDefaultChain builds the string, number and pagination handlers over cfg
func NewDefaultChain(cfg Config) (*Chain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build validation chain: %w", err)
	}

	return NewChain(
		NewStringHandler(),
		NewNumberHandler(),
		NewPaginationHandler(cfg),
	), nil
}

// Validate runs req through the chain. An empty chain or a kind no handler accepts
// yields a failed result.
func (c *Chain) Validate(req Request) Result {
	if c == nil || c.head == nil {
		return Failure(chainName, req.FieldName(), msgEmptyChain)
	}
	return c.head.handle(req)
}

func (c *Chain) ValidateStringNotEmpty(value any, fieldName string) Result {
	return c.Validate(NewRequest(KindStringNotEmpty, value, fieldName, nil))
}

func (c *Chain) ValidateStringOptional(value any, fieldName string) Result {
	return c.Validate(NewRequest(KindStringOptional, value, fieldName, nil))
}

func (c *Chain) ValidatePositiveNumber(value any, fieldName string) Result {
	return c.Validate(NewRequest(KindNumberPositive, value, fieldName, nil))
}

func (c *Chain) ValidateNumberRange(value any, fieldName string, min, max float64) Result {
	return c.Validate(NewRequest(KindNumberRange, value, fieldName, map[string]any{
		ParamMin: min,
		ParamMax: max,
	}))
}

// ValidatePageable rejects negative pages, out of bound sizes, unknown sort fields
// and directions. Absent parameters take their defaults.
func (c *Chain) ValidatePageable(page, size, sortBy, sortDirection any) Result {
	return c.Validate(NewRequest(KindPageable, nil, pageableField, pageableParams(page, size, sortBy, sortDirection)))
}

// CreatePageable always succeeds with a bounded pageable; invalid input is replaced
// by defaults and reported in the warnings.
func (c *Chain) CreatePageable(page, size, sortBy, sortDirection any) Result {
	return c.Validate(NewRequest(KindPageableLenient, nil, pageableField, pageableParams(page, size, sortBy, sortDirection)))
}

func (c *Chain) ValidateSortField(value any, fieldName string) Result {
	return c.Validate(NewRequest(KindSortField, value, fieldName, nil))
}

func (c *Chain) ValidateSortDirection(value any, fieldName string) Result {
	return c.Validate(NewRequest(KindSortDirection, value, fieldName, nil))
}

func pageableParams(page, size, sortBy, sortDirection any) map[string]any {
	return map[string]any{
		ParamPage:          page,
		ParamSize:          size,
		ParamSortBy:        sortBy,
		ParamSortDirection: sortDirection,
	}
}

// Handlers describes the registered handlers in chain order
func (c *Chain) Handlers() []string {
	if c == nil {
		return []string{}
	}
	out := make([]string, 0, len(c.handlers))
	for _, h := range c.handlers {
		out = append(out, fmt.Sprintf("%s (priority %d)", h.Name(), h.Priority()))
	}
	return out
}

func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.handlers)
}
