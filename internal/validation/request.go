package validation

import (
	"fmt"
	"maps"
)

// Parameter keys understood by the handlers
const (
	ParamMin           = "min"
	ParamMax           = "max"
	ParamPage          = "page"
	ParamSize          = "size"
	ParamSortBy        = "sortBy"
	ParamSortDirection = "sortDirection"
)

// Request describes one validation task. It is immutable once created.
type Request struct {
	kind      Kind
	value     any
	fieldName string
	params    map[string]any
}

// NewRequest creates a request. params is copied; a nil map is replaced by an empty one.
func NewRequest(kind Kind, value any, fieldName string, params map[string]any) Request {
	cp := make(map[string]any, len(params))
	maps.Copy(cp, params)

	return Request{
		kind:      kind,
		value:     value,
		fieldName: fieldName,
		params:    cp,
	}
}

func (r Request) Kind() Kind {
	return r.kind
}

func (r Request) Value() any {
	return r.value
}

func (r Request) FieldName() string {
	return r.fieldName
}

// Param returns the parameter stored under key. A key holding nil reports ok=true.
func (r Request) Param(key string) (any, bool) {
	v, ok := r.params[key]
	return v, ok
}

// Params returns a copy of the parameters
func (r Request) Params() map[string]any {
	cp := make(map[string]any, len(r.params))
	maps.Copy(cp, r.params)
	return cp
}

func (r Request) String() string {
	return fmt.Sprintf("Request{kind=%s, field=%q, value=%v, params=%v}", r.kind, r.fieldName, r.value, r.params)
}
