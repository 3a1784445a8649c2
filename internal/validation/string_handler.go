package validation

import (
	"fmt"
	"strings"
)

// StringHandler validates required and optional strings. Valid values are trimmed.
type StringHandler struct {
	base
}

func NewStringHandler() *StringHandler {
	return &StringHandler{base{name: "StringValidationHandler", priority: PriorityString}}
}

func (h *StringHandler) CanHandle(req Request) bool {
	return req.Kind() == KindStringNotEmpty || req.Kind() == KindStringOptional
}

func (h *StringHandler) Validate(req Request) Result {
	switch req.Kind() {
	case KindStringNotEmpty:
		return h.notEmpty(req.Value(), req.FieldName())
	case KindStringOptional:
		return h.optional(req.Value(), req.FieldName())
	default:
		return h.unsupported(req)
	}
}

func (h *StringHandler) notEmpty(value any, field string) Result {
	if value == nil {
		return h.failure(field, msgRequired(field))
	}

	s, ok := value.(string)
	if !ok {
		return h.failure(field, msgMustBeString(field))
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return h.failure(field, msgCannotBeEmpty(field))
	}

	return h.success(field, fmt.Sprintf("field '%s' is valid", field), trimmed)
}

// optional accepts absent and blank strings as nil. A present non-string value is rejected.
func (h *StringHandler) optional(value any, field string) Result {
	if value == nil {
		return h.success(field, fmt.Sprintf("field '%s' is optional and absent", field), nil, msgDefaulted(field, nil))
	}

	s, ok := value.(string)
	if !ok {
		return h.failure(field, msgMustBeString(field))
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return h.success(field, fmt.Sprintf("field '%s' is optional and blank", field), nil, msgDefaulted(field, nil))
	}

	return h.success(field, fmt.Sprintf("field '%s' is valid", field), trimmed)
}
