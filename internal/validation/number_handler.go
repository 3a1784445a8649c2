package validation

import "fmt"

// NumberHandler validates positive numbers and inclusive ranges.
// Numeric strings are parsed decimal-aware; the processed value is always a float64.
type NumberHandler struct {
	base
}

func NewNumberHandler() *NumberHandler {
	return &NumberHandler{base{name: "NumberValidationHandler", priority: PriorityNumber}}
}

func (h *NumberHandler) CanHandle(req Request) bool {
	return req.Kind() == KindNumberPositive || req.Kind() == KindNumberRange
}

func (h *NumberHandler) Validate(req Request) Result {
	switch req.Kind() {
	case KindNumberPositive:
		return h.positive(req.Value(), req.FieldName())
	case KindNumberRange:
		return h.inRange(req)
	default:
		return h.unsupported(req)
	}
}

func (h *NumberHandler) positive(value any, field string) Result {
	if value == nil {
		return h.failure(field, msgRequired(field))
	}

	n, ok := toFloat(value)
	if !ok {
		return h.failure(field, msgMustBeNumber(field))
	}
	if n <= 0 {
		return h.failure(field, msgMustBePositive(field))
	}

	return h.success(field, fmt.Sprintf("field '%s' is valid", field), n)
}

func (h *NumberHandler) inRange(req Request) Result {
	field := req.FieldName()
	if req.Value() == nil {
		return h.failure(field, msgRequired(field))
	}

	n, ok := toFloat(req.Value())
	if !ok {
		return h.failure(field, msgMustBeNumber(field))
	}

	rawMin, _ := req.Param(ParamMin)
	rawMax, _ := req.Param(ParamMax)
	if rawMin == nil || rawMax == nil {
		return h.failure(field, msgRangeParamsRequired(field))
	}

	lo, ok := toFloat(rawMin)
	if !ok {
		return h.failure(field, msgParamMustBeNumber(ParamMin))
	}
	hi, ok := toFloat(rawMax)
	if !ok {
		return h.failure(field, msgParamMustBeNumber(ParamMax))
	}

	if lo > hi {
		return h.failure(field, msgInvalidRange)
	}
	if n < lo || n > hi {
		return h.failure(field, msgOutOfRange(field, lo, hi))
	}

	return h.success(field, fmt.Sprintf("field '%s' is valid", field), n)
}
