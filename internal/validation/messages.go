package validation

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	msgInvalidRange = "min must be less than or equal to max"
	msgEmptyChain   = "no validation handlers configured"
)

func msgRequired(field string) string {
	return fmt.Sprintf("field '%s' is required", field)
}

func msgMustBeString(field string) string {
	return fmt.Sprintf("field '%s' must be a string", field)
}

func msgCannotBeEmpty(field string) string {
	return fmt.Sprintf("field '%s' cannot be empty", field)
}

func msgMustBeNumber(field string) string {
	return fmt.Sprintf("field '%s' must be a number", field)
}

func msgMustBeInteger(field string) string {
	return fmt.Sprintf("field '%s' must be an integer", field)
}

func msgMustBePositive(field string) string {
	return fmt.Sprintf("field '%s' must be positive", field)
}

func msgRangeParamsRequired(field string) string {
	return fmt.Sprintf("parameters 'min' and 'max' are required to validate the range of field '%s'", field)
}

func msgParamMustBeNumber(param string) string {
	return fmt.Sprintf("parameter '%s' must be a number", param)
}

func msgOutOfRange(field string, min, max float64) string {
	return fmt.Sprintf("field '%s' must be between %s and %s", field, formatNumber(min), formatNumber(max))
}

func msgPageNegative(field string) string {
	return fmt.Sprintf("field '%s' must not be negative", field)
}

func msgTooLarge(field string, max int) string {
	return fmt.Sprintf("field '%s' must not exceed %d", field, max)
}

func msgInvalidSortField(value string, valid []string) string {
	return fmt.Sprintf("invalid sort field '%s'; valid fields: [%s]", value, strings.Join(valid, ", "))
}

func msgInvalidDirection(field string) string {
	return fmt.Sprintf("field '%s' must be ASC or DESC", field)
}

func msgUnhandled(kind Kind) string {
	return fmt.Sprintf("no handler available for validation kind %s", kind)
}

func msgUnsupportedKind(handler string, kind Kind) string {
	return fmt.Sprintf("validation kind %s is not supported by %s", kind, handler)
}

func msgDefaulted(field string, value any) string {
	return fmt.Sprintf("field '%s' not specified; defaulted to %v", field, value)
}

func msgCorrected(field string, from, to any) string {
	return fmt.Sprintf("field '%s' value %v is invalid; replaced by %v", field, from, to)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
