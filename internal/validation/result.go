package validation

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/creditos/internal/apperr"
)

// Result is the outcome of a validation task. Build it with Success or Failure;
// a valid result has no errors, an invalid one has at least one error and no value.
type Result struct {
	valid       bool
	message     string
	fieldName   string
	errors      []string
	warnings    []string
	value       any
	handlerName string
}

// Success creates a valid result carrying the processed value
func Success(handlerName, fieldName, message string, value any, warnings ...string) Result {
	return Result{
		valid:       true,
		message:     message,
		fieldName:   fieldName,
		errors:      []string{},
		warnings:    nonBlank(warnings),
		value:       value,
		handlerName: handlerName,
	}
}

// Failure creates an invalid result. Blank messages are dropped; the first remaining
// one becomes the result message.
func Failure(handlerName, fieldName string, errs ...string) Result {
	kept := nonBlank(errs)
	if len(kept) == 0 {
		kept = []string{"validation failed"}
	}

	return Result{
		valid:       false,
		message:     kept[0],
		fieldName:   fieldName,
		errors:      kept,
		warnings:    []string{},
		handlerName: handlerName,
	}
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func (r Result) Valid() bool {
	return r.valid
}

func (r Result) Message() string {
	return r.message
}

func (r Result) FieldName() string {
	return r.fieldName
}

func (r Result) Errors() []string {
	return slices.Clone(r.errors)
}

func (r Result) Warnings() []string {
	return slices.Clone(r.warnings)
}

// Value returns the corrected or normalized value; nil for invalid results
func (r Result) Value() any {
	return r.value
}

func (r Result) HandlerName() string {
	return r.handlerName
}

func (r Result) FirstError() string {
	if len(r.errors) == 0 {
		return ""
	}
	return r.errors[0]
}

func (r Result) HasWarnings() bool {
	return len(r.warnings) > 0
}

// Err converts an invalid result into an *apperr.ValidationError; nil when valid
func (r Result) Err() error {
	if r.valid {
		return nil
	}
	return apperr.NewFieldValidation(r.fieldName, r.errors...)
}

// ValueAs returns the processed value of r as T
func ValueAs[T any](r Result) (T, bool) {
	v, ok := r.value.(T)
	return v, ok
}

type resultJSON struct {
	Valid          bool     `json:"valid"`
	Message        string   `json:"message"`
	FieldName      string   `json:"fieldName,omitempty"`
	Errors         []string `json:"errors"`
	Warnings       []string `json:"warnings"`
	ProcessedValue any      `json:"processedValue"`
	HandlerName    string   `json:"handlerName"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	errs, warns := r.errors, r.warnings
	if errs == nil {
		errs = []string{}
	}
	if warns == nil {
		warns = []string{}
	}

	return json.Marshal(resultJSON{
		Valid:          r.valid,
		Message:        r.message,
		FieldName:      r.fieldName,
		Errors:         errs,
		Warnings:       warns,
		ProcessedValue: r.value,
		HandlerName:    r.handlerName,
	})
}

func (r Result) String() string {
	return fmt.Sprintf("Result{valid=%t, field=%q, message=%q, handler=%s}", r.valid, r.fieldName, r.message, r.handlerName)
}
