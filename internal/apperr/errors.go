package apperr

import "strings"

// ValidationError reports input rejected by validation. Field and Errors are optional:
// Field names the offending input, Errors lists every problem found when there is more than one.
type ValidationError struct {
	Message string
	Field   string
	Errors  []string
	Err     error
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if len(e.Errors) > 1 {
		msg = strings.Join(e.Errors, "; ")
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NewFieldValidation creates a validation error attributed to field.
// Message is the first entry of errs.
func NewFieldValidation(field string, errs ...string) *ValidationError {
	e := &ValidationError{Field: field, Errors: append([]string(nil), errs...)}
	if len(errs) > 0 {
		e.Message = errs[0]
	} else {
		e.Message = "validation failed"
	}
	return e
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func NewForbidden(msg string) *ForbiddenError {
	return &ForbiddenError{Message: msg}
}
