package validation

import (
	"fmt"
	"log/slog"
)

// Default priority bands. Lower values run first; the gaps leave room for new handler types.
const (
	PriorityString     = 100
	PriorityNumber     = 200
	PriorityPagination = 300
)

// Handler validates the request kinds it accepts.
// Implementations must be safe for concurrent use and hold no per-request state.
type Handler interface {
	Name() string
	Priority() int
	// CanHandle must be a pure predicate over the request kind
	CanHandle(req Request) bool
	// Validate is only called for requests CanHandle accepted
	Validate(req Request) Result
}

// base carries the identity shared by the built-in handlers
type base struct {
	name     string
	priority int
}

func (b base) Name() string {
	return b.name
}

func (b base) Priority() int {
	return b.priority
}

func (b base) success(field, message string, value any, warnings ...string) Result {
	return Success(b.name, field, message, value, warnings...)
}

func (b base) failure(field string, errs ...string) Result {
	return Failure(b.name, field, errs...)
}

func (b base) unsupported(req Request) Result {
	return b.failure(req.FieldName(), msgUnsupportedKind(b.name, req.Kind()))
}

// link is one node of the chain's forward list
type link struct {
	handler Handler
	next    *link
}

// handle runs the request on the first handler from l onwards that accepts it
func (l *link) handle(req Request) Result {
	for n := l; n != nil; n = n.next {
		if accepts(n.handler, req) {
			return invoke(n.handler, req)
		}
	}
	return Failure(chainName, req.FieldName(), msgUnhandled(req.Kind()))
}

func accepts(h Handler, req Request) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Validation handler predicate panicked", "handler", h.Name(), "kind", req.Kind(), "panic", r)
			ok = false
		}
	}()
	return h.CanHandle(req)
}

// invoke converts a panicking handler into a failed result
func invoke(h Handler, req Request) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Validation handler panicked", "handler", h.Name(), "kind", req.Kind(), "panic", r)
			res = Failure(h.Name(), req.FieldName(), fmt.Sprintf("error during validation: %v", r))
		}
	}()
	return h.Validate(req)
}
