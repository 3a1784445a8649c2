// Package validation validates and normalizes request parameters through an ordered
// chain of handlers. Each handler accepts a fixed set of request kinds; the first
// handler accepting a request produces the Result. Failures are returned as values,
// never as errors or panics.
package validation
