// Package errors provides structured error types for the hibiscus host layer.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes context: load path, offending value,
// and cause chain.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.Argument("bad environment variable name: contains null byte")
//	err := errors.NotFound(errors.PhaseLoad, "capability", name)
//
// The environment bridge's guest-visible ArgumentError is any error with
// Kind KindArgument; everything else is host-fatal during bootstrap.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
