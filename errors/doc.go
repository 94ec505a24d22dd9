// Package errors provides unified error handling for the queryable engine.
// It implements a structured error type with machine-readable codes so that
// callers can distinguish engine misuse faults (nil callbacks, invalid
// arguments) from errors raised inside user-supplied callbacks.
package errors
