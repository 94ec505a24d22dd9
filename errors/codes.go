package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Misuse faults: the combinator was applied with arguments it cannot run
// with. These surface on the first pull, never at combinator call time.
const (
	// ErrCodeInvalidCallback indicates a combinator was given a nil callback.
	ErrCodeInvalidCallback ErrorCode = "INVALID_CALLBACK"
	// ErrCodeInvalidArgument indicates an argument is out of the supported domain.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected engine failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
