package errors

// Fault extends the standard error interface with a structured Code.
//
// A Fault is how ordinary Go code hands an already-categorized failure through
// the error channel. Classifiers forward its code verbatim instead of mapping
// it to a generic one. Faults are compatible with standard library error
// handling (errors.Is, errors.As, errors.Unwrap).
type Fault interface {
	error

	// ErrorCode returns the code identifying the failure.
	ErrorCode() Code

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
