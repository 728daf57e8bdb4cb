package errors

import "fmt"

// fault is the concrete implementation of Fault.
// It is private to enforce construction through package functions.
type fault struct {
	code    Code
	message string
	context map[string]interface{}
	cause   error
}

// Error returns the string representation of the error.
// Format: "[name:value] message" or "[name:value] message: cause" if cause is present.
func (e *fault) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// ErrorCode returns the error code.
func (e *fault) ErrorCode() Code {
	return e.code
}

// Message returns the error message.
func (e *fault) Message() string {
	return e.message
}

// Context returns a defensive copy of the context map.
// Returns nil if no context has been attached.
func (e *fault) Context() map[string]interface{} {
	if e.context == nil {
		return nil
	}
	ctx := make(map[string]interface{}, len(e.context))
	for k, v := range e.context {
		ctx[k] = v
	}
	return ctx
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *fault) Unwrap() error {
	return e.cause
}

// asFault returns err as a Fault, converting foreign errors to one
// carrying CodeUnknown.
func asFault(err error) Fault {
	var f Fault
	if As(err, &f) {
		return f
	}
	return &fault{
		code:    CodeUnknown,
		message: err.Error(),
		cause:   err,
	}
}
