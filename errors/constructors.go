package errors

import "fmt"

// New creates a new Fault with the given code and message.
//
// Example:
//
//	err := errors.New(classify.CodeFrozen, "chain is frozen")
func New(code Code, message string) Fault {
	return &fault{
		code:    code,
		message: message,
	}
}

// Newf creates a new Fault with a formatted message.
//
// Example:
//
//	err := errors.Newf(classify.CodeDuplicate, "classifier %q already registered", name)
func Newf(code Code, format string, args ...interface{}) Fault {
	return &fault{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}
