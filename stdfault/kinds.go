package stdfault

import "github.com/jmgilman/go/expected/errors"

// Kind enumerates the faults the Go runtime and standard library raise.
type Kind int

const (
	// Error is any error value no more specific classifier recognized.
	Error Kind = iota + 1

	// Message is a panic with a plain string value.
	Message

	// Runtime is a runtime.Error without a more specific kind.
	Runtime

	// IndexOutOfRange is an index or slice expression outside the bounds.
	IndexOutOfRange

	// NilDereference is an access through a nil pointer.
	NilDereference

	// DivideByZero is an integer division by zero.
	DivideByZero

	// NilMap is an assignment to an entry in a nil map.
	NilMap

	// ClosedChannel is a send on or close of a closed channel, or a close of a nil channel.
	ClosedChannel

	// TypeAssertion is a failed non-comma-ok type assertion.
	TypeAssertion

	// PanicNil is panic(nil).
	PanicNil

	// InvalidArgument is a strconv syntax error.
	InvalidArgument

	// OutOfRange is a strconv value that does not fit the target type.
	OutOfRange

	// Canceled is context.Canceled.
	Canceled

	// DeadlineExceeded is context.DeadlineExceeded.
	DeadlineExceeded

	// BadAccess is reading the wrong side of a result.Result.
	BadAccess
)

var messages = map[int]string{
	int(Error):            "error",
	int(Message):          "panic message",
	int(Runtime):          "runtime error",
	int(IndexOutOfRange):  "index out of range",
	int(NilDereference):   "nil pointer dereference",
	int(DivideByZero):     "integer divide by zero",
	int(NilMap):           "assignment to entry in nil map",
	int(ClosedChannel):    "invalid channel operation",
	int(TypeAssertion):    "type assertion failed",
	int(PanicNil):         "panic called with nil argument",
	int(InvalidArgument):  "invalid argument",
	int(OutOfRange):       "value out of range",
	int(Canceled):         "context canceled",
	int(DeadlineExceeded): "context deadline exceeded",
	int(BadAccess):        "bad result access",
}

// Category is the category of Go runtime and standard library faults.
var Category = errors.NewCategory("go.runtime", errors.MessageTable(messages))

// ErrorCode implements errors.Coder.
func (k Kind) ErrorCode() errors.Code {
	return errors.MakeCode(Category, int(k))
}

// String returns the kind's message.
func (k Kind) String() string {
	return Category.Message(int(k))
}
