package result

import (
	"fmt"

	"github.com/jmgilman/go/expected/errors"
)

// Void is the value type of a Result that carries no payload.
type Void = struct{}

// Result holds either a value of type T or an error Code.
//
// Exactly one variant is populated. The zero Result is a failure carrying
// errors.CodeUnknown, so an uninitialized Result can never be mistaken for a
// success.
type Result[T any] struct {
	value T
	code  errors.Code
	ok    bool
}

// Success returns a Result holding v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Failure returns a Result holding code.
// A zero code is replaced with errors.CodeUnknown.
func Failure[T any](code errors.Code) Result[T] {
	if code.IsZero() {
		code = errors.CodeUnknown
	}
	return Result[T]{code: code}
}

// Fail returns a failed Result holding the code carried by c.
//
// Example:
//
//	return result.Fail[int](stdfault.InvalidArgument)
func Fail[T any](c errors.Coder) Result[T] {
	return Failure[T](c.ErrorCode())
}

// Ok returns a successful Result[Void].
func Ok() Result[Void] {
	return Success(Void{})
}

// HasValue reports whether r holds a value.
func (r Result[T]) HasValue() bool {
	return r.ok
}

// Value returns the held value.
// It panics with an *AccessError if r is a failure.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(&AccessError{Op: "Value", Code: r.Error()})
	}
	return r.value
}

// Error returns the held code.
// It panics with an *AccessError if r is a success.
func (r Result[T]) Error() errors.Code {
	if r.ok {
		panic(&AccessError{Op: "Error"})
	}
	if r.code.IsZero() {
		return errors.CodeUnknown
	}
	return r.code
}

// Get returns the value and true, or the zero value and false on failure.
// It never panics.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// ValueOr returns the held value, or def on failure.
func (r Result[T]) ValueOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// Err returns nil on success, or an errors.Fault carrying the code.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	code := r.Error()
	return errors.New(code, code.Message())
}

// String renders the Result for logs and test failures.
func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("success(%v)", r.value)
	}
	return fmt.Sprintf("failure(%s)", r.Error())
}
