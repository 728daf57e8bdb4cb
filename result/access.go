package result

import (
	"fmt"

	"github.com/jmgilman/go/expected/errors"
)

// AccessError is the panic value raised when the wrong variant of a Result
// is read. It signals a programming error, not a recoverable condition.
type AccessError struct {
	// Op is the accessor that was misused ("Value" or "Error").
	Op string

	// Code is the failure held by the Result when Op is "Value".
	Code errors.Code
}

// Error implements the error interface.
func (e *AccessError) Error() string {
	if e.Op == "Value" {
		return fmt.Sprintf("result: Value called on failure(%s)", e.Code)
	}
	return fmt.Sprintf("result: %s called on success", e.Op)
}
