package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var f errors.Fault
//	if errors.As(err, &f) {
//	    code := f.ErrorCode()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the Code from an error.
// Returns CodeUnknown if the error is nil or carries no code.
//
// The chain is searched for the outermost error implementing Coder, so a
// Fault wrapping another Fault reports its own code.
//
// Example:
//
//	if errors.GetCode(err) == classify.CodeFrozen {
//	    // register earlier
//	}
func GetCode(err error) Code {
	if err == nil {
		return CodeUnknown
	}

	var coder Coder
	if stderrors.As(err, &coder) {
		return coder.ErrorCode()
	}

	return CodeUnknown
}

// HasCode reports whether err carries exactly code.
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}
