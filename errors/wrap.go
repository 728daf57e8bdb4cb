package errors

import "fmt"

// Wrap wraps an error with a code and message while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	f, err := fsys.Open(name)
//	if err != nil {
//	    return errors.Wrap(err, errors.Make(fsfault.NotExist), "config missing")
//	}
func Wrap(err error, code Code, message string) Fault {
	if err == nil {
		return nil
	}

	return &fault{
		code:    code,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
func Wrapf(err error, code Code, format string, args ...interface{}) Fault {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := step(); err != nil {
//	    return errors.WrapWithContext(err, code, "step failed", map[string]interface{}{
//	        "step": 3,
//	    })
//	}
func WrapWithContext(err error, code Code, message string, ctx map[string]interface{}) Fault {
	if err == nil {
		return nil
	}

	var contextCopy map[string]interface{}
	if ctx != nil {
		contextCopy = make(map[string]interface{}, len(ctx))
		for k, v := range ctx {
			contextCopy[k] = v
		}
	}

	return &fault{
		code:    code,
		message: message,
		context: contextCopy,
		cause:   err,
	}
}
