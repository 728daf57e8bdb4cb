package errors

// WithContext adds a single context field to an error.
// Returns a new Fault with the context field added.
// Existing context fields are preserved.
//
// If err is not a Fault, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(code, "step failed")
//	err = errors.WithContext(err, "sequence_id", id)
//	err = errors.WithContext(err, "step", 2)
func WithContext(err error, key string, value interface{}) Fault {
	if err == nil {
		return nil
	}

	f := asFault(err)

	newContext := make(map[string]interface{})
	for k, v := range f.Context() {
		newContext[k] = v
	}
	newContext[key] = value

	return &fault{
		code:    f.ErrorCode(),
		message: f.Message(),
		context: newContext,
		cause:   f.Unwrap(),
	}
}

// WithContextMap adds multiple context fields to an error.
// Returns a new Fault with the context fields merged.
// Existing context fields are preserved; new fields override existing ones with the same key.
//
// If err is not a Fault, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) Fault {
	if err == nil {
		return nil
	}

	f := asFault(err)

	newContext := make(map[string]interface{})
	for k, v := range f.Context() {
		newContext[k] = v
	}
	// New fields override existing
	for k, v := range ctx {
		newContext[k] = v
	}

	return &fault{
		code:    f.ErrorCode(),
		message: f.Message(),
		context: newContext,
		cause:   f.Unwrap(),
	}
}
