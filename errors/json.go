package errors

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure of a coded error.
// It provides a flat, serializable representation of errors without exposing
// internal error chains.
type ErrorResponse struct {
	// Category is the name of the code's category.
	Category string `json:"category" yaml:"category"`

	// Value is the numeric value of the code.
	Value int `json:"value" yaml:"value"`

	// Message is the human-readable error message.
	Message string `json:"message" yaml:"message"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty" yaml:"context,omitempty"`
}

// codeResponse is the JSON form of a bare Code.
type codeResponse struct {
	Category string `json:"category" yaml:"category"`
	Value    int    `json:"value" yaml:"value"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For Fault instances, extracts code, message, and context.
// For standard errors, uses CodeUnknown and the error message.
//
// The wrapped error chain is intentionally excluded.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	code := GetCode(err)
	message := err.Error()
	var context map[string]interface{}

	var f Fault
	if As(err, &f) {
		message = f.Message()
		context = f.Context()
	}

	return &ErrorResponse{
		Category: categoryName(code),
		Value:    code.Value(),
		Message:  message,
		Context:  context,
	}
}

// MarshalJSON implements json.Marshaler for fault.
//
// Example:
//
//	err := errors.New(errors.CodeUnknown, "boom")
//	jsonBytes, _ := json.Marshal(err)
//	// Output: {"category":"unknown","value":1,"message":"boom"}
func (e *fault) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Category: categoryName(e.code),
		Value:    e.code.Value(),
		Message:  e.message,
		Context:  e.context,
	}
	data, err := json.Marshal(response)
	if err != nil {
		return nil, &fault{
			code:    CodeUnknown,
			message: "failed to marshal error response",
			cause:   err,
		}
	}
	return data, nil
}

// MarshalJSON implements json.Marshaler for Code.
func (c Code) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(codeResponse{
		Category: categoryName(c),
		Value:    c.value,
		Message:  c.Message(),
	})
	if err != nil {
		return nil, &fault{
			code:    CodeUnknown,
			message: "failed to marshal code",
			cause:   err,
		}
	}
	return data, nil
}

func categoryName(c Code) string {
	if c.category == nil {
		return ""
	}
	return c.category.Name()
}
