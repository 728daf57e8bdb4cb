package errors

import (
	"gopkg.in/yaml.v3"
)

// ToYAML renders err as a YAML document with the fields of ErrorResponse.
// Returns nil, nil if err is nil.
func ToYAML(err error) ([]byte, error) {
	if err == nil {
		return nil, nil
	}
	data, merr := yaml.Marshal(ToJSON(err))
	if merr != nil {
		return nil, Wrap(merr, CodeUnknown, "failed to marshal error response")
	}
	return data, nil
}

// MarshalYAML implements yaml.Marshaler for Code.
func (c Code) MarshalYAML() (interface{}, error) {
	return codeResponse{
		Category: categoryName(c),
		Value:    c.value,
		Message:  c.Message(),
	}, nil
}
