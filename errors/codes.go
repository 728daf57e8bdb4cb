package errors

import "strconv"

// Code identifies a specific failure: a category plus a numeric value.
//
// Code is an immutable value type. Two codes are equal (== or Equal) when
// they share the same category instance and the same value.
type Code struct {
	category Category
	value    int
}

// Coder is implemented by anything that carries a Code.
// Domain enums implement it to plug into the code system:
//
//	type Kind int
//
//	func (k Kind) ErrorCode() errors.Code {
//	    return errors.MakeCode(Category, int(k))
//	}
type Coder interface {
	ErrorCode() Code
}

// MakeCode builds a code from a category and a value.
func MakeCode(category Category, value int) Code {
	return Code{category: category, value: value}
}

// Make returns the code carried by c.
func Make(c Coder) Code {
	return c.ErrorCode()
}

// Category returns the category the code belongs to.
// Returns nil for the zero Code.
func (c Code) Category() Category {
	return c.category
}

// Value returns the numeric value of the code.
func (c Code) Value() int {
	return c.value
}

// Message returns the category's description of the value.
// The result may be empty.
func (c Code) Message() string {
	if c.category == nil {
		return ""
	}
	return c.category.Message(c.value)
}

// Equal reports whether c and other identify the same failure.
func (c Code) Equal(other Code) bool {
	return c == other
}

// IsZero reports whether c is the zero Code (no category).
func (c Code) IsZero() bool {
	return c.category == nil
}

// ErrorCode returns c itself, so a Code is also a Coder.
func (c Code) ErrorCode() Code {
	return c
}

// String returns "name:value".
func (c Code) String() string {
	if c.category == nil {
		return "<none>:" + strconv.Itoa(c.value)
	}
	return c.category.Name() + ":" + strconv.Itoa(c.value)
}
