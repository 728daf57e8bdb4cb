package errors

// Category is a named source of error codes.
//
// Categories are compared by identity, not by name: two categories created
// with the same name are distinct and their codes never compare equal.
// Implementations must therefore be comparable, and in practice are pointers
// held in package-level variables.
type Category interface {
	// Name returns the human-readable name of the category.
	Name() string

	// Message returns the description for a value in this category.
	// An empty string is a valid answer for values without canonical text.
	Message(value int) string
}

// category is the Category returned by NewCategory.
type category struct {
	name    string
	message func(value int) string
}

// NewCategory creates a new category singleton.
// The message function may be nil, in which case every value has an empty message.
//
// Categories are meant to be created once, at package initialization:
//
//	var Category = errors.NewCategory("storage", func(v int) string { ... })
func NewCategory(name string, message func(value int) string) Category {
	return &category{name: name, message: message}
}

// Name returns the category name.
func (c *category) Name() string {
	return c.name
}

// Message returns the description for value, or "" if none is known.
func (c *category) Message(value int) string {
	if c.message == nil {
		return ""
	}
	return c.message(value)
}

// MessageTable returns a message function backed by a fixed table.
// Values missing from the table yield an empty message.
func MessageTable(table map[int]string) func(value int) string {
	return func(value int) string {
		return table[value]
	}
}

// UnknownCategory is the built-in fallback category.
// It holds the single reserved code CodeUnknown.
var UnknownCategory = NewCategory("unknown", MessageTable(map[int]string{
	unknownValue: "unknown fault",
}))

const unknownValue = 1

// CodeUnknown is the reserved code for faults nothing else recognized.
var CodeUnknown = MakeCode(UnknownCategory, unknownValue)
