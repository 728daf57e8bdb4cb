package classify

import "github.com/jmgilman/go/expected/errors"

// Kind enumerates registration failures of a Chain.
type Kind int

const (
	// Frozen indicates a registration after the chain started classifying.
	Frozen Kind = iota + 1

	// Duplicate indicates a classifier name that is already registered.
	Duplicate

	// NotRegistered indicates a reference to an unknown classifier name.
	NotRegistered

	// Invalid indicates a nil classifier, empty name, or bad index.
	Invalid
)

// Category is the category of chain registration failures.
var Category = errors.NewCategory("classify", errors.MessageTable(map[int]string{
	int(Frozen):        "chain is frozen",
	int(Duplicate):     "classifier already registered",
	int(NotRegistered): "classifier not registered",
	int(Invalid):       "invalid registration",
}))

// ErrorCode implements errors.Coder.
func (k Kind) ErrorCode() errors.Code {
	return errors.MakeCode(Category, int(k))
}

var (
	// CodeFrozen is returned when registering on a frozen chain.
	CodeFrozen = errors.Make(Frozen)

	// CodeDuplicate is returned when a name is registered twice.
	CodeDuplicate = errors.Make(Duplicate)

	// CodeNotRegistered is returned by InsertBefore for an unknown target.
	CodeNotRegistered = errors.Make(NotRegistered)

	// CodeInvalid is returned for nil classifiers, empty names and bad indexes.
	CodeInvalid = errors.Make(Invalid)
)
