// Package errors provides categorized error codes and a structured error type.
//
// A Code is a (Category, value) pair. Categories are process-lifetime
// singletons compared by identity, so two libraries can both define a
// category called "io" without their codes ever colliding. Codes are the
// failure half of a result.Result and the output of the fault classifiers in
// package classify.
//
// # Features
//
//   - Categories with per-value messages (messages may be empty)
//   - Comparable, immutable codes (== and Equal agree)
//   - The Coder extension point for domain enums
//   - A reserved CodeUnknown in the built-in UnknownCategory
//   - Fault: an error carrying a Code, a message, context and a cause
//   - JSON serialization for codes and faults
//
// # Defining a category
//
//	type Kind int
//
//	const (
//	    NotReady Kind = iota + 1
//	    Exhausted
//	)
//
//	var Category = errors.NewCategory("pool", errors.MessageTable(map[int]string{
//	    int(NotReady):  "pool not ready",
//	    int(Exhausted): "pool exhausted",
//	}))
//
//	func (k Kind) ErrorCode() errors.Code {
//	    return errors.MakeCode(Category, int(k))
//	}
//
// Any Kind value can now be used where a Coder is accepted:
//
//	code := errors.Make(Exhausted)
//	fmt.Println(code, code.Message()) // pool:2 pool exhausted
//
// # Faults
//
// A Fault carries an existing code through the ordinary error channel:
//
//	err := errors.New(errors.Make(Exhausted), "no idle workers")
//	err = errors.WithContext(err, "size", 8)
//
//	errors.GetCode(err) == errors.Make(Exhausted) // true
//
// Wrapping keeps the cause reachable by errors.Is and errors.As:
//
//	return errors.Wrap(err, errors.Make(NotReady), "warmup failed")
//
// # Standard Library Compatibility
//
// Fault implements the error interface and works with errors.Is, errors.As
// and errors.Unwrap. GetCode finds the outermost Coder in a chain and falls
// back to CodeUnknown.
package errors
