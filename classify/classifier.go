package classify

import (
	stderrors "errors"
	"reflect"

	"github.com/jmgilman/go/expected/errors"
	"github.com/jmgilman/go/expected/result"
)

// Classifier recognizes a class of faults and assigns them a code.
//
// Classify returns a successful result to decline (the fault falls through
// to the next classifier) or a failed result carrying the code it assigns.
// A failure carrying errors.CodeUnknown, which includes the zero Result,
// also declines: Unknown is reserved for the chain's own fallback.
// Classifiers must be pure: no side effects beyond producing the result.
type Classifier interface {
	Classify(fault any) result.Result[result.Void]
}

// Func adapts an ordinary function to the Classifier interface.
type Func func(fault any) result.Result[result.Void]

// Classify calls f(fault).
func (f Func) Classify(fault any) result.Result[result.Void] {
	return f(fault)
}

// Declined is the result a classifier returns for a fault it does not claim.
func Declined() result.Result[result.Void] {
	return result.Ok()
}

// Matched is the result a classifier returns when it recognizes a fault.
func Matched(code errors.Code) result.Result[result.Void] {
	return result.Failure[result.Void](code)
}

var errorType = reflect.TypeFor[error]()

// Match returns a classifier dispatching on the dynamic type of the fault.
//
// The fault matches when it is an F, or when it is an error whose chain
// contains an F (found with errors.As). fn then decides the code; returning
// false declines.
//
// Example:
//
//	classify.Match(func(e *strconv.NumError) (errors.Code, bool) {
//	    return errors.Make(InvalidArgument), true
//	})
func Match[F any](fn func(F) (errors.Code, bool)) Classifier {
	t := reflect.TypeFor[F]()
	searchChain := t.Kind() == reflect.Interface || t.Implements(errorType)

	return Func(func(fault any) result.Result[result.Void] {
		if f, ok := fault.(F); ok {
			return decide(fn, f)
		}
		if !searchChain {
			return Declined()
		}
		err, ok := fault.(error)
		if !ok {
			return Declined()
		}
		var target F
		if stderrors.As(err, &target) {
			return decide(fn, target)
		}
		return Declined()
	})
}

// MatchCode returns a classifier assigning code to every fault of type F.
func MatchCode[F any](code errors.Code) Classifier {
	return Match(func(F) (errors.Code, bool) {
		return code, true
	})
}

// Sentinel returns a classifier assigning code to error faults whose chain
// contains target (found with errors.Is).
func Sentinel(target error, code errors.Code) Classifier {
	return Func(func(fault any) result.Result[result.Void] {
		if err, ok := fault.(error); ok && stderrors.Is(err, target) {
			return Matched(code)
		}
		return Declined()
	})
}

func decide[F any](fn func(F) (errors.Code, bool), f F) result.Result[result.Void] {
	code, ok := fn(f)
	if !ok || code.IsZero() {
		return Declined()
	}
	return Matched(code)
}

// Coded forwards the code a fault already carries.
//
// It matches an errors.Code, any errors.Coder, and any error whose chain
// contains an errors.Coder (such as an errors.Fault). The carried code is
// returned verbatim and never remapped, which keeps external code identity
// intact across the sequence boundary. Coded belongs at the front of a
// chain.
var Coded Classifier = Func(func(fault any) result.Result[result.Void] {
	if coder, ok := fault.(errors.Coder); ok {
		if code := coder.ErrorCode(); !code.IsZero() {
			return Matched(code)
		}
	}
	err, ok := fault.(error)
	if !ok {
		return Declined()
	}
	var coder errors.Coder
	if stderrors.As(err, &coder) {
		if code := coder.ErrorCode(); !code.IsZero() {
			return Matched(code)
		}
	}
	return Declined()
})
