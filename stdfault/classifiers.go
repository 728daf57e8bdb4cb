package stdfault

import (
	"context"
	"runtime"
	"strconv"
	"strings"

	"github.com/jmgilman/go/expected/classify"
	"github.com/jmgilman/go/expected/errors"
	"github.com/jmgilman/go/expected/result"
)

// runtimeMessages maps fragments of runtime error text to kinds. The runtime
// does not export types for these, so the text is all there is to go on.
var runtimeMessages = []struct {
	fragment string
	kind     Kind
}{
	{"index out of range", IndexOutOfRange},
	{"slice bounds out of range", IndexOutOfRange},
	{"nil pointer dereference", NilDereference},
	{"integer divide by zero", DivideByZero},
	{"assignment to entry in nil map", NilMap},
	{"send on closed channel", ClosedChannel},
	{"close of closed channel", ClosedChannel},
	{"close of nil channel", ClosedChannel},
}

// Classifiers returns the specific classifiers, most specific first.
func Classifiers() []classify.Entry {
	return []classify.Entry{
		{Name: "stdfault/bad-access", Classifier: classify.MatchCode[*result.AccessError](errors.Make(BadAccess))},
		{Name: "stdfault/strconv", Classifier: classify.Match(numError)},
		{Name: "stdfault/canceled", Classifier: classify.Sentinel(context.Canceled, errors.Make(Canceled))},
		{Name: "stdfault/deadline", Classifier: classify.Sentinel(context.DeadlineExceeded, errors.Make(DeadlineExceeded))},
		{Name: "stdfault/type-assertion", Classifier: classify.MatchCode[*runtime.TypeAssertionError](errors.Make(TypeAssertion))},
		{Name: "stdfault/panic-nil", Classifier: classify.MatchCode[*runtime.PanicNilError](errors.Make(PanicNil))},
		{Name: "stdfault/runtime-message", Classifier: classify.Match(runtimeMessage)},
		{Name: "stdfault/runtime", Classifier: classify.MatchCode[runtime.Error](errors.Make(Runtime))},
	}
}

// Generic returns the catch-all classifiers. They match every error and
// every string, so they belong at the end of a chain.
func Generic() []classify.Entry {
	return []classify.Entry{
		{Name: "stdfault/error", Classifier: classify.MatchCode[error](errors.Make(Error))},
		{Name: "stdfault/message", Classifier: classify.MatchCode[string](errors.Make(Message))},
	}
}

// Register appends Classifiers and then Generic to chain.
func Register(chain *classify.Chain) error {
	if err := chain.AppendAll(Classifiers()...); err != nil {
		return err
	}
	return chain.AppendAll(Generic()...)
}

func numError(e *strconv.NumError) (errors.Code, bool) {
	switch e.Err {
	case strconv.ErrSyntax:
		return errors.Make(InvalidArgument), true
	case strconv.ErrRange:
		return errors.Make(OutOfRange), true
	}
	return errors.Make(InvalidArgument), true
}

func runtimeMessage(e runtime.Error) (errors.Code, bool) {
	msg := e.Error()
	for _, m := range runtimeMessages {
		if strings.Contains(msg, m.fragment) {
			return errors.Make(m.kind), true
		}
	}
	return errors.Code{}, false
}
