package regexfault

import (
	"regexp/syntax"
	"strings"

	"github.com/jmgilman/go/expected/classify"
	"github.com/jmgilman/go/expected/errors"
)

// parsePrefix precedes the syntax code in *syntax.Error text, which is
// also what regexp.MustCompile panics with.
const parsePrefix = "error parsing regexp: "

// Classifiers returns the regexp classifiers: syntax errors first, then
// regexp.MustCompile panic messages.
func Classifiers() []classify.Entry {
	return []classify.Entry{
		{Name: "regexfault/syntax", Classifier: classify.Match(syntaxError)},
		{Name: "regexfault/must-compile", Classifier: classify.Match(mustCompileMessage)},
	}
}

// Register appends Classifiers to chain.
func Register(chain *classify.Chain) error {
	return chain.AppendAll(Classifiers()...)
}

func syntaxError(e *syntax.Error) (errors.Code, bool) {
	code := Code(e.Code)
	return code, !code.IsZero()
}

func mustCompileMessage(msg string) (errors.Code, bool) {
	if !strings.HasPrefix(msg, "regexp: ") {
		return errors.Code{}, false
	}
	_, rest, ok := strings.Cut(msg, parsePrefix)
	if !ok {
		return errors.Code{}, false
	}
	// The code is followed by ": `expr`"; matching the separator keeps
	// "invalid character class" from claiming "invalid character class range".
	for _, c := range syntaxCodes {
		if strings.HasPrefix(rest, string(c)+": ") {
			return Code(c), true
		}
	}
	return errors.Code{}, false
}
