package regexfault

import (
	"regexp/syntax"

	"github.com/jmgilman/go/expected/errors"
)

// syntaxCodes enumerates the regexp/syntax error codes. A code's value in
// Category is its index plus one.
var syntaxCodes = []syntax.ErrorCode{
	syntax.ErrInternalError,
	syntax.ErrInvalidCharClass,
	syntax.ErrInvalidCharRange,
	syntax.ErrInvalidEscape,
	syntax.ErrInvalidNamedCapture,
	syntax.ErrInvalidPerlOp,
	syntax.ErrInvalidRepeatOp,
	syntax.ErrInvalidRepeatSize,
	syntax.ErrInvalidUTF8,
	syntax.ErrMissingBracket,
	syntax.ErrMissingParen,
	syntax.ErrMissingRepeatArgument,
	syntax.ErrTrailingBackslash,
	syntax.ErrUnexpectedParen,
	syntax.ErrNestingDepth,
	syntax.ErrLarge,
}

// Category is the category of regular expression syntax errors.
// Messages are the regexp/syntax code text.
var Category = errors.NewCategory("regexp", func(value int) string {
	if value < 1 || value > len(syntaxCodes) {
		return ""
	}
	return syntaxCodes[value-1].String()
})

// Code returns the code for a regexp/syntax error code, or the zero Code if
// c is not a known syntax error code.
func Code(c syntax.ErrorCode) errors.Code {
	for i, known := range syntaxCodes {
		if known == c {
			return errors.MakeCode(Category, i+1)
		}
	}
	return errors.Code{}
}
