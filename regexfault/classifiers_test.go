package regexfault

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"regexp/syntax"
	"testing"

	"github.com/jmgilman/go/expected/classify"
	"github.com/jmgilman/go/expected/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChain(t *testing.T) *classify.Chain {
	t.Helper()
	chain := classify.NewChain()
	require.NoError(t, Register(chain))
	return chain
}

func mustCompilePanic(expr string) (v any) {
	defer func() {
		v = recover()
	}()
	regexp.MustCompile(expr)
	return nil
}

func TestRegister(t *testing.T) {
	chain := newChain(t)

	tests := []struct {
		expr string
		want syntax.ErrorCode
	}{
		{expr: "[a-", want: syntax.ErrMissingBracket},
		{expr: "(abc", want: syntax.ErrMissingParen},
		{expr: "abc)", want: syntax.ErrUnexpectedParen},
		{expr: "*a", want: syntax.ErrMissingRepeatArgument},
		{expr: `a\`, want: syntax.ErrTrailingBackslash},
		{expr: `\q`, want: syntax.ErrInvalidEscape},
		{expr: "[z-a]", want: syntax.ErrInvalidCharRange},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			want := Code(tt.want)
			require.False(t, want.IsZero())

			_, err := regexp.Compile(tt.expr)
			require.Error(t, err)
			assert.Equal(t, want, chain.Classify(err))
			assert.Equal(t, want, chain.Classify(fmt.Errorf("load rules: %w", err)))

			fault := mustCompilePanic(tt.expr)
			require.IsType(t, "", fault)
			assert.Equal(t, want, chain.Classify(fault))

			assert.Equal(t, string(tt.want), want.Message())
		})
	}
}

func TestRegister_Declines(t *testing.T) {
	chain := newChain(t)

	assert.Equal(t, errors.CodeUnknown, chain.Classify("error parsing regexp: missing closing ]"))
	assert.Equal(t, errors.CodeUnknown, chain.Classify("regexp: something else"))
	assert.Equal(t, errors.CodeUnknown, chain.Classify(stderrors.New("missing closing )")))
	assert.Equal(t, errors.CodeUnknown, chain.Classify(&syntax.Error{Code: "made up"}))
}

func TestCode(t *testing.T) {
	assert.True(t, Code("not a code").IsZero())

	code := Code(syntax.ErrLarge)
	assert.Equal(t, "regexp", code.Category().Name())
	assert.Equal(t, len(syntaxCodes), code.Value())
	assert.Empty(t, Category.Message(0))
	assert.Empty(t, Category.Message(len(syntaxCodes)+1))
}

func TestMustCompileMessage_SharedPrefixes(t *testing.T) {
	tests := []struct {
		msg  string
		want syntax.ErrorCode
	}{
		{
			msg:  "regexp: Compile(`[z-a]`): error parsing regexp: invalid character class range: `z-a`",
			want: syntax.ErrInvalidCharRange,
		},
		{
			msg:  "regexp: Compile(`x`): error parsing regexp: invalid character class: `x`",
			want: syntax.ErrInvalidCharClass,
		},
		{
			msg:  "regexp: Compile(`a{2,1}`): error parsing regexp: invalid repeat count: `{2,1}`",
			want: syntax.ErrInvalidRepeatSize,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			code, ok := mustCompileMessage(tt.msg)
			require.True(t, ok)
			assert.Equal(t, Code(tt.want), code)
		})
	}
}
