package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := stderrors.New("original error")
	err := Wrap(cause, Make(kindSecond), "operation failed")

	require.NotNil(t, err)
	require.Equal(t, Make(kindSecond), err.ErrorCode())
	require.Equal(t, "operation failed", err.Message())
	require.Equal(t, cause, err.Unwrap())
	require.Equal(t, "[test:2] operation failed: original error", err.Error())
}

func TestWrap_NilError(t *testing.T) {
	err := Wrap(nil, Make(kindFirst), "test")
	require.Nil(t, err)
}

func TestWrap_OuterCodeWins(t *testing.T) {
	inner := New(Make(kindFirst), "inner")
	outer := Wrap(inner, Make(kindSecond), "outer")

	require.Equal(t, Make(kindSecond), GetCode(outer))
	require.True(t, Is(outer, inner))
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrapf(cause, Make(kindFirst), "failed to connect to %s:%d", "localhost", 5432)

	require.Equal(t, "failed to connect to localhost:5432", err.Message())
	require.Equal(t, cause, err.Unwrap())
}

func TestWrapf_NilError(t *testing.T) {
	err := Wrapf(nil, Make(kindFirst), "test %s", "arg")
	require.Nil(t, err)
}

func TestWrapf_Formatting(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []interface{}
		want   string
	}{
		{
			name:   "string formatting",
			format: "step %s failed",
			args:   []interface{}{"parse"},
			want:   "step parse failed",
		},
		{
			name:   "int formatting",
			format: "invalid port: %d",
			args:   []interface{}{99999},
			want:   "invalid port: 99999",
		},
		{
			name:   "multiple args",
			format: "sequence %s failed at step %d of %d",
			args:   []interface{}{"load", 2, 3},
			want:   "sequence load failed at step 2 of 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cause := stderrors.New("cause")
			err := Wrapf(cause, Make(kindFirst), tt.format, tt.args...)
			require.Equal(t, tt.want, err.Message())
		})
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := stderrors.New("step failed")
	ctx := map[string]interface{}{
		"sequence": "load",
		"step":     2,
	}

	err := WrapWithContext(cause, Make(kindFirst), "sequence failed", ctx)

	require.NotNil(t, err)
	require.Equal(t, Make(kindFirst), err.ErrorCode())
	require.Equal(t, cause, err.Unwrap())

	errCtx := err.Context()
	require.Equal(t, "load", errCtx["sequence"])
	require.Equal(t, 2, errCtx["step"])

	// Mutating the input must not leak into the error
	ctx["step"] = 99
	require.Equal(t, 2, err.Context()["step"])
}

func TestWrapWithContext_NilContext(t *testing.T) {
	err := WrapWithContext(stderrors.New("x"), Make(kindFirst), "msg", nil)
	require.Nil(t, err.Context())
}

func TestWrapWithContext_NilError(t *testing.T) {
	require.Nil(t, WrapWithContext(nil, Make(kindFirst), "msg", map[string]interface{}{"a": 1}))
}
