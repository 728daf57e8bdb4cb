package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(Make(kindFirst), "resource not found")

	require.NotNil(t, err)
	require.Equal(t, Make(kindFirst), err.ErrorCode())
	require.Equal(t, "resource not found", err.Message())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
}

func TestNew_ErrorString(t *testing.T) {
	err := New(Make(kindSecond), "boom")
	require.Equal(t, "[test:2] boom", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(Make(kindFirst), "invalid value: %d (expected %d)", 5, 10)

	require.NotNil(t, err)
	require.Equal(t, Make(kindFirst), err.ErrorCode())
	require.Equal(t, "invalid value: 5 (expected 10)", err.Message())
}
