package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testCategory = NewCategory("test", MessageTable(map[int]string{
	1: "first failure",
	2: "second failure",
}))

type testKind int

const (
	kindFirst testKind = iota + 1
	kindSecond
	kindSilent
)

func (k testKind) ErrorCode() Code {
	return MakeCode(testCategory, int(k))
}

func TestMakeCode(t *testing.T) {
	code := MakeCode(testCategory, 2)

	require.Equal(t, testCategory, code.Category())
	require.Equal(t, 2, code.Value())
	require.Equal(t, "second failure", code.Message())
	require.False(t, code.IsZero())
}

func TestMake_Coder(t *testing.T) {
	require.Equal(t, MakeCode(testCategory, 1), Make(kindFirst))
	require.Equal(t, MakeCode(testCategory, 2), Make(kindSecond))
}

func TestCode_Equal(t *testing.T) {
	twin := NewCategory("test", nil)

	tests := []struct {
		name  string
		a, b  Code
		equal bool
	}{
		{
			name:  "same category and value",
			a:     Make(kindFirst),
			b:     MakeCode(testCategory, 1),
			equal: true,
		},
		{
			name:  "same category different value",
			a:     Make(kindFirst),
			b:     Make(kindSecond),
			equal: false,
		},
		{
			name:  "same name different category",
			a:     MakeCode(testCategory, 1),
			b:     MakeCode(twin, 1),
			equal: false,
		},
		{
			name:  "zero codes",
			a:     Code{},
			b:     Code{},
			equal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.equal, tt.a.Equal(tt.b))
			require.Equal(t, tt.equal, tt.a == tt.b)
		})
	}
}

func TestCode_EmptyMessage(t *testing.T) {
	require.Equal(t, "", Make(kindSilent).Message())
	require.Equal(t, "", MakeCode(NewCategory("quiet", nil), 7).Message())
	require.Equal(t, "", Code{}.Message())
}

func TestCode_String(t *testing.T) {
	require.Equal(t, "test:1", Make(kindFirst).String())
	require.Equal(t, "unknown:1", CodeUnknown.String())
	require.Equal(t, "<none>:0", Code{}.String())
}

func TestCode_IsCoder(t *testing.T) {
	var coder Coder = Make(kindSecond)
	require.Equal(t, Make(kindSecond), coder.ErrorCode())
}

func TestCodeUnknown(t *testing.T) {
	require.Equal(t, UnknownCategory, CodeUnknown.Category())
	require.Equal(t, "unknown", UnknownCategory.Name())
	require.Equal(t, "unknown fault", CodeUnknown.Message())
	require.False(t, CodeUnknown.IsZero())
}

func TestNewCategory_Identity(t *testing.T) {
	a := NewCategory("dup", nil)
	b := NewCategory("dup", nil)

	require.Equal(t, a.Name(), b.Name())
	require.False(t, a == b)
}
