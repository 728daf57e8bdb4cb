package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestToYAML(t *testing.T) {
	err := WithContext(New(Make(kindFirst), "resource not found"), "step", 2)

	data, yerr := ToYAML(err)
	require.NoError(t, yerr)

	var resp ErrorResponse
	require.NoError(t, yaml.Unmarshal(data, &resp))
	require.Equal(t, "test", resp.Category)
	require.Equal(t, 1, resp.Value)
	require.Equal(t, "resource not found", resp.Message)
	require.Equal(t, 2, resp.Context["step"])
}

func TestToYAML_StandardError(t *testing.T) {
	data, err := ToYAML(stderrors.New("plain"))
	require.NoError(t, err)
	require.Contains(t, string(data), "category: unknown")
	require.Contains(t, string(data), "message: plain")
	require.NotContains(t, string(data), "context")
}

func TestToYAML_Nil(t *testing.T) {
	data, err := ToYAML(nil)
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestCode_MarshalYAML(t *testing.T) {
	data, err := yaml.Marshal(map[string]Code{"code": Make(kindSecond)})
	require.NoError(t, err)
	require.Equal(t, "code:\n    category: test\n    value: 2\n    message: second failure\n", string(data))
}
