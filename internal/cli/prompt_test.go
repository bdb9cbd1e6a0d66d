package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlwaysYes(t *testing.T) {
	confirm := AlwaysYes()

	result, err := confirm("anything")

	require.NoError(t, err)
	assert.True(t, result)
}

func TestConfirmForYesSkipsPrompt(t *testing.T) {
	asked := false
	pk := PromptKit{Confirm: func(string) (bool, error) {
		asked = true
		return false, nil
	}}

	ok, err := confirmFor(pk, true)("Replace?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, asked)

	ok, err = confirmFor(pk, false)("Replace?")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, asked)
}

func TestNewPromptKit(t *testing.T) {
	pk := NewPromptKit()

	assert.NotNil(t, pk.Prompt)
	assert.NotNil(t, pk.Confirm)
	assert.NotNil(t, pk.Select)
}
