package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecline(t *testing.T) {
	ok, err := Decline("Create it?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAppConfirm_NilDeclines(t *testing.T) {
	app := &App{}
	ok, err := app.confirm("Create it?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAppConfirm_UsesConfiguredPrompt(t *testing.T) {
	var asked string
	app := &App{Confirm: func(prompt string) (bool, error) {
		asked = prompt
		return true, nil
	}}

	ok, err := app.confirm("Create it?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Create it?", asked)
}
