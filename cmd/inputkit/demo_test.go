package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inputkit/internal/config"
)

func TestDemoCommandRequiresTerminal(t *testing.T) {
	_, err := executeCommand("demo")
	require.ErrorIs(t, err, errNotTerminal)
}

func TestBuiltinDocumentIsValid(t *testing.T) {
	doc, th, err := demoDocument(demoOptions{})
	require.NoError(t, err)
	require.NotNil(t, th)
	require.Len(t, doc.Inputs, 3)
	require.NoError(t, config.ValidateDocument(doc))
	assert.True(t, doc.Inputs[2].Disabled)
}

func TestDemoValidators(t *testing.T) {
	assert.NoError(t, validateEmail(""))
	assert.NoError(t, validateEmail("jane@example.com"))
	assert.Error(t, validateEmail("jane"))
	assert.Error(t, validateEmail("@example.com"))
	assert.Error(t, validateEmail("jane@"))

	assert.NoError(t, validatePassword(""))
	assert.NoError(t, validatePassword("correcthorse"))
	assert.Error(t, validatePassword("short"))
}
