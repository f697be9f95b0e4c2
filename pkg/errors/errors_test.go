package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("theme.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "theme.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "theme.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("preview.yaml", 0, stdErrors.New("missing"))
	require.Equal(t, "parse error: preview.yaml: missing", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components.Input.variants", "unknown variant", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components.Input.variants", validationErr.Field)
	require.Contains(t, validationErr.Error(), "unknown variant")
}

func TestRefErrorIncludesHolderIndex(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("read-only holder")
	err := NewRefError(1, underlying)

	var refErr *RefError
	require.ErrorAs(t, err, &refErr)
	require.Equal(t, 1, refErr.Index)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "ref error: holder 1: read-only holder", err.Error())
}

func TestRenderErrorIncludesComponent(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("bad width")
	err := NewRenderError("Input", underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "Input", renderErr.Component)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "[Input]")
}

func TestYAMLErrorTakesLineFromMessage(t *testing.T) {
	t.Parallel()

	err := NewYAMLError("form.yaml", stdErrors.New("yaml: line 7: did not find expected node content"))
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 7, parseErr.Line)
	require.Contains(t, err.Error(), "form.yaml:7")

	err = NewYAMLError("form.yaml", stdErrors.New("EOF"))
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}
