package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inputkit/internal/ui/components"
)

type statusIcon struct{}

func (statusIcon) Build(state StateProps) components.Renderable {
	if state.Invalid {
		return components.NewText("!")
	}
	return components.NewText("✓")
}

func TestAdornmentOfClassifiesByCapability(t *testing.T) {
	t.Parallel()

	text := components.NewText("@")
	builder := func(state StateProps) components.Renderable {
		if state.Focused {
			return components.NewText("focused")
		}
		return components.NewText("idle")
	}

	tests := []struct {
		name   string
		value  any
		state  StateProps
		want   string
		absent bool
	}{
		{name: "component", value: statusIcon{}, state: StateProps{Invalid: true}, want: "!"},
		{name: "factory", value: Factory(builder), state: StateProps{Focused: true}, want: "focused"},
		{name: "plain function", value: builder, state: StateProps{}, want: "idle"},
		{name: "element", value: text, state: StateProps{Invalid: true}, want: "@"},
		{name: "wrapped adornment", value: Element(text), want: "@"},
		{name: "nil", value: nil, absent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adornment, ok := AdornmentOf(tt.value)
			require.True(t, ok)
			if tt.absent {
				assert.True(t, adornment.IsAbsent())
				assert.Nil(t, RenderAdornment(adornment, tt.state))
				return
			}
			rendered := RenderAdornment(adornment, tt.state)
			require.NotNil(t, rendered)
			assert.Equal(t, tt.want, rendered.View())
		})
	}
}

func TestAdornmentOfRejectsUnsupportedValues(t *testing.T) {
	t.Parallel()

	for _, value := range []any{42, "label", struct{}{}} {
		adornment, ok := AdornmentOf(value)
		assert.False(t, ok)
		assert.True(t, adornment.IsAbsent())
	}
}

func TestTypedNilIsAbsent(t *testing.T) {
	t.Parallel()

	var text *components.Text
	adornment, ok := AdornmentOf(text)
	require.True(t, ok)
	assert.True(t, adornment.IsAbsent())

	var factory Factory
	assert.True(t, ComponentOf(factory).IsAbsent())
}

func TestElementIgnoresState(t *testing.T) {
	t.Parallel()

	text := components.NewText("@")
	adornment := Element(text)

	for _, state := range []StateProps{{}, {Hovered: true}, {Focused: true, Invalid: true}, {Disabled: true}} {
		assert.Same(t, text, RenderAdornment(adornment, state))
	}
}

func TestComponentRebuiltPerState(t *testing.T) {
	t.Parallel()

	builds := 0
	adornment := ComponentOf(Factory(func(StateProps) components.Renderable {
		builds++
		return components.NewText("x")
	}))

	RenderAdornment(adornment, StateProps{})
	RenderAdornment(adornment, StateProps{Hovered: true})
	assert.Equal(t, 2, builds)
}

func TestComponentBuildingNilYieldsNil(t *testing.T) {
	t.Parallel()

	adornment := ComponentOf(Factory(func(state StateProps) components.Renderable {
		if state.Focused {
			return components.NewText("*")
		}
		var missing *components.Text
		return missing
	}))

	require.True(t, RenderAdornment(adornment, StateProps{}) == nil, "typed nil is returned as a real nil")
	require.NotNil(t, RenderAdornment(adornment, StateProps{Focused: true}))

	assert.True(t, ComponentOf(Factory(nil)).IsAbsent())
}
