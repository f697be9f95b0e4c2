package transition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFrames(t *testing.T, f *Fade) int {
	t.Helper()
	frames := 0
	for f.Animating() {
		f.Update(FrameMsg{id: f.id})
		frames++
		require.Less(t, frames, 1000, "fade never settled")
	}
	return frames
}

func TestFadeInSettlesOnTarget(t *testing.T) {
	t.Parallel()

	f := NewFade(500*time.Millisecond, 0, 1)
	assert.Zero(t, f.Value())

	require.NotNil(t, f.FadeIn())
	assert.True(t, f.Animating())

	frames := runFrames(t, f)
	assert.Equal(t, 1.0, f.Value())
	assert.Equal(t, 1.0, f.Progress())
	assert.Greater(t, frames, 10)
	assert.Less(t, frames, 120)
}

func TestFadeOutReturnsToStart(t *testing.T) {
	t.Parallel()

	f := NewFade(200*time.Millisecond, 0.2, 0.8)
	f.FadeIn()
	runFrames(t, f)
	assert.Equal(t, 0.8, f.Value())

	require.NotNil(t, f.FadeOut())
	runFrames(t, f)
	assert.Equal(t, 0.2, f.Value())
	assert.Zero(t, f.Progress())
}

func TestFadeValueIsMonotonic(t *testing.T) {
	t.Parallel()

	f := NewFade(0, 0, 1)
	f.FadeIn()

	previous := f.Value()
	for f.Animating() {
		f.Update(FrameMsg{id: f.id})
		assert.GreaterOrEqual(t, f.Value(), previous)
		previous = f.Value()
	}
}

func TestFadeIgnoresForeignMessages(t *testing.T) {
	t.Parallel()

	f := NewFade(0, 0, 1)
	other := NewFade(0, 0, 1)
	f.FadeIn()

	assert.Nil(t, f.Update(FrameMsg{id: other.id}))
	assert.Nil(t, f.Update("tick"))
	assert.Zero(t, f.Value())
}

func TestFadeRetargetWhileAnimating(t *testing.T) {
	t.Parallel()

	f := NewFade(0, 0, 1)
	require.NotNil(t, f.FadeIn())
	f.Update(FrameMsg{id: f.id})

	assert.Nil(t, f.FadeOut(), "running animation keeps its frame loop")
	runFrames(t, f)
	assert.Zero(t, f.Value())
}

func TestFadeAtRestSchedulesNothing(t *testing.T) {
	t.Parallel()

	f := NewFade(0, 0, 1)
	assert.Nil(t, f.FadeOut())
	assert.False(t, f.Animating())
	assert.Equal(t, defaultDuration, f.Duration)
}
