// Package transition animates scalar values for bubbletea programs.
package transition

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	framesPerSecond = 60
	defaultDuration = 500 * time.Millisecond
	settleEpsilon   = 0.001
)

var lastID atomic.Int64

// FrameMsg advances the fade that scheduled it.
type FrameMsg struct {
	id int64
}

// Fade moves a value between From and To over roughly Duration. The value
// starts at From.
type Fade struct {
	Duration time.Duration
	From     float64
	To       float64

	id        int64
	spring    harmonica.Spring
	value     float64
	velocity  float64
	target    float64
	animating bool
}

// NewFade creates a fade resting at from. A non-positive duration uses
// the 500ms default.
func NewFade(duration time.Duration, from, to float64) *Fade {
	if duration <= 0 {
		duration = defaultDuration
	}
	// A critically damped spring settles to within 1% in about 6.6/ω.
	frequency := 6.6 / duration.Seconds()
	return &Fade{
		Duration: duration,
		From:     from,
		To:       to,
		id:       lastID.Add(1),
		spring:   harmonica.NewSpring(harmonica.FPS(framesPerSecond), frequency, 1.0),
		value:    from,
		target:   from,
	}
}

// FadeIn starts moving towards To.
func (f *Fade) FadeIn() tea.Cmd {
	return f.animate(f.To)
}

// FadeOut starts moving back towards From.
func (f *Fade) FadeOut() tea.Cmd {
	return f.animate(f.From)
}

func (f *Fade) animate(target float64) tea.Cmd {
	f.target = target
	if f.animating || f.settled() {
		return nil
	}
	f.animating = true
	return f.frame()
}

func (f *Fade) frame() tea.Cmd {
	id := f.id
	return tea.Tick(time.Second/framesPerSecond, func(time.Time) tea.Msg {
		return FrameMsg{id: id}
	})
}

// Update advances the animation on its own frame messages and ignores
// everything else.
func (f *Fade) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.id != f.id || !f.animating {
		return nil
	}

	f.value, f.velocity = f.spring.Update(f.value, f.velocity, f.target)
	if f.settled() {
		f.value, f.velocity = f.target, 0
		f.animating = false
		return nil
	}
	return f.frame()
}

func (f *Fade) settled() bool {
	return math.Abs(f.value-f.target) < settleEpsilon && math.Abs(f.velocity) < settleEpsilon
}

// Value returns the current animated value.
func (f *Fade) Value() float64 {
	return f.value
}

// Animating reports whether frames are still scheduled.
func (f *Fade) Animating() bool {
	return f.animating
}

// Progress maps the current value onto [0, 1] between From and To.
func (f *Fade) Progress() float64 {
	if f.To == f.From {
		return 1
	}
	return math.Max(0, math.Min(1, (f.value-f.From)/(f.To-f.From)))
}
