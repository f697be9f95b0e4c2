package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inputkit/internal/ref"
	"github.com/alexisbeaulieu97/inputkit/internal/ui/components"
)

// HoverDetector reports whether the pointer is over the widget.
type HoverDetector interface {
	Hovered() bool
}

// FixedHover is a HoverDetector with a constant answer.
type FixedHover bool

// Hovered implements HoverDetector.
func (f FixedHover) Hovered() bool {
	return bool(f)
}

// MouseHover derives hover from bubbletea mouse events. The target ref
// holds the last rendered Box; origin is where the host drew it on screen.
type MouseHover struct {
	target  *ref.Ref[*components.Box]
	originX int
	originY int
	hovered bool
}

// NewMouseHover tracks the Box held by target.
func NewMouseHover(target *ref.Ref[*components.Box]) *MouseHover {
	return &MouseHover{target: target}
}

// SetOrigin records the screen cell of the Box's top-left corner.
func (h *MouseHover) SetOrigin(x, y int) {
	h.originX, h.originY = x, y
}

// Update recomputes hover from msg. It reports whether the state changed.
func (h *MouseHover) Update(msg tea.MouseMsg) bool {
	hovered := false
	if h.target != nil && h.target.Current != nil {
		hovered = h.target.Current.Contains(msg.X-h.originX, msg.Y-h.originY)
	}
	changed := hovered != h.hovered
	h.hovered = hovered
	return changed
}

// Hovered implements HoverDetector.
func (h *MouseHover) Hovered() bool {
	return h.hovered
}
