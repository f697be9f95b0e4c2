package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack is a layout component that arranges children in a single direction.
type Stack struct {
	BaseComponent
	children   []Renderable
	direction  Direction
	gap        int
	mainAlign  MainAxisAlignment
	crossAlign CrossAxisAlignment
	width      int
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		mainAlign:     MainStart,
		crossAlign:    CrossStart,
	}
}

// VStack creates a vertical stack (convenience constructor).
func VStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack (convenience constructor).
func HStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := Render(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.joinHorizontal(views)
	} else {
		content = s.joinVertical(views)
	}
	return style.Render(content)
}

func (s *Stack) joinVertical(views []string) string {
	if s.gap == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, views...)
	}

	spacer := strings.Repeat("\n", s.gap-1)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return lipgloss.JoinVertical(lipgloss.Left, result...)
}

// joinHorizontal lays views out on one row. When the stack has a width the
// free columns are distributed according to the main-axis alignment.
func (s *Stack) joinHorizontal(views []string) string {
	used := s.gap * (len(views) - 1)
	for _, view := range views {
		used += lipgloss.Width(view)
	}
	free := 0
	if s.width > used {
		free = s.width - used
	}

	gaps := make([]int, len(views)-1)
	for i := range gaps {
		gaps[i] = s.gap
	}
	lead := 0
	switch s.mainAlign {
	case MainSpaceBetween:
		if len(gaps) == 0 {
			break
		}
		share, rest := free/len(gaps), free%len(gaps)
		for i := range gaps {
			gaps[i] += share
			if i < rest {
				gaps[i]++
			}
		}
	case MainCenter:
		lead = free / 2
	case MainEnd:
		lead = free
	}

	result := make([]string, 0, len(views)*2+1)
	if lead > 0 {
		result = append(result, strings.Repeat(" ", lead))
	}
	for i, view := range views {
		if i > 0 && gaps[i-1] > 0 {
			result = append(result, strings.Repeat(" ", gaps[i-1]))
		}
		result = append(result, view)
	}
	return lipgloss.JoinHorizontal(s.crossAlign.toLipglossPosition(), result...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithMainAlign sets the main axis alignment.
func (s *Stack) WithMainAlign(align MainAxisAlignment) *Stack {
	s.mainAlign = align
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithWidth sets the row width used to distribute free space.
func (s *Stack) WithWidth(width int) *Stack {
	s.width = width
	return s
}

// WithStyle sets the stack style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []Renderable {
	return s.children
}
