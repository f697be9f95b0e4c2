package input

import (
	"reflect"

	"github.com/alexisbeaulieu97/inputkit/internal/styling"
	"github.com/alexisbeaulieu97/inputkit/internal/ui/components"
)

// StateProps is the interaction snapshot handed to adornment components.
type StateProps struct {
	Hovered  bool
	Focused  bool
	Disabled bool
	Invalid  bool
}

func stateProps(s styling.State) StateProps {
	return StateProps{
		Hovered:  s.Hovered,
		Focused:  s.Focused,
		Disabled: s.Disabled,
		Invalid:  s.Invalid,
	}
}

// Component builds an adornment from the current interaction state.
type Component interface {
	Build(state StateProps) components.Renderable
}

// Factory adapts a function into a Component.
type Factory func(state StateProps) components.Renderable

// Build calls f.
func (f Factory) Build(state StateProps) components.Renderable {
	return f(state)
}

type adornmentKind int

const (
	adornmentNone adornmentKind = iota
	adornmentComponent
	adornmentElement
)

// Adornment is an optional decoration rendered beside the input. It is
// either absent, a Component rebuilt on every render with the current
// state, or a pre-built element rendered as-is.
type Adornment struct {
	kind      adornmentKind
	component Component
	element   components.Renderable
}

// None returns the absent adornment.
func None() Adornment {
	return Adornment{}
}

// ComponentOf wraps a state-aware component.
func ComponentOf(c Component) Adornment {
	if isNilValue(c) {
		return None()
	}
	return Adornment{kind: adornmentComponent, component: c}
}

// Element wraps a pre-built renderable. It does not see interaction state.
func Element(r components.Renderable) Adornment {
	if isNilValue(r) {
		return None()
	}
	return Adornment{kind: adornmentElement, element: r}
}

// IsAbsent reports whether nothing will be rendered.
func (a Adornment) IsAbsent() bool {
	return a.kind == adornmentNone
}

// AdornmentOf classifies v by capability. Components are checked first,
// then plain builder functions, then renderables. The second result is
// false when v is non-nil but matches none of them; the adornment is then
// absent.
func AdornmentOf(v any) (Adornment, bool) {
	if isNilValue(v) {
		return None(), true
	}

	switch a := v.(type) {
	case Adornment:
		return a, true
	case Component:
		return ComponentOf(a), true
	case func(StateProps) components.Renderable:
		return ComponentOf(Factory(a)), true
	case components.Renderable:
		return Element(a), true
	default:
		return None(), false
	}
}

// RenderAdornment produces the renderable for a. Absent adornments yield
// nil, components are built with state, elements are returned untouched.
// A component that builds a nil renderable yields nil as well.
func RenderAdornment(a Adornment, state StateProps) components.Renderable {
	switch a.kind {
	case adornmentComponent:
		r := a.component.Build(state)
		if isNilValue(r) {
			return nil
		}
		return r
	case adornmentElement:
		return a.element
	default:
		return nil
	}
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Interface, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
