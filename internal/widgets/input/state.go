package input

import "github.com/alexisbeaulieu97/inputkit/internal/styling"

// Resolved prop keys carrying the externally controlled input flags.
const (
	PropDisabled = "isDisabled"
	PropInvalid  = "isInvalid"
	PropReadOnly = "isReadOnly"
	PropRequired = "isRequired"
)

type transition struct {
	focused  bool
	callback func()
}

// Tracker owns the focused flag of one widget instance. Every transition is
// committed before its callback runs, and transitions requested from inside
// a callback are queued and applied in delivery order once it returns.
type Tracker struct {
	focused     bool
	dispatching bool
	pending     []transition
}

// Focused reports the committed focus state.
func (t *Tracker) Focused() bool {
	return t.focused
}

// Focus commits the focused state, then invokes cb when it is non-nil.
func (t *Tracker) Focus(cb func()) {
	t.deliver(transition{focused: true, callback: cb})
}

// Blur commits the unfocused state, then invokes cb when it is non-nil.
func (t *Tracker) Blur(cb func()) {
	t.deliver(transition{focused: false, callback: cb})
}

func (t *Tracker) deliver(next transition) {
	t.pending = append(t.pending, next)
	if t.dispatching {
		return
	}

	t.dispatching = true
	defer func() {
		t.dispatching = false
		t.pending = nil
	}()

	for len(t.pending) > 0 {
		current := t.pending[0]
		t.pending = t.pending[1:]

		t.focused = current.focused
		if current.callback != nil {
			current.callback()
		}
	}
}

// DeriveState builds the state snapshot for one render pass. Disabled,
// invalid and required are read from the resolved props every time and
// never stored.
func DeriveState(props styling.Props, hovered, focused bool) styling.State {
	return styling.State{
		Hovered:  hovered,
		Focused:  focused,
		Disabled: props.Bool(PropDisabled),
		Invalid:  props.Bool(PropInvalid),
		Required: props.Bool(PropRequired),
	}
}
