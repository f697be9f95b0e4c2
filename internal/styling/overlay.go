package styling

// Reserved keys carrying per-state overlays in a resolved configuration.
const (
	KeyHover    = "_hover"
	KeyFocus    = "_focus"
	KeyDisabled = "_disabled"
	KeyInvalid  = "_invalid"
)

// State is the interaction snapshot for one render pass.
type State struct {
	Hovered  bool
	Focused  bool
	Disabled bool
	Invalid  bool
	Required bool
}

// Overlays holds the partial styles applied when the matching state is set.
// A nil overlay is a no-op.
type Overlays struct {
	Hover    Props
	Focus    Props
	Disabled Props
	Invalid  Props
}

// IsEmpty reports whether no overlay carries any key.
func (o Overlays) IsEmpty() bool {
	return len(o.Hover) == 0 && len(o.Focus) == 0 && len(o.Disabled) == 0 && len(o.Invalid) == 0
}

// ExtractOverlays pulls the reserved overlay keys out of props. The returned
// rest never contains a reserved key. Overlay values that are not maps are
// treated as empty.
func ExtractOverlays(props Props) (Overlays, Props) {
	rest := props.Clone()
	take := func(key string) Props {
		v, ok := rest[key]
		if !ok {
			return nil
		}
		delete(rest, key)
		overlay, _ := AsProps(v)
		return overlay.Clone()
	}

	overlays := Overlays{
		Hover:    take(KeyHover),
		Focus:    take(KeyFocus),
		Disabled: take(KeyDisabled),
		Invalid:  take(KeyInvalid),
	}
	return overlays, rest
}

// ResolveOverlays layers the overlays whose guard is set over base in the
// order hover, focus, disabled, invalid. Later layers win on shared keys, so
// a disabled or invalid overlay always beats hover and focus.
func ResolveOverlays(base Props, overlays Overlays, state State) Props {
	layers := []struct {
		guard   bool
		overlay Props
	}{
		{state.Hovered, overlays.Hover},
		{state.Focused, overlays.Focus},
		{state.Disabled, overlays.Disabled},
		{state.Invalid, overlays.Invalid},
	}

	out := base.Clone()
	for _, layer := range layers {
		if layer.guard {
			out = out.Merge(layer.overlay)
		}
	}
	return out
}
