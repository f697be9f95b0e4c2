// Package styling holds the pure property-bag operations used by themed
// widgets: category partitioning and state overlay resolution.
//
// Every function in this package is total. None of them mutate their
// inputs, so a Props value produced for one render pass can be shared freely
// until the next pass replaces it.
package styling

import (
	"maps"
	"sort"
)

// Props is a flat bag of resolved properties keyed by property name. Values
// are primitives, colour tokens or nested Props (for overlays).
type Props map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty, non-nil map.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	maps.Copy(out, p)
	return out
}

// Merge returns a new Props with overlay layered over p. Keys present in
// overlay win; keys absent from overlay are kept from p.
func (p Props) Merge(overlay Props) Props {
	out := p.Clone()
	maps.Copy(out, overlay)
	return out
}

// Keys returns the property names in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bool reads a boolean property. Missing or non-boolean values are false.
func (p Props) Bool(key string) bool {
	v, ok := p[key].(bool)
	return ok && v
}

// String reads a string property.
func (p Props) String(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

// Nested reads a nested property bag. Values decoded from YAML arrive as
// map[string]any and are accepted as well.
func (p Props) Nested(key string) (Props, bool) {
	return AsProps(p[key])
}

// AsProps converts v to Props when it is a map keyed by string.
func AsProps(v any) (Props, bool) {
	switch m := v.(type) {
	case Props:
		return m, true
	case map[string]any:
		return Props(m), true
	default:
		return nil, false
	}
}
