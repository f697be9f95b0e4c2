// Package theme resolves raw widget props against component themes.
//
// A Theme is loaded once (from YAML or the built-in default) and passed
// explicitly to widgets as a Resolver; there is no process-wide theme.
package theme

import (
	"strings"

	"github.com/alexisbeaulieu97/inputkit/internal/styling"
)

// Resolver turns raw component props into a resolved configuration. It must
// be pure and deterministic for a fixed theme.
type Resolver interface {
	Resolve(component string, raw styling.Props) styling.Props
}

// ResolverFunc adapts a function into a Resolver.
type ResolverFunc func(component string, raw styling.Props) styling.Props

// Resolve calls f.
func (f ResolverFunc) Resolve(component string, raw styling.Props) styling.Props {
	return f(component, raw)
}

// Passthrough returns raw unchanged apart from copying it. Useful when a
// widget should be driven entirely by explicit props.
var Passthrough Resolver = ResolverFunc(func(_ string, raw styling.Props) styling.Props {
	return raw.Clone()
})

// ComponentTheme describes how one component is styled.
type ComponentTheme struct {
	BaseStyle    styling.Props            `yaml:"baseStyle"`
	DefaultProps styling.Props            `yaml:"defaultProps"`
	Variants     map[string]styling.Props `yaml:"variants" validate:"omitempty,dive,keys,required,endkeys"`
	Sizes        map[string]styling.Props `yaml:"sizes" validate:"omitempty,dive,keys,required,endkeys"`
}

// Theme is a set of colour scales and component themes.
type Theme struct {
	Name       string                       `yaml:"name"`
	Colors     map[string]map[string]string `yaml:"colors" validate:"omitempty,dive,keys,required,endkeys,dive,keys,numeric,endkeys,hexcolor"`
	Components map[string]ComponentTheme    `yaml:"components" validate:"omitempty,dive,keys,required,endkeys"`
}

// Resolve implements Resolver. Layers are applied in the order base style,
// variant, size, default props, raw props; nested overlay maps are merged
// key by key rather than replaced. Colour tokens are then looked up.
func (t *Theme) Resolve(component string, raw styling.Props) styling.Props {
	if t == nil {
		return raw.Clone()
	}
	ct := t.Components[component]

	props := ct.DefaultProps.Merge(raw)
	variant, _ := props.String("variant")
	size, _ := props.String("size")

	out := styling.Props{}
	for _, layer := range []styling.Props{ct.BaseStyle, ct.Variants[variant], ct.Sizes[size], props} {
		out = deepMerge(out, layer)
	}
	return t.resolveTokens(out)
}

// Color looks up a "family.shade" token. The second result is false when
// the token does not name a known colour.
func (t *Theme) Color(token string) (string, bool) {
	family, shade, ok := strings.Cut(token, ".")
	if !ok {
		return "", false
	}
	color, ok := t.Colors[family][shade]
	return color, ok
}

func (t *Theme) resolveTokens(props styling.Props) styling.Props {
	out := make(styling.Props, len(props))
	for key, value := range props {
		switch v := value.(type) {
		case string:
			if color, ok := t.Color(v); ok {
				out[key] = color
				continue
			}
			out[key] = v
		default:
			if nested, ok := styling.AsProps(v); ok {
				out[key] = t.resolveTokens(nested)
				continue
			}
			out[key] = v
		}
	}
	return out
}

// deepMerge layers overlay over base. When both sides hold a nested map the
// maps are merged recursively; otherwise the overlay value wins. An empty
// nested map clears what base held under that key.
func deepMerge(base, overlay styling.Props) styling.Props {
	out := base.Clone()
	for key, value := range overlay {
		nestedOverlay, overlayIsMap := styling.AsProps(value)
		nestedBase, baseIsMap := styling.AsProps(out[key])
		if overlayIsMap && len(nestedOverlay) == 0 {
			out[key] = styling.Props{}
			continue
		}
		if overlayIsMap && baseIsMap {
			out[key] = deepMerge(nestedBase, nestedOverlay)
			continue
		}
		if overlayIsMap {
			out[key] = deepMerge(nil, nestedOverlay)
			continue
		}
		out[key] = value
	}
	return out
}
