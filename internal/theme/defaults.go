package theme

import (
	"github.com/alexisbeaulieu97/inputkit/internal/styling"
	"github.com/alexisbeaulieu97/inputkit/internal/ui/components"
)

// Default returns the built-in theme. Colour scales are taken from the
// component palette so tokens resolve to the same hex values lipgloss uses.
func Default() *Theme {
	return &Theme{
		Name:   "default",
		Colors: paletteColors(components.DefaultTheme()),
		Components: map[string]ComponentTheme{
			"Input": inputTheme(),
		},
	}
}

func paletteColors(t components.Theme) map[string]map[string]string {
	families := components.FamilyNames()

	out := make(map[string]map[string]string, len(families))
	for name, family := range families {
		shades := make(map[string]string, 10)
		for _, shadeName := range components.ShadeNames() {
			shade, _ := components.ParseShade(shadeName)
			if color, ok := components.PaletteColor(t, family, shade); ok {
				shades[shadeName] = string(color)
			}
		}
		out[name] = shades
	}
	return out
}

func inputTheme() ComponentTheme {
	return ComponentTheme{
		BaseStyle: styling.Props{
			"borderWidth":          1,
			"borderRadius":         "sm",
			"borderColor":          "gray.300",
			"color":                "gray.900",
			"placeholderTextColor": "gray.400",
			"px":                   1,
			styling.KeyHover: styling.Props{
				"borderColor": "gray.400",
			},
			styling.KeyFocus: styling.Props{
				"borderColor": "primary.500",
			},
			styling.KeyDisabled: styling.Props{
				"opacity": 0.5,
				"bg":      "gray.100",
			},
			styling.KeyInvalid: styling.Props{
				"borderColor": "danger.600",
			},
		},
		DefaultProps: styling.Props{
			"variant": "outline",
			"size":    "md",
		},
		Variants: map[string]styling.Props{
			"outline": {},
			"rounded": {"borderRadius": "full"},
			"filled": {
				"bg":          "gray.100",
				"borderColor": "gray.100",
				styling.KeyHover: styling.Props{
					"borderColor": "gray.300",
				},
			},
			"unstyled": {
				"borderWidth":    0,
				"px":             0,
				styling.KeyHover: styling.Props{},
				styling.KeyFocus: styling.Props{},
			},
		},
		Sizes: map[string]styling.Props{
			"sm": {"px": 0},
			"md": {"px": 1},
			"lg": {"px": 2},
		},
	}
}
