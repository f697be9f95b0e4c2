package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const paletteShadeCount = 10

// PaletteShades represents a Tailwind-style color scale with 10 shades from lightest to darkest.
// Shades are indexed from 50 (lightest) to 900 (darkest), matching Tailwind's numbering.
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades creates a palette shade scale from the provided colors.
// Colors should be ordered from lightest to darkest. Accepts up to 10 colors.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the color at the specified shade level.
// Returns an empty string if the shade is out of bounds.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

// ColorPalette groups every colour family known to the theme.
type ColorPalette struct {
	Slate  PaletteShades
	Blue   PaletteShades
	Green  PaletteShades
	Red    PaletteShades
	Yellow PaletteShades
	Purple PaletteShades
	Cyan   PaletteShades
}

// Shades returns the scale for family, falling back to slate.
func (cp ColorPalette) Shades(family PaletteFamily) PaletteShades {
	switch family {
	case PaletteBlue:
		return cp.Blue
	case PaletteGreen:
		return cp.Green
	case PaletteRed:
		return cp.Red
	case PaletteYellow:
		return cp.Yellow
	case PalettePurple:
		return cp.Purple
	case PaletteCyan:
		return cp.Cyan
	default:
		return cp.Slate
	}
}

type PaletteFamily int

const (
	PaletteSlate PaletteFamily = iota
	PaletteBlue
	PaletteGreen
	PaletteRed
	PaletteYellow
	PalettePurple
	PaletteCyan
)

var familyNames = map[string]PaletteFamily{
	"slate":   PaletteSlate,
	"gray":    PaletteSlate,
	"blue":    PaletteBlue,
	"primary": PaletteBlue,
	"green":   PaletteGreen,
	"red":     PaletteRed,
	"danger":  PaletteRed,
	"yellow":  PaletteYellow,
	"purple":  PalettePurple,
	"cyan":    PaletteCyan,
}

// FamilyNames returns every family name accepted in colour tokens.
func FamilyNames() map[string]PaletteFamily {
	out := make(map[string]PaletteFamily, len(familyNames))
	for name, family := range familyNames {
		out[name] = family
	}
	return out
}

// ParseFamily maps a family name used in colour tokens ("blue", "gray",
// "primary") to its PaletteFamily.
func ParseFamily(name string) (PaletteFamily, bool) {
	family, ok := familyNames[strings.ToLower(name)]
	return family, ok
}

type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

var shadeNames = map[string]PaletteShade{
	"50":  PaletteShade50,
	"100": PaletteShade100,
	"200": PaletteShade200,
	"300": PaletteShade300,
	"400": PaletteShade400,
	"500": PaletteShade500,
	"600": PaletteShade600,
	"700": PaletteShade700,
	"800": PaletteShade800,
	"900": PaletteShade900,
}

// ParseShade maps a Tailwind shade number ("50" through "900") to its PaletteShade.
func ParseShade(name string) (PaletteShade, bool) {
	shade, ok := shadeNames[name]
	return shade, ok
}

// ShadeNames returns the shade names in scale order.
func ShadeNames() []string {
	return []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}
}

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// ParseBorderVariant maps a borderStyle value to a variant. Unknown names
// resolve to the normal border.
func ParseBorderVariant(name string) BorderVariant {
	switch strings.ToLower(name) {
	case "none":
		return BorderVariantNone
	case "thick", "bold":
		return BorderVariantThick
	case "rounded":
		return BorderVariantRounded
	case "double":
		return BorderVariantDouble
	default:
		return BorderVariantNormal
	}
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// InputStyles describes the default/focus styles an input primitive applies
// when it manages focus on its own.
type InputStyles struct {
	Default     lipgloss.Style
	Focus       lipgloss.Style
	Placeholder lipgloss.Style
}

type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
)

// Theme represents an immutable lipgloss styling theme. All modification
// operations return new theme instances rather than mutating the original.
type Theme struct {
	Colors  ColorPalette
	Borders BorderSet
	Input   InputStyles
	Muted   lipgloss.Style
}

// DefaultTheme returns the default theme for components
func DefaultTheme() Theme {
	colors := ColorPalette{
		Slate: NewPaletteShades(
			"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8",
			"#64748b", "#475569", "#334155", "#1e293b", "#0f172a",
		),
		Blue: NewPaletteShades(
			"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa",
			"#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a",
		),
		Green: NewPaletteShades(
			"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80",
			"#22c55e", "#16a34a", "#15803d", "#166534", "#14532d",
		),
		Red: NewPaletteShades(
			"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171",
			"#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d",
		),
		Yellow: NewPaletteShades(
			"#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24",
			"#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12",
		),
		Purple: NewPaletteShades(
			"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc",
			"#a855f7", "#9333ea", "#7c3aed", "#6b21a8", "#581c87",
		),
		Cyan: NewPaletteShades(
			"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee",
			"#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63",
		),
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	input := InputStyles{
		Default: lipgloss.NewStyle().
			Foreground(colors.Slate.Color(PaletteShade900)),
		Focus: lipgloss.NewStyle().
			Foreground(colors.Slate.Color(PaletteShade900)).
			Underline(true),
		Placeholder: lipgloss.NewStyle().
			Foreground(colors.Slate.Color(PaletteShade400)),
	}

	return Theme{
		Colors:  colors,
		Borders: borders,
		Input:   input,
		Muted:   lipgloss.NewStyle().Faint(true),
	}
}

// PaletteColor returns the color for a given palette family and shade.
// Returns an empty string and false if the shade is invalid.
func PaletteColor(theme Theme, family PaletteFamily, shade PaletteShade) (lipgloss.Color, bool) {
	shades := theme.Colors.Shades(family)
	color := shades.Color(shade)
	if color == "" {
		return "", false
	}
	return color, true
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNone:
		return theme.Borders.None
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.Normal
	}
}

// InputStyle returns the input style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	if state == InputStateFocus {
		return theme.Input.Focus
	}
	return theme.Input.Default
}

// Foreground applies a palette colour to the text.
func Foreground(family PaletteFamily, shade PaletteShade) StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		if color, ok := PaletteColor(theme, family, shade); ok {
			return s.Foreground(color)
		}
		return s
	}
}

// Faint renders the text with the theme's muted style.
func Faint() StyleFunc {
	return func(s lipgloss.Style, theme Theme) lipgloss.Style {
		return s.Inherit(theme.Muted)
	}
}
