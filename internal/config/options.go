package config

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inputkit/internal/styling"
	"github.com/alexisbeaulieu97/inputkit/internal/ui/components"
	"github.com/alexisbeaulieu97/inputkit/internal/widgets/input"
)

// Options converts the declaration into widget options. Refs and callbacks
// are left for the caller to bind.
func (s InputSpec) Options() input.Options {
	return input.Options{
		Left:  s.Left.Adornment(),
		Right: s.Right.Adornment(),
		Props: styling.Props(s.Props).Clone(),
		InputProps: input.InputProps{
			Disabled:    s.Disabled,
			Invalid:     s.Invalid,
			ReadOnly:    s.ReadOnly,
			Required:    s.Required,
			Placeholder: s.Placeholder,
			Value:       s.Value,
			Type:        s.Type,
		},
	}
}

// Adornment builds the declared adornment. A nil spec is absent.
func (a *AdornmentSpec) Adornment() input.Adornment {
	if a == nil {
		return input.None()
	}

	theme := components.DefaultTheme()
	style := lipgloss.NewStyle()
	if a.Color != "" {
		style = style.Foreground(components.ColorValue(theme, a.Color))
	}

	switch strings.ToLower(a.Kind) {
	case "text":
		return input.Element(components.NewText(a.Text).WithStyle(style))
	case "icon":
		glyph := a.Text
		if glyph == "" {
			glyph = "•"
		}
		return input.Element(components.NewText(glyph).WithStyle(style))
	case "status":
		return input.ComponentOf(input.Factory(statusIcon))
	default:
		return input.None()
	}
}

// statusIcon reflects the interaction state: a cross when invalid, a dot
// while focused, a hollow dot otherwise.
func statusIcon(state input.StateProps) components.Renderable {
	switch {
	case state.Invalid:
		return components.Icon("✗", components.PaletteRed, components.PaletteShade600)
	case state.Disabled:
		return components.MutedText("-")
	case state.Focused:
		return components.Icon("●", components.PaletteBlue, components.PaletteShade500)
	case state.Hovered:
		return components.Icon("○", components.PaletteBlue, components.PaletteShade300)
	default:
		return components.MutedText("○")
	}
}
