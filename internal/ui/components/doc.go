// Package components provides the theme-aware lipgloss primitives widgets
// render into.
//
// # Overview
//
// Components render to strings and compose through the Renderable interface.
// Themes are immutable and passed explicitly through RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DefaultTheme())
//	output := component.ViewWithContext(ctx)
//
// # Box
//
// Box is the layout container. It accepts a flat property bag, decoded with
// mapstructure into BoxProps, and lays its children out as a flex row or
// column:
//
//	box, err := components.NewBox(map[string]any{
//		"flexDirection":  "row",
//		"justifyContent": "space-between",
//		"borderWidth":    1,
//		"borderColor":    "blue.500",
//		"w":              40,
//	}, left, field, right)
//
// Colour values may be palette tokens ("blue.500", "gray.300") or anything
// lipgloss accepts (hex strings, ANSI numbers).
//
// # Other primitives
//
//   - Stack: vertical or horizontal arrangement with gap and alignment
//   - Text: styled text content, including MutedText and Icon helpers
package components
