package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inputkit/internal/ui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("inputkit: %v", m.err)) + "\n"
	}
	if m.quitting {
		return ""
	}
	return m.frame
}

// renderFrame lays the fields out top to bottom. Each input learns its
// screen origin so mouse hover lines up with what was drawn.
func (m Model) renderFrame() (string, error) {
	ctx := components.DefaultContext().WithConstraints(components.WithMaxWidth(m.width))

	var sections []string
	line := 0
	add := func(s string) {
		sections = append(sections, s)
		line += lipgloss.Height(s)
	}

	title := m.title
	if title == "" {
		title = "inputkit"
	}
	add(titleStyle.Render(title))
	add("")

	for i, f := range m.fields {
		label := labelStyle
		if i == m.focus {
			label = focusStyle
		}
		add(label.Render(f.Name))

		f.input.SetOrigin(0, line)
		rendered, err := f.input.Render(ctx)
		if err != nil {
			return "", fmt.Errorf("field %q: %w", f.Name, err)
		}
		add(rendered)
		add(f.renderHelper())
		add("")
	}

	add(m.help.View(m.keys))
	return strings.Join(sections, "\n"), nil
}

// renderHelper draws the line below an input. Validation messages follow
// the fade: hidden near the start, faint midway, full colour once settled.
func (f *Field) renderHelper() string {
	text, fading := f.helperText()
	if !fading {
		return helperStyle.Render(text)
	}

	progress := f.fade.Progress()
	switch {
	case progress < 0.2:
		return ""
	case progress < 0.8:
		return fadingStyle.Render(text)
	default:
		return problemStyle.Render(text)
	}
}
