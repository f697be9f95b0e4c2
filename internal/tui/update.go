package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inputkit/internal/transition"
	"github.com/alexisbeaulieu97/inputkit/internal/widgets/input"
)

// Update handles Bubbletea messages and updates model state. Every message
// is followed by a render pass; a render error quits the program.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.err != nil || m.quitting {
		return m, nil
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case initMsg:
	case tea.WindowSizeMsg:
		m.width = min(msg.Width, m.maxWidth)
		m.help.Width = msg.Width
	case tea.KeyMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)
	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	case transition.FrameMsg:
		for _, f := range m.fields {
			cmds = append(cmds, f.fade.Update(msg))
		}
	default:
		if f := m.focusedField(); f != nil {
			_, cmd := f.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	frame, err := m.renderFrame()
	if err != nil {
		return m.fail(err)
	}
	m.frame = frame
	return m, tea.Batch(cmds...)
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.log.Error(err, "render failed")
	for _, f := range m.fields {
		_ = f.input.Unmount()
	}
	return m, tea.Quit
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Abort):
		return nil, true
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1), false
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1), false
	case key.Matches(msg, m.keys.Blur):
		return m.setFocus(noFocus), false
	}

	f := m.focusedField()
	if f == nil {
		return nil, key.Matches(msg, m.keys.Quit)
	}
	_, cmd := f.input.Update(msg)
	return tea.Batch(cmd, m.revalidate(f)), false
}

// moveFocus steps through the fields, skipping disabled ones.
func (m *Model) moveFocus(step int) tea.Cmd {
	n := len(m.fields)
	current := m.focus
	if current == noFocus && step < 0 {
		current = n
	}

	for i := 0; i < n; i++ {
		current = ((current+step)%n + n) % n
		if !m.fields[current].input.State().Disabled {
			return m.setFocus(current)
		}
	}
	return nil
}

func (m *Model) setFocus(index int) tea.Cmd {
	if index == m.focus {
		return nil
	}

	var cmds []tea.Cmd
	if f := m.focusedField(); f != nil {
		_, cmd := f.input.Update(input.BlurMsg{})
		cmds = append(cmds, cmd, m.revalidate(f))
	}
	m.focus = index
	if f := m.focusedField(); f != nil {
		_, cmd := f.input.Update(input.FocusMsg{})
		cmds = append(cmds, cmd)
		if !f.input.Focused() {
			m.focus = noFocus
		}
	}
	return tea.Batch(cmds...)
}

// handleMouse feeds hover to every field and focuses a field on left click.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	clicked := noFocus
	for i, f := range m.fields {
		f.input.Update(msg)
		if f.input.Hovered() {
			clicked = i
		}
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && clicked != noFocus {
		return m.setFocus(clicked)
	}
	return nil
}
