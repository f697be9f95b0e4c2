package tui

import (
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inputkit/internal/config"
	"github.com/alexisbeaulieu97/inputkit/internal/theme"
	inputkiterrors "github.com/alexisbeaulieu97/inputkit/pkg/errors"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func sampleDoc() *config.Document {
	return &config.Document{
		Name:  "Sign in",
		Width: 40,
		Inputs: []config.InputSpec{
			{Name: "email", Placeholder: "you@example.com", Helper: "We never share it", Right: &config.AdornmentSpec{Kind: "status"}},
			{Name: "locked", Disabled: true, Value: "read me"},
			{Name: "password", Type: "password"},
		},
	}
}

func started(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.Init()()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModelRequiresInputs(t *testing.T) {
	_, err := NewModel(nil, theme.Default())
	require.Error(t, err)

	_, err = NewModel(&config.Document{}, theme.Default())
	require.Error(t, err)
}

func TestInitialFrame(t *testing.T) {
	m, err := NewModel(sampleDoc(), theme.Default())
	require.NoError(t, err)
	m = started(t, m)

	view := m.View()
	require.Contains(t, view, "Sign in")
	require.Contains(t, view, "email")
	require.Contains(t, view, "We never share it")
	require.Contains(t, view, "read me")
	require.Contains(t, view, "╭")
	require.Equal(t, noFocus, m.Focused())
}

func TestTabCyclesFocusSkippingDisabled(t *testing.T) {
	m, err := NewModel(sampleDoc(), theme.Default())
	require.NoError(t, err)
	m = started(t, m)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 0, m.Focused())
	require.True(t, m.Fields()[0].Input().Focused())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 2, m.Focused())
	require.False(t, m.Fields()[0].Input().Focused())
	require.True(t, m.Fields()[2].Input().Focused())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 0, m.Focused())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, 2, m.Focused())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, noFocus, m.Focused())
	require.False(t, m.Fields()[2].Input().Focused())
}

func TestQuitOnlyWithoutFocus(t *testing.T) {
	m, err := NewModel(sampleDoc(), theme.Default())
	require.NoError(t, err)
	m = started(t, m)

	q := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := press(t, m, q)
	require.False(t, isQuit(cmd))
	require.Equal(t, "q", m.Fields()[0].Input().Value())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd = press(t, m, q)
	require.True(t, isQuit(cmd))
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	m, err := NewModel(sampleDoc(), theme.Default())
	require.NoError(t, err)
	m = started(t, m)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.True(t, isQuit(cmd))
	require.Empty(t, m.View())
}

func TestValidatorMarksFieldInvalid(t *testing.T) {
	requireAt := func(value string) error {
		if value != "" && !strings.Contains(value, "@") {
			return errors.New("enter a valid email address")
		}
		return nil
	}

	m, err := NewModel(sampleDoc(), theme.Default(), WithValidator("email", requireAt))
	require.NoError(t, err)
	m = started(t, m)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("bob")})
	require.NotNil(t, cmd)

	email := m.Fields()[0]
	require.Equal(t, "enter a valid email address", email.Problem())
	require.True(t, email.Input().State().Invalid)
	require.True(t, email.fade.Animating())
	require.Contains(t, email.input.Resolved(), "isInvalid")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("@x")})
	require.Empty(t, email.Problem())
	require.False(t, email.Input().State().Invalid)
}

func TestMouseClickFocusesField(t *testing.T) {
	m, err := NewModel(sampleDoc(), theme.Default())
	require.NoError(t, err)
	m = started(t, m)

	// Title, blank line and label precede the first input.
	updated, _ := m.Update(tea.MouseMsg{X: 2, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = updated.(Model)

	require.Equal(t, 0, m.Focused())
	require.True(t, m.Fields()[0].Input().Hovered())
}

func TestRenderErrorStopsProgram(t *testing.T) {
	doc := &config.Document{
		Inputs: []config.InputSpec{{Name: "broken", Props: map[string]any{"borderWidth": "thick"}}},
	}
	m, err := NewModel(doc, theme.Default())
	require.NoError(t, err)

	updated, cmd := m.Update(m.Init()())
	m = updated.(Model)

	require.True(t, isQuit(cmd))
	var renderErr *inputkiterrors.RenderError
	require.ErrorAs(t, m.Err(), &renderErr)
	require.Contains(t, m.View(), "inputkit:")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Nil(t, cmd, "a failed model ignores further input")
}

func TestWindowSizeCapsWidth(t *testing.T) {
	m, err := NewModel(sampleDoc(), theme.Default())
	require.NoError(t, err)
	m = started(t, m)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	m = updated.(Model)
	require.Equal(t, 30, m.width)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 200, Height: 20})
	m = updated.(Model)
	require.Equal(t, 40, m.width)
}

func TestInitRendersOnlyInsideUpdate(t *testing.T) {
	m, err := NewModel(sampleDoc(), theme.Default())
	require.NoError(t, err)

	msgs := make(chan tea.Msg, 1)
	go func() {
		msgs <- m.Init()()
	}()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	m = updated.(Model)

	updated, _ = m.Update(<-msgs)
	m = updated.(Model)
	require.NoError(t, m.Err())
	require.Equal(t, 20, m.width)

	for _, line := range strings.Split(m.View(), "\n") {
		if strings.HasPrefix(line, "╭") || strings.HasPrefix(line, "╰") {
			require.LessOrEqual(t, lipgloss.Width(line), 20, "the first frame uses the latest width")
		}
	}
}
