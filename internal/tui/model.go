// Package tui hosts themed inputs in an interactive bubbletea program. The
// model is also the error boundary: a failed render pass stops the program
// and the error is reported through Err.
package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inputkit/internal/config"
	"github.com/alexisbeaulieu97/inputkit/internal/logger"
	"github.com/alexisbeaulieu97/inputkit/internal/theme"
	"github.com/alexisbeaulieu97/inputkit/internal/transition"
	"github.com/alexisbeaulieu97/inputkit/internal/widgets/input"
)

const (
	defaultWidth = 48
	fadeDuration = 300 * time.Millisecond
	noFocus      = -1
)

// Validator checks a field value. A non-nil error marks the field invalid
// and its message is shown below the input.
type Validator func(value string) error

// Field is one labelled input hosted by the model.
type Field struct {
	Name     string
	Helper   string
	Validate Validator

	input   *input.Input
	base    input.Options
	fade    *transition.Fade
	problem string
	shown   string
}

// Input exposes the hosted widget.
func (f *Field) Input() *input.Input {
	return f.input
}

// Problem returns the current validation message, if any.
func (f *Field) Problem() string {
	return f.problem
}

// Option customises the model.
type Option func(*Model)

// WithLogger routes widget and host diagnostics to log.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// WithValidator attaches a validator to the named field.
func WithValidator(name string, validate Validator) Option {
	return func(m *Model) {
		m.validators[name] = validate
	}
}

// Model contains the Bubbletea state for the input demo.
type Model struct {
	title      string
	fields     []*Field
	focus      int
	width      int
	maxWidth   int
	frame      string
	err        error
	quitting   bool
	keys       keyMap
	help       help.Model
	log        *logger.Logger
	validators map[string]Validator
}

// NewModel builds a model hosting every input declared in doc.
func NewModel(doc *config.Document, resolver theme.Resolver, opts ...Option) (Model, error) {
	if doc == nil || len(doc.Inputs) == 0 {
		return Model{}, errors.New("tui: document declares no inputs")
	}

	m := Model{
		title:      doc.Name,
		focus:      noFocus,
		maxWidth:   doc.Width,
		keys:       defaultKeyMap(),
		help:       help.New(),
		validators: make(map[string]Validator),
	}
	if m.maxWidth <= 0 {
		m.maxWidth = defaultWidth
	}
	m.width = m.maxWidth
	for _, opt := range opts {
		opt(&m)
	}

	for _, spec := range doc.Inputs {
		base := spec.Options()
		m.fields = append(m.fields, &Field{
			Name:     spec.Name,
			Helper:   spec.Helper,
			Validate: m.validators[spec.Name],
			input:    input.New(resolver, base, input.WithLogger(m.log)),
			base:     base,
			fade:     transition.NewFade(fadeDuration, 0, 1),
		})
	}
	return m, nil
}

// initMsg asks Update for the first frame. Rendering mutates the hosted
// widgets, so it only ever happens inside Update on the event loop.
type initMsg struct{}

// Init schedules the first frame.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return initMsg{}
	}
}

// Fields returns the hosted fields in display order.
func (m Model) Fields() []*Field {
	return m.fields
}

// Focused returns the index of the focused field, or -1.
func (m Model) Focused() int {
	return m.focus
}

// Err returns the render error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) focusedField() *Field {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return nil
	}
	return m.fields[m.focus]
}

// revalidate runs the field's validator and starts the helper fade when
// the outcome changes.
func (m Model) revalidate(f *Field) tea.Cmd {
	if f.Validate == nil {
		return nil
	}

	problem := ""
	if err := f.Validate(f.input.Value()); err != nil {
		problem = err.Error()
	}
	if problem == f.problem {
		return nil
	}

	wasInvalid := f.problem != ""
	f.problem = problem
	if problem != "" {
		f.shown = problem
	}

	opts := f.base
	opts.InputProps.Invalid = f.base.InputProps.Invalid || problem != ""
	// Field options carry no ref holders, so rebinding cannot fail.
	_ = f.input.SetOptions(opts)

	switch {
	case problem != "" && !wasInvalid:
		return f.fade.FadeIn()
	case problem == "":
		return f.fade.FadeOut()
	default:
		return nil
	}
}

// helperText returns what the line under the input shows and whether it
// is a validation message following the fade.
func (f *Field) helperText() (string, bool) {
	if f.problem != "" || (f.fade.Animating() && f.shown != "") {
		return f.shown, true
	}
	return strings.TrimSpace(f.Helper), false
}
