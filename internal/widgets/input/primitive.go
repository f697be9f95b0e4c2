package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/mapstructure"

	"github.com/alexisbeaulieu97/inputkit/internal/styling"
	"github.com/alexisbeaulieu97/inputkit/internal/ui/components"
)

const (
	variantUnstyled  = "unstyled"
	defaultTextWidth = 20
)

// primitiveProps is the typed view of the pass-through props the
// primitive understands. Unknown keys are ignored.
type primitiveProps struct {
	Placeholder          string   `mapstructure:"placeholder"`
	Value                *string  `mapstructure:"value"`
	Type                 string   `mapstructure:"type"`
	MaxLength            int      `mapstructure:"maxLength"`
	Variant              string   `mapstructure:"variant"`
	Color                string   `mapstructure:"color"`
	PlaceholderTextColor string   `mapstructure:"placeholderTextColor"`
	CursorColor          string   `mapstructure:"cursorColor"`
	Opacity              *float64 `mapstructure:"opacity"`
	PX                   int      `mapstructure:"px"`
	PaddingX             int      `mapstructure:"paddingX"`
	Disabled             bool     `mapstructure:"isDisabled"`
	ReadOnly             bool     `mapstructure:"isReadOnly"`
}

// Primitive is the bare text field: a bubbles textinput with pass-through
// styling. Unless its variant is unstyled it draws its own border, and
// unless DisableFocusHandling is set it highlights that border itself when
// focused.
type Primitive struct {
	// DisableFocusHandling leaves focus styling to an enclosing widget.
	// Focus and blur are still intercepted and forwarded.
	DisableFocusHandling bool

	model     textinput.Model
	props     primitiveProps
	theme     components.Theme
	lastValue *string
	focused   bool
	width     int

	onFocus func()
	onBlur  func()
}

// NewPrimitive creates an unfocused primitive holding value.
func NewPrimitive(value string) *Primitive {
	model := textinput.New()
	model.Prompt = ""
	model.SetValue(value)
	return &Primitive{
		model: model,
		theme: components.DefaultTheme(),
	}
}

// Intercept installs the focus and blur interceptors. They run after the
// primitive has updated its own state.
func (p *Primitive) Intercept(onFocus, onBlur func()) {
	p.onFocus = onFocus
	p.onBlur = onBlur
}

// Apply replaces the pass-through props. A value prop only overwrites the
// text when it differs from the last value applied, so edits survive
// re-renders with unchanged props.
func (p *Primitive) Apply(props styling.Props) error {
	var decoded primitiveProps
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &decoded,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(map[string]any(props)); err != nil {
		return err
	}

	if decoded.Value != nil && (p.lastValue == nil || *p.lastValue != *decoded.Value) {
		p.model.SetValue(*decoded.Value)
		p.lastValue = decoded.Value
	}

	p.props = decoded
	p.model.Placeholder = decoded.Placeholder
	p.model.CharLimit = decoded.MaxLength
	if strings.EqualFold(decoded.Type, "password") {
		p.model.EchoMode = textinput.EchoPassword
	} else {
		p.model.EchoMode = textinput.EchoNormal
	}

	p.resize()
	return nil
}

// SetWidth sets the total number of cells the primitive may occupy,
// padding and border included. Zero sizes the field to its content.
func (p *Primitive) SetWidth(width int) {
	p.width = width
	p.resize()
}

func (p *Primitive) resize() {
	text := p.width - 2*p.paddingX() - 1
	if !p.unstyled() {
		text -= 2
	}
	if p.width <= 0 {
		text = max(lipgloss.Width(p.model.Placeholder), lipgloss.Width(p.model.Value()), defaultTextWidth)
	}
	p.model.Width = max(text, 1)
}

func (p *Primitive) paddingX() int {
	if p.props.PaddingX != 0 {
		return p.props.PaddingX
	}
	return p.props.PX
}

func (p *Primitive) unstyled() bool {
	return strings.EqualFold(p.props.Variant, variantUnstyled)
}

// Focus focuses the text field and calls the focus interceptor.
func (p *Primitive) Focus() tea.Cmd {
	if !p.DisableFocusHandling {
		p.focused = true
	}
	cmd := p.model.Focus()
	if p.onFocus != nil {
		p.onFocus()
	}
	return cmd
}

// Blur blurs the text field and calls the blur interceptor.
func (p *Primitive) Blur() {
	p.focused = false
	p.model.Blur()
	if p.onBlur != nil {
		p.onBlur()
	}
}

// Editable reports whether key input changes the value.
func (p *Primitive) Editable() bool {
	return !p.props.Disabled && !p.props.ReadOnly
}

// Value returns the current text.
func (p *Primitive) Value() string {
	return p.model.Value()
}

// SetValue replaces the current text.
func (p *Primitive) SetValue(value string) {
	p.model.SetValue(value)
}

// Update forwards msg to the text field. Key presses are dropped while the
// primitive is disabled or read-only.
func (p *Primitive) Update(msg tea.Msg) tea.Cmd {
	if _, isKey := msg.(tea.KeyMsg); isKey && !p.Editable() {
		return nil
	}
	var cmd tea.Cmd
	p.model, cmd = p.model.Update(msg)
	return cmd
}

// View renders the field.
func (p *Primitive) View() string {
	p.applyStyles()

	style := lipgloss.NewStyle().Padding(0, p.paddingX())
	if p.props.Opacity != nil && *p.props.Opacity < 1 {
		style = style.Faint(true)
	}
	if !p.unstyled() {
		style = style.BorderStyle(components.BorderForVariant(p.theme, components.BorderVariantNormal))
		if p.focused {
			style = style.BorderForeground(p.theme.Colors.Blue.Color(components.PaletteShade500))
		}
	}
	return style.Render(p.model.View())
}

func (p *Primitive) applyStyles() {
	state := components.InputStateDefault
	if p.focused {
		state = components.InputStateFocus
	}

	textStyle := components.InputStyle(p.theme, state)
	if p.props.Color != "" {
		textStyle = textStyle.Foreground(components.ColorValue(p.theme, p.props.Color))
	}
	placeholderStyle := p.theme.Input.Placeholder
	if p.props.PlaceholderTextColor != "" {
		placeholderStyle = placeholderStyle.Foreground(components.ColorValue(p.theme, p.props.PlaceholderTextColor))
	}
	cursorStyle := lipgloss.NewStyle()
	if p.props.CursorColor != "" {
		cursorStyle = cursorStyle.Foreground(components.ColorValue(p.theme, p.props.CursorColor))
	}

	p.model.TextStyle = textStyle
	p.model.PlaceholderStyle = placeholderStyle
	p.model.Cursor.Style = cursorStyle
}
