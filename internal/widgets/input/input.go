// Package input implements the themed text input: a layout container that
// carries the border, background and state styling, an unstyled text
// primitive inside it, and optional adornments on either side.
//
// A render pass resolves the options against the theme, extracts the state
// overlays, routes container categories to the Box and everything else to
// the primitive, then resolves the overlays for the current interaction
// state. Focus, blur, mouse and key events arrive through Update.
package input

import (
	"errors"
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inputkit/internal/logger"
	"github.com/alexisbeaulieu97/inputkit/internal/ref"
	"github.com/alexisbeaulieu97/inputkit/internal/styling"
	"github.com/alexisbeaulieu97/inputkit/internal/theme"
	"github.com/alexisbeaulieu97/inputkit/internal/ui/components"
	inputkiterrors "github.com/alexisbeaulieu97/inputkit/pkg/errors"
)

// ComponentName is the key the widget resolves its props under.
const ComponentName = "Input"

// FocusMsg asks the receiving input to take focus.
type FocusMsg struct{}

// BlurMsg asks the receiving input to give up focus.
type BlurMsg struct{}

// InputProps are the behavioural flags and content of the field.
type InputProps struct {
	Disabled    bool
	Invalid     bool
	ReadOnly    bool
	Required    bool
	Placeholder string
	Value       string
	Type        string
}

// Options configure an Input.
type Options struct {
	// Left and Right accept an Adornment, a Component, a
	// func(StateProps) components.Renderable or a components.Renderable.
	// Anything else renders nothing.
	Left  any
	Right any

	// OnFocus and OnBlur run after the focus state has been committed.
	OnFocus func()
	OnBlur  func()

	// Props holds style props, state overlays and pass-through props.
	// Explicit props win over InputProps.
	Props      styling.Props
	InputProps InputProps

	Ref        ref.Holder[*Primitive]
	WrapperRef ref.Holder[*components.Box]
}

// Option customises an Input at construction time.
type Option func(*Input)

// WithLogger routes diagnostics to log.
func WithLogger(log *logger.Logger) Option {
	return func(i *Input) {
		i.log = log.WithComponent(ComponentName)
	}
}

// WithHoverDetector replaces the mouse-driven hover detector.
func WithHoverDetector(h HoverDetector) Option {
	return func(i *Input) {
		i.hover = h
	}
}

// Input is the composite text input widget.
type Input struct {
	resolver theme.Resolver
	opts     Options
	log      *logger.Logger

	tracker   Tracker
	hover     HoverDetector
	primitive *Primitive

	box        *ref.Ref[*components.Box]
	wrapperRef *ref.Merged[*components.Box]
	fieldRef   *ref.Merged[*Primitive]
}

// New creates an Input. A nil resolver passes props through unresolved.
func New(resolver theme.Resolver, opts Options, options ...Option) *Input {
	if resolver == nil {
		resolver = theme.Passthrough
	}

	i := &Input{
		resolver:  resolver,
		opts:      opts,
		primitive: NewPrimitive(opts.InputProps.Value),
		box:       ref.New[*components.Box](),
	}
	i.hover = NewMouseHover(i.box)
	for _, option := range options {
		option(i)
	}

	i.wrapperRef = ref.Merge[*components.Box](i.box, opts.WrapperRef)
	i.fieldRef = ref.Merge[*Primitive](opts.Ref)

	i.primitive.DisableFocusHandling = true
	i.primitive.Intercept(
		func() { i.tracker.Focus(i.opts.OnFocus) },
		func() { i.tracker.Blur(i.opts.OnBlur) },
	)
	return i
}

// Focused reports the committed focus state.
func (i *Input) Focused() bool {
	return i.tracker.Focused()
}

// Hovered reports the hover detector's current answer.
func (i *Input) Hovered() bool {
	return i.hover.Hovered()
}

// Value returns the current text.
func (i *Input) Value() string {
	return i.primitive.Value()
}

// SetOrigin tells the default mouse hover detector where the widget is
// drawn on screen. It has no effect with a custom detector.
func (i *Input) SetOrigin(x, y int) {
	if mh, ok := i.hover.(*MouseHover); ok {
		mh.SetOrigin(x, y)
	}
}

// SetOptions replaces the options. Refs and callbacks are rebound; the
// focus state and the typed text are kept. A ref holder that is replaced
// is cleared first, so it never keeps a handle the widget no longer writes.
func (i *Input) SetOptions(opts Options) error {
	var errs []error
	if !sameHolder(i.opts.WrapperRef, opts.WrapperRef) {
		errs = append(errs, ref.Merge[*components.Box](i.opts.WrapperRef).Release())
	}
	if !sameHolder(i.opts.Ref, opts.Ref) {
		errs = append(errs, ref.Merge[*Primitive](i.opts.Ref).Release())
	}

	i.opts = opts
	i.wrapperRef = ref.Merge[*components.Box](i.box, opts.WrapperRef)
	i.fieldRef = ref.Merge[*Primitive](opts.Ref)

	err := errors.Join(errs...)
	if err != nil {
		i.log.Error(err, "ref release failed")
	}
	return err
}

// sameHolder reports whether a and b are the same holder. Holders of
// incomparable types, such as callbacks, are never the same.
func sameHolder(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// State returns the interaction snapshot the next render will use.
func (i *Input) State() styling.State {
	return DeriveState(i.resolve(), i.hover.Hovered(), i.tracker.Focused())
}

// Resolved returns the theme-resolved props for the current options.
func (i *Input) Resolved() styling.Props {
	return i.resolve()
}

func (i *Input) resolve() styling.Props {
	return i.resolver.Resolve(ComponentName, inputThemeProps(i.opts.InputProps).Merge(i.opts.Props))
}

// inputThemeProps maps the behavioural flags and content onto prop keys
// so themes and overlays can react to them.
func inputThemeProps(p InputProps) styling.Props {
	props := styling.Props{}
	if p.Disabled {
		props[PropDisabled] = true
	}
	if p.Invalid {
		props[PropInvalid] = true
	}
	if p.ReadOnly {
		props[PropReadOnly] = true
	}
	if p.Required {
		props[PropRequired] = true
	}
	if p.Placeholder != "" {
		props["placeholder"] = p.Placeholder
	}
	if p.Type != "" {
		props["type"] = p.Type
	}
	return props
}

// Routing is where one render pass sends the resolved props.
type Routing struct {
	// Overlays are the per-state styles extracted from the resolved props.
	Overlays styling.Overlays
	// Container holds the container categories over the container
	// defaults, before any overlay.
	Container styling.Props
	// Box is Container with the overlays for the state applied.
	Box styling.Props
	// Field is everything else, with the primitive's fixed overrides.
	Field styling.Props
}

// Route splits resolved props between the container and the primitive and
// resolves the container's overlays for state. The primitive always
// renders unstyled and fills the space the adornments leave.
func Route(resolved styling.Props, state styling.State) Routing {
	overlays, rest := styling.ExtractOverlays(resolved)
	container, residual := styling.Partition(rest, styling.ContainerCategories()...)
	_, field := styling.Partition(residual, []string{"variant"})

	container = containerDefaults().Merge(container)
	field = field.Merge(styling.Props{"variant": variantUnstyled, "flex": 1})

	return Routing{
		Overlays:  overlays,
		Container: container,
		Box:       styling.ResolveOverlays(container, overlays, state),
		Field:     field,
	}
}

func containerDefaults() styling.Props {
	return styling.Props{
		"display":        "flex",
		"flexDirection":  "row",
		"alignItems":     "center",
		"justifyContent": "space-between",
		"overflow":       "hidden",
	}
}

// Render runs one render pass and returns the drawn widget. Errors come
// from decoding container props or from ref holders rejecting the new Box;
// both are wrapped in a RenderError.
func (i *Input) Render(ctx components.RenderContext) (string, error) {
	resolved := i.resolve()
	state := DeriveState(resolved, i.hover.Hovered(), i.tracker.Focused())
	routed := Route(resolved, state)

	if err := i.primitive.Apply(routed.Field); err != nil {
		return "", inputkiterrors.NewRenderError(ComponentName, err)
	}

	sp := stateProps(state)
	left := i.renderAdornment("left", i.opts.Left, sp)
	right := i.renderAdornment("right", i.opts.Right, sp)

	box, err := components.NewBox(routed.Box, left, i.primitive, right)
	if err != nil {
		return "", inputkiterrors.NewRenderError(ComponentName, err)
	}
	i.primitive.SetWidth(i.fieldWidth(box, ctx, left, right))

	if err := errors.Join(i.wrapperRef.Set(box), i.fieldRef.Set(i.primitive)); err != nil {
		i.log.Error(err, "ref write failed")
		return "", inputkiterrors.NewRenderError(ComponentName, err)
	}

	return box.ViewWithContext(ctx), nil
}

// fieldWidth gives the primitive whatever the box content area leaves
// after the adornments and gaps. Zero means size to content.
func (i *Input) fieldWidth(box *components.Box, ctx components.RenderContext, adornments ...components.Renderable) int {
	content := box.ContentWidth(ctx)
	if content <= 0 {
		return 0
	}

	children := 1
	used := 0
	for _, a := range adornments {
		if a == nil {
			continue
		}
		view := components.Render(a, ctx.WithConstraints(components.Unconstrained()))
		if view == "" {
			continue
		}
		used += lipgloss.Width(view)
		children++
	}
	used += box.Props().Gap * (children - 1)
	return max(content-used, 1)
}

func (i *Input) renderAdornment(side string, v any, state StateProps) components.Renderable {
	adornment, ok := AdornmentOf(v)
	if !ok {
		i.log.WithFields(map[string]any{"side": side}).Debug("unsupported adornment ignored")
		return nil
	}
	return RenderAdornment(adornment, state)
}

// Update handles focus, blur, mouse and key messages. Disabled inputs do
// not take focus; keys only reach the primitive while focused.
func (i *Input) Update(msg tea.Msg) (*Input, tea.Cmd) {
	switch msg := msg.(type) {
	case FocusMsg:
		if i.tracker.Focused() || i.resolve().Bool(PropDisabled) {
			return i, nil
		}
		return i, i.primitive.Focus()
	case BlurMsg:
		if !i.tracker.Focused() {
			return i, nil
		}
		i.primitive.Blur()
		return i, nil
	case tea.MouseMsg:
		if mh, ok := i.hover.(*MouseHover); ok {
			mh.Update(msg)
		}
		return i, nil
	case tea.KeyMsg:
		if !i.tracker.Focused() {
			return i, nil
		}
		return i, i.primitive.Update(msg)
	default:
		return i, i.primitive.Update(msg)
	}
}

// Unmount releases every ref holder. All holders are cleared even when
// some fail; the failures are returned joined.
func (i *Input) Unmount() error {
	err := errors.Join(i.wrapperRef.Release(), i.fieldRef.Release())
	if err != nil {
		i.log.Error(err, "ref release failed")
	}
	return err
}
