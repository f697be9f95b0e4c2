package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/mapstructure"
)

// BoxProps is the typed view of the property bag a Box accepts. Keys that
// have no terminal meaning (zIndex, position offsets) are accepted and
// ignored.
type BoxProps struct {
	Display        string `mapstructure:"display"`
	FlexDirection  string `mapstructure:"flexDirection"`
	FlexDir        string `mapstructure:"flexDir"`
	AlignItems     string `mapstructure:"alignItems"`
	JustifyContent string `mapstructure:"justifyContent"`
	Overflow       string `mapstructure:"overflow"`
	Gap            int    `mapstructure:"gap"`

	Width     int `mapstructure:"width"`
	W         int `mapstructure:"w"`
	Height    int `mapstructure:"height"`
	H         int `mapstructure:"h"`
	MaxWidth  int `mapstructure:"maxWidth"`
	MaxW      int `mapstructure:"maxW"`
	MinHeight int `mapstructure:"minHeight"`
	MinH      int `mapstructure:"minH"`

	BorderWidth  int    `mapstructure:"borderWidth"`
	BorderStyle  string `mapstructure:"borderStyle"`
	BorderColor  string `mapstructure:"borderColor"`
	BorderRadius string `mapstructure:"borderRadius"`
	Rounded      string `mapstructure:"rounded"`

	Bg              string   `mapstructure:"bg"`
	BgColor         string   `mapstructure:"bgColor"`
	Background      string   `mapstructure:"background"`
	BackgroundColor string   `mapstructure:"backgroundColor"`
	Color           string   `mapstructure:"color"`
	Opacity         *float64 `mapstructure:"opacity"`

	Margin       int `mapstructure:"margin"`
	M            int `mapstructure:"m"`
	MarginX      int `mapstructure:"marginX"`
	MX           int `mapstructure:"mx"`
	MarginY      int `mapstructure:"marginY"`
	MY           int `mapstructure:"my"`
	MarginTop    int `mapstructure:"marginTop"`
	MT           int `mapstructure:"mt"`
	MarginRight  int `mapstructure:"marginRight"`
	MR           int `mapstructure:"mr"`
	MarginBottom int `mapstructure:"marginBottom"`
	MB           int `mapstructure:"mb"`
	MarginLeft   int `mapstructure:"marginLeft"`
	ML           int `mapstructure:"ml"`

	Padding  int `mapstructure:"padding"`
	P        int `mapstructure:"p"`
	PaddingX int `mapstructure:"paddingX"`
	PX       int `mapstructure:"px"`
	PaddingY int `mapstructure:"paddingY"`
	PY       int `mapstructure:"py"`
}

// DecodeBoxProps converts a loosely typed property bag into BoxProps.
// Numeric strings and floats decoded from YAML are accepted.
func DecodeBoxProps(props map[string]any) (BoxProps, error) {
	var out BoxProps
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return BoxProps{}, err
	}
	if err := decoder.Decode(props); err != nil {
		return BoxProps{}, fmt.Errorf("decode box props: %w", err)
	}
	return out, nil
}

// Box is the layout container primitive. It accepts a property bag, lays its
// children out as a flex row or column and draws border, background and
// spacing with lipgloss.
type Box struct {
	BaseComponent
	props    BoxProps
	children []Renderable
	width    int
	height   int
}

// NewBox decodes props and returns a Box holding children.
func NewBox(props map[string]any, children ...Renderable) (*Box, error) {
	decoded, err := DecodeBoxProps(props)
	if err != nil {
		return nil, err
	}
	return &Box{
		BaseComponent: NewBaseComponent(),
		props:         decoded,
		children:      children,
	}, nil
}

// Props returns the decoded properties.
func (b *Box) Props() BoxProps {
	return b.props
}

// Children returns the child renderables.
func (b *Box) Children() []Renderable {
	return b.children
}

// Size reports the dimensions of the most recent render.
func (b *Box) Size() (width, height int) {
	return b.width, b.height
}

// Contains reports whether the cell (x, y), relative to the box's top-left
// corner, falls inside the last rendered area.
func (b *Box) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// View renders the box.
func (b *Box) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box with layout context.
func (b *Box) ViewWithContext(ctx RenderContext) string {
	p := b.props
	if strings.EqualFold(p.Display, "none") {
		b.width, b.height = 0, 0
		return ""
	}

	style := b.ComputeStyle(ctx.Theme)

	if p.BorderWidth > 0 {
		variant := ParseBorderVariant(p.BorderStyle)
		if p.BorderStyle == "" && (isSet(p.BorderRadius) || isSet(p.Rounded)) {
			variant = BorderVariantRounded
		}
		style = style.BorderStyle(BorderForVariant(ctx.Theme, variant))
		if p.BorderColor != "" {
			style = style.BorderForeground(ColorValue(ctx.Theme, p.BorderColor))
		}
	}

	if bg := first(p.Bg, p.BgColor, p.BackgroundColor, p.Background); bg != "" {
		style = style.Background(ColorValue(ctx.Theme, bg))
	}
	if p.Color != "" {
		style = style.Foreground(ColorValue(ctx.Theme, p.Color))
	}
	if p.Opacity != nil && *p.Opacity < 1 {
		style = style.Faint(true)
	}

	margin := b.margin()
	padding := b.padding()
	style = style.
		Margin(margin.Top, margin.Right, margin.Bottom, margin.Left).
		Padding(padding.Top, padding.Right, padding.Bottom, padding.Left)

	width := b.outerWidth(ctx, margin.Horizontal()+style.GetHorizontalBorderSize())
	if width > 0 {
		style = style.Width(width)
		if strings.EqualFold(p.Overflow, "hidden") {
			style = style.MaxWidth(width + style.GetHorizontalBorderSize() + margin.Horizontal())
		}
	}
	if height := firstInt(p.Height, p.H, p.MinHeight, p.MinH); height > 0 {
		style = style.Height(height)
	}

	stack := b.layout()
	if width > 0 {
		stack = stack.WithWidth(width - padding.Horizontal())
	}
	out := style.Render(stack.ViewWithContext(ctx.WithConstraints(Unconstrained())))

	b.width, b.height = lipgloss.Width(out), lipgloss.Height(out)
	return out
}

// ContentWidth reports the width left for children when the box renders
// with ctx, or zero when the box sizes itself to its children.
func (b *Box) ContentWidth(ctx RenderContext) int {
	p := b.props
	border := 0
	if p.BorderWidth > 0 && ParseBorderVariant(p.BorderStyle) != BorderVariantNone {
		border = 2
	}
	width := b.outerWidth(ctx, b.margin().Horizontal()+border)
	if width <= 0 {
		return 0
	}
	return max(width-b.padding().Horizontal(), 0)
}

// outerWidth is the styled width (padding included, border and margin
// excluded). frame is the horizontal margin plus border size.
func (b *Box) outerWidth(ctx RenderContext, frame int) int {
	p := b.props
	width := firstInt(p.Width, p.W)
	if maxW := firstInt(p.MaxWidth, p.MaxW); maxW > 0 && (width == 0 || width > maxW) {
		width = maxW
	}
	if width == 0 && ctx.Constraints.MaxWidth > 0 {
		width = ctx.Constraints.MaxWidth - frame
	}
	return width
}

func (b *Box) layout() *Stack {
	p := b.props
	stack := NewStack(b.children...).WithGap(p.Gap)

	switch strings.ToLower(first(p.FlexDirection, p.FlexDir)) {
	case "row", "row-reverse":
		stack = stack.WithDirection(DirectionHorizontal)
	default:
		stack = stack.WithDirection(DirectionVertical)
	}

	switch strings.ToLower(p.AlignItems) {
	case "center":
		stack = stack.WithCrossAlign(CrossCenter)
	case "flex-end", "end":
		stack = stack.WithCrossAlign(CrossEnd)
	}

	switch strings.ToLower(p.JustifyContent) {
	case "space-between":
		stack = stack.WithMainAlign(MainSpaceBetween)
	case "center":
		stack = stack.WithMainAlign(MainCenter)
	case "flex-end", "end":
		stack = stack.WithMainAlign(MainEnd)
	}
	return stack
}

func (b *Box) margin() Spacing {
	p := b.props
	all := firstInt(p.Margin, p.M)
	x := firstInt(p.MarginX, p.MX, all)
	y := firstInt(p.MarginY, p.MY, all)
	return Spacing{
		Top:    firstInt(p.MarginTop, p.MT, y),
		Right:  firstInt(p.MarginRight, p.MR, x),
		Bottom: firstInt(p.MarginBottom, p.MB, y),
		Left:   firstInt(p.MarginLeft, p.ML, x),
	}
}

func (b *Box) padding() Spacing {
	p := b.props
	all := firstInt(p.Padding, p.P)
	x := firstInt(p.PaddingX, p.PX, all)
	y := firstInt(p.PaddingY, p.PY, all)
	return Spacing{Top: y, Right: x, Bottom: y, Left: x}
}

// ColorValue resolves a colour property. Palette tokens such as "blue.500"
// are looked up in the theme; anything else is handed to lipgloss as-is.
func ColorValue(theme Theme, value string) lipgloss.Color {
	family, shade, ok := strings.Cut(value, ".")
	if ok {
		if f, okFamily := ParseFamily(family); okFamily {
			if s, okShade := ParseShade(shade); okShade {
				if color, found := PaletteColor(theme, f, s); found {
					return color
				}
			}
		}
	}
	return lipgloss.Color(value)
}

func isSet(v string) bool {
	return v != "" && v != "0" && !strings.EqualFold(v, "none")
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
