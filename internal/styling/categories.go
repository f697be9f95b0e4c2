package styling

// Style category key lists. A key belongs to at most one category; the
// partition tests assert that the lists stay disjoint.
var (
	Margin = []string{
		"margin", "m",
		"marginTop", "mt",
		"marginRight", "mr",
		"marginBottom", "mb",
		"marginLeft", "ml",
		"marginX", "mx",
		"marginY", "my",
	}

	Border = []string{
		"border", "borderWidth", "borderStyle", "borderColor", "borderRadius", "rounded",
		"borderTop", "borderTopWidth", "borderTopColor",
		"borderRight", "borderRightWidth", "borderRightColor",
		"borderBottom", "borderBottomWidth", "borderBottomColor",
		"borderLeft", "borderLeftWidth", "borderLeftColor",
		"borderX", "borderY",
	}

	Layout = []string{
		"width", "w", "height", "h",
		"minWidth", "minW", "minHeight", "minH",
		"maxWidth", "maxW", "maxHeight", "maxH",
		"display", "overflow", "overflowX", "overflowY",
	}

	Flexbox = []string{
		"alignItems", "alignContent", "alignSelf",
		"justifyItems", "justifyContent", "justifySelf",
		"flexWrap", "flexDirection", "flexDir",
		"flex", "flexGrow", "flexShrink", "flexBasis",
	}

	Position = []string{
		"position", "zIndex", "top", "right", "bottom", "left",
	}

	Background = []string{
		"bg", "bgColor", "background", "backgroundColor",
	}
)

// ContainerCategories lists the categories routed to a widget's outer
// layout container, in the order they are applied.
func ContainerCategories() [][]string {
	return [][]string{Margin, Border, Layout, Flexbox, Position, Background}
}

// CategoryKeys flattens every container category into one list.
func CategoryKeys() []string {
	var keys []string
	for _, category := range ContainerCategories() {
		keys = append(keys, category...)
	}
	return keys
}
