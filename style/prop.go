package style

// Prop identifies a stylable property. One constant per property keeps the
// merge engine a single exhaustive switch instead of a virtual dispatch per
// property type.
type Prop uint8

const (
	PropBackgroundImage Prop = iota
	PropBackgroundColor
	PropBorderColor
	PropColor

	PropZIndex

	PropDisplay
	PropPosition
	PropOverflow
	PropOverflowX
	PropOverflowY
	PropDirection

	PropLeft
	PropRight
	PropTop
	PropBottom

	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight

	PropAlignItems
	PropJustifyItems
	PropAlignSelf
	PropJustifySelf
	PropAlignContent
	PropJustifyContent

	PropMargin
	PropMarginLeft
	PropMarginRight
	PropMarginTop
	PropMarginBottom

	PropPadding
	PropPaddingLeft
	PropPaddingRight
	PropPaddingTop
	PropPaddingBottom

	PropBorder
	PropBorderLeft
	PropBorderRight
	PropBorderTop
	PropBorderBottom

	PropFlexDirection
	PropFlexWrap
	PropFlex
	PropFlexGrow
	PropFlexShrink
	PropFlexBasis

	PropRowGap
	PropColumnGap
	PropGap

	PropGridAutoFlow
	PropGridRow
	PropGridRowStart
	PropGridRowSpan
	PropGridRowEnd
	PropGridColumn
	PropGridColumnStart
	PropGridColumnSpan
	PropGridColumnEnd

	PropLineBreak

	propCount
)

// propName maps a property to its hyphenated attribute-string name and its
// snake_case structured-document key.
type propName struct {
	attr string
	key  string
}

var propNames = [propCount]propName{
	PropBackgroundImage: {"background-image", "background_image"},
	PropBackgroundColor: {"background-color", "background_color"},
	PropBorderColor:     {"border-color", "border_color"},
	PropColor:           {"color", "color"},

	PropZIndex: {"z-index", "z_index"},

	PropDisplay:   {"display", "display"},
	PropPosition:  {"position", "position"},
	PropOverflow:  {"overflow", "overflow"},
	PropOverflowX: {"overflow-x", "overflow_x"},
	PropOverflowY: {"overflow-y", "overflow_y"},
	PropDirection: {"direction", "direction"},

	PropLeft:   {"left", "left"},
	PropRight:  {"right", "right"},
	PropTop:    {"top", "top"},
	PropBottom: {"bottom", "bottom"},

	PropWidth:     {"width", "width"},
	PropHeight:    {"height", "height"},
	PropMinWidth:  {"min-width", "min_width"},
	PropMinHeight: {"min-height", "min_height"},
	PropMaxWidth:  {"max-width", "max_width"},
	PropMaxHeight: {"max-height", "max_height"},

	PropAlignItems:     {"align-items", "align_items"},
	PropJustifyItems:   {"justify-items", "justify_items"},
	PropAlignSelf:      {"align-self", "align_self"},
	PropJustifySelf:    {"justify-self", "justify_self"},
	PropAlignContent:   {"align-content", "align_content"},
	PropJustifyContent: {"justify-content", "justify_content"},

	PropMargin:       {"margin", "margin"},
	PropMarginLeft:   {"margin-left", "margin_left"},
	PropMarginRight:  {"margin-right", "margin_right"},
	PropMarginTop:    {"margin-top", "margin_top"},
	PropMarginBottom: {"margin-bottom", "margin_bottom"},

	PropPadding:       {"padding", "padding"},
	PropPaddingLeft:   {"padding-left", "padding_left"},
	PropPaddingRight:  {"padding-right", "padding_right"},
	PropPaddingTop:    {"padding-top", "padding_top"},
	PropPaddingBottom: {"padding-bottom", "padding_bottom"},

	PropBorder:       {"border", "border"},
	PropBorderLeft:   {"border-left", "border_left"},
	PropBorderRight:  {"border-right", "border_right"},
	PropBorderTop:    {"border-top", "border_top"},
	PropBorderBottom: {"border-bottom", "border_bottom"},

	PropFlexDirection: {"flex-direction", "flex_direction"},
	PropFlexWrap:      {"flex-wrap", "flex_wrap"},
	PropFlex:          {"flex", "flex"},
	PropFlexGrow:      {"flex-grow", "flex_grow"},
	PropFlexShrink:    {"flex-shrink", "flex_shrink"},
	PropFlexBasis:     {"flex-basis", "flex_basis"},

	PropRowGap:    {"row-gap", "row_gap"},
	PropColumnGap: {"column-gap", "column_gap"},
	PropGap:       {"gap", "gap"},

	PropGridAutoFlow:    {"grid-auto-flow", "grid_auto_flow"},
	PropGridRow:         {"grid-row", "grid_row"},
	PropGridRowStart:    {"grid-row-start", "grid_row_start"},
	PropGridRowSpan:     {"grid-row-span", "grid_row_span"},
	PropGridRowEnd:      {"grid-row-end", "grid_row_end"},
	PropGridColumn:      {"grid-column", "grid_column"},
	PropGridColumnStart: {"grid-column-start", "grid_column_start"},
	PropGridColumnSpan:  {"grid-column-span", "grid_column_span"},
	PropGridColumnEnd:   {"grid-column-end", "grid_column_end"},

	PropLineBreak: {"line-break", "line_break"},
}

// String returns the hyphenated attribute-string name of the property.
func (p Prop) String() string {
	if p < propCount {
		return propNames[p].attr
	}
	return "unknown"
}

// Key returns the snake_case structured-document key of the property.
func (p Prop) Key() string {
	if p < propCount {
		return propNames[p].key
	}
	return "unknown"
}

var propByKey = func() map[string]Prop {
	m := make(map[string]Prop, propCount)
	for p := Prop(0); p < propCount; p++ {
		m[propNames[p].key] = p
	}
	return m
}()

// PropForKey resolves a structured-document key to its property.
func PropForKey(key string) (Prop, bool) {
	p, ok := propByKey[key]
	return p, ok
}
