package style

// Enumerated property values. Each enum carries a parse function keyed by the
// attribute-string vocabulary and a String method producing the same
// canonical form, so enum attributes round-trip through the serializer.

// Display selects the layout algorithm for an element.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayGrid
	DisplayBlock
	DisplayNone
)

var displayNames = map[string]Display{
	"flex":  DisplayFlex,
	"grid":  DisplayGrid,
	"block": DisplayBlock,
	"none":  DisplayNone,
}

func ParseDisplay(s string) (Display, bool) { v, ok := displayNames[s]; return v, ok }

func (d Display) String() string {
	switch d {
	case DisplayGrid:
		return "grid"
	case DisplayBlock:
		return "block"
	case DisplayNone:
		return "none"
	default:
		return "flex"
	}
}

// PositionType selects absolute or relative positioning.
type PositionType uint8

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

var positionNames = map[string]PositionType{
	"relative": PositionRelative,
	"absolute": PositionAbsolute,
}

func ParsePosition(s string) (PositionType, bool) { v, ok := positionNames[s]; return v, ok }

func (p PositionType) String() string {
	if p == PositionAbsolute {
		return "absolute"
	}
	return "relative"
}

// OverflowAxis controls clipping on one axis.
type OverflowAxis uint8

const (
	OverflowVisible OverflowAxis = iota
	OverflowClip
)

var overflowNames = map[string]OverflowAxis{
	"visible": OverflowVisible,
	"clip":    OverflowClip,
}

func ParseOverflowAxis(s string) (OverflowAxis, bool) { v, ok := overflowNames[s]; return v, ok }

func (o OverflowAxis) String() string {
	if o == OverflowClip {
		return "clip"
	}
	return "visible"
}

// Direction is the text/layout direction of an element.
type Direction uint8

const (
	DirectionInherit Direction = iota
	DirectionLeftToRight
	DirectionRightToLeft
)

var directionNames = map[string]Direction{
	"inherit": DirectionInherit,
	"ltr":     DirectionLeftToRight,
	"rtl":     DirectionRightToLeft,
}

func ParseDirection(s string) (Direction, bool) { v, ok := directionNames[s]; return v, ok }

func (d Direction) String() string {
	switch d {
	case DirectionLeftToRight:
		return "ltr"
	case DirectionRightToLeft:
		return "rtl"
	default:
		return "inherit"
	}
}

// AlignItems sets the default cross-axis alignment of children.
type AlignItems uint8

const (
	AlignItemsDefault AlignItems = iota
	AlignItemsStart
	AlignItemsEnd
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

var alignItemsNames = map[string]AlignItems{
	"default":    AlignItemsDefault,
	"start":      AlignItemsStart,
	"end":        AlignItemsEnd,
	"flex-start": AlignItemsFlexStart,
	"flex-end":   AlignItemsFlexEnd,
	"center":     AlignItemsCenter,
	"baseline":   AlignItemsBaseline,
	"stretch":    AlignItemsStretch,
}

func ParseAlignItems(s string) (AlignItems, bool) { v, ok := alignItemsNames[s]; return v, ok }

func (a AlignItems) String() string {
	switch a {
	case AlignItemsStart:
		return "start"
	case AlignItemsEnd:
		return "end"
	case AlignItemsFlexStart:
		return "flex-start"
	case AlignItemsFlexEnd:
		return "flex-end"
	case AlignItemsCenter:
		return "center"
	case AlignItemsBaseline:
		return "baseline"
	case AlignItemsStretch:
		return "stretch"
	default:
		return "default"
	}
}

// JustifyItems sets the default main-axis alignment of children.
type JustifyItems uint8

const (
	JustifyItemsDefault JustifyItems = iota
	JustifyItemsStart
	JustifyItemsEnd
	JustifyItemsCenter
	JustifyItemsBaseline
	JustifyItemsStretch
)

var justifyItemsNames = map[string]JustifyItems{
	"default":  JustifyItemsDefault,
	"start":    JustifyItemsStart,
	"end":      JustifyItemsEnd,
	"center":   JustifyItemsCenter,
	"baseline": JustifyItemsBaseline,
	"stretch":  JustifyItemsStretch,
}

func ParseJustifyItems(s string) (JustifyItems, bool) { v, ok := justifyItemsNames[s]; return v, ok }

func (j JustifyItems) String() string {
	switch j {
	case JustifyItemsStart:
		return "start"
	case JustifyItemsEnd:
		return "end"
	case JustifyItemsCenter:
		return "center"
	case JustifyItemsBaseline:
		return "baseline"
	case JustifyItemsStretch:
		return "stretch"
	default:
		return "default"
	}
}

// AlignSelf overrides cross-axis alignment for a single element.
type AlignSelf uint8

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStart
	AlignSelfEnd
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
	AlignSelfStretch
)

var alignSelfNames = map[string]AlignSelf{
	"auto":       AlignSelfAuto,
	"start":      AlignSelfStart,
	"end":        AlignSelfEnd,
	"flex-start": AlignSelfFlexStart,
	"flex-end":   AlignSelfFlexEnd,
	"center":     AlignSelfCenter,
	"baseline":   AlignSelfBaseline,
	"stretch":    AlignSelfStretch,
}

func ParseAlignSelf(s string) (AlignSelf, bool) { v, ok := alignSelfNames[s]; return v, ok }

func (a AlignSelf) String() string {
	switch a {
	case AlignSelfStart:
		return "start"
	case AlignSelfEnd:
		return "end"
	case AlignSelfFlexStart:
		return "flex-start"
	case AlignSelfFlexEnd:
		return "flex-end"
	case AlignSelfCenter:
		return "center"
	case AlignSelfBaseline:
		return "baseline"
	case AlignSelfStretch:
		return "stretch"
	default:
		return "auto"
	}
}

// JustifySelf overrides main-axis alignment for a single element.
type JustifySelf uint8

const (
	JustifySelfAuto JustifySelf = iota
	JustifySelfStart
	JustifySelfEnd
	JustifySelfCenter
	JustifySelfBaseline
	JustifySelfStretch
)

var justifySelfNames = map[string]JustifySelf{
	"auto":     JustifySelfAuto,
	"start":    JustifySelfStart,
	"end":      JustifySelfEnd,
	"center":   JustifySelfCenter,
	"baseline": JustifySelfBaseline,
	"stretch":  JustifySelfStretch,
}

func ParseJustifySelf(s string) (JustifySelf, bool) { v, ok := justifySelfNames[s]; return v, ok }

func (j JustifySelf) String() string {
	switch j {
	case JustifySelfStart:
		return "start"
	case JustifySelfEnd:
		return "end"
	case JustifySelfCenter:
		return "center"
	case JustifySelfBaseline:
		return "baseline"
	case JustifySelfStretch:
		return "stretch"
	default:
		return "auto"
	}
}

// AlignContent distributes cross-axis space between lines.
type AlignContent uint8

const (
	AlignContentDefault AlignContent = iota
	AlignContentStart
	AlignContentEnd
	AlignContentFlexStart
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentSpaceEvenly
)

var alignContentNames = map[string]AlignContent{
	"default":       AlignContentDefault,
	"start":         AlignContentStart,
	"end":           AlignContentEnd,
	"flex-start":    AlignContentFlexStart,
	"flex-end":      AlignContentFlexEnd,
	"center":        AlignContentCenter,
	"stretch":       AlignContentStretch,
	"space-between": AlignContentSpaceBetween,
	"space-around":  AlignContentSpaceAround,
	"space-evenly":  AlignContentSpaceEvenly,
}

func ParseAlignContent(s string) (AlignContent, bool) { v, ok := alignContentNames[s]; return v, ok }

func (a AlignContent) String() string {
	switch a {
	case AlignContentStart:
		return "start"
	case AlignContentEnd:
		return "end"
	case AlignContentFlexStart:
		return "flex-start"
	case AlignContentFlexEnd:
		return "flex-end"
	case AlignContentCenter:
		return "center"
	case AlignContentStretch:
		return "stretch"
	case AlignContentSpaceBetween:
		return "space-between"
	case AlignContentSpaceAround:
		return "space-around"
	case AlignContentSpaceEvenly:
		return "space-evenly"
	default:
		return "default"
	}
}

// JustifyContent distributes main-axis space between children.
type JustifyContent uint8

const (
	JustifyContentDefault JustifyContent = iota
	JustifyContentStart
	JustifyContentEnd
	JustifyContentFlexStart
	JustifyContentFlexEnd
	JustifyContentCenter
	JustifyContentSpaceBetween
	JustifyContentSpaceAround
	JustifyContentSpaceEvenly
)

var justifyContentNames = map[string]JustifyContent{
	"default":       JustifyContentDefault,
	"start":         JustifyContentStart,
	"end":           JustifyContentEnd,
	"flex-start":    JustifyContentFlexStart,
	"flex-end":      JustifyContentFlexEnd,
	"center":        JustifyContentCenter,
	"space-between": JustifyContentSpaceBetween,
	"space-around":  JustifyContentSpaceAround,
	"space-evenly":  JustifyContentSpaceEvenly,
}

func ParseJustifyContent(s string) (JustifyContent, bool) {
	v, ok := justifyContentNames[s]
	return v, ok
}

func (j JustifyContent) String() string {
	switch j {
	case JustifyContentStart:
		return "start"
	case JustifyContentEnd:
		return "end"
	case JustifyContentFlexStart:
		return "flex-start"
	case JustifyContentFlexEnd:
		return "flex-end"
	case JustifyContentCenter:
		return "center"
	case JustifyContentSpaceBetween:
		return "space-between"
	case JustifyContentSpaceAround:
		return "space-around"
	case JustifyContentSpaceEvenly:
		return "space-evenly"
	default:
		return "default"
	}
}

// FlexDirection sets the main axis of a flex container.
type FlexDirection uint8

const (
	FlexRow FlexDirection = iota
	FlexColumn
	FlexRowReverse
	FlexColumnReverse
)

var flexDirectionNames = map[string]FlexDirection{
	"row":            FlexRow,
	"column":         FlexColumn,
	"row-reverse":    FlexRowReverse,
	"column-reverse": FlexColumnReverse,
}

func ParseFlexDirection(s string) (FlexDirection, bool) { v, ok := flexDirectionNames[s]; return v, ok }

func (f FlexDirection) String() string {
	switch f {
	case FlexColumn:
		return "column"
	case FlexRowReverse:
		return "row-reverse"
	case FlexColumnReverse:
		return "column-reverse"
	default:
		return "row"
	}
}

// FlexWrap controls line wrapping of a flex container.
type FlexWrap uint8

const (
	FlexNoWrap FlexWrap = iota
	FlexWrapWrap
	FlexWrapReverse
)

var flexWrapNames = map[string]FlexWrap{
	"nowrap":       FlexNoWrap,
	"wrap":         FlexWrapWrap,
	"wrap-reverse": FlexWrapReverse,
}

func ParseFlexWrap(s string) (FlexWrap, bool) { v, ok := flexWrapNames[s]; return v, ok }

func (f FlexWrap) String() string {
	switch f {
	case FlexWrapWrap:
		return "wrap"
	case FlexWrapReverse:
		return "wrap-reverse"
	default:
		return "nowrap"
	}
}

// GridAutoFlow controls auto-placement of grid items.
type GridAutoFlow uint8

const (
	GridFlowRow GridAutoFlow = iota
	GridFlowColumn
	GridFlowRowDense
	GridFlowColumnDense
)

var gridAutoFlowNames = map[string]GridAutoFlow{
	"row":          GridFlowRow,
	"column":       GridFlowColumn,
	"row-dense":    GridFlowRowDense,
	"column-dense": GridFlowColumnDense,
}

func ParseGridAutoFlow(s string) (GridAutoFlow, bool) { v, ok := gridAutoFlowNames[s]; return v, ok }

func (g GridAutoFlow) String() string {
	switch g {
	case GridFlowColumn:
		return "column"
	case GridFlowRowDense:
		return "row-dense"
	case GridFlowColumnDense:
		return "column-dense"
	default:
		return "row"
	}
}

// LineBreak selects where text may wrap.
type LineBreak uint8

const (
	LineBreakNoWrap LineBreak = iota
	LineBreakWord
	LineBreakChar
)

var lineBreakNames = map[string]LineBreak{
	"nowrap": LineBreakNoWrap,
	"word":   LineBreakWord,
	"char":   LineBreakChar,
}

func ParseLineBreak(s string) (LineBreak, bool) { v, ok := lineBreakNames[s]; return v, ok }

func (l LineBreak) String() string {
	switch l {
	case LineBreakWord:
		return "word"
	case LineBreakChar:
		return "char"
	default:
		return "nowrap"
	}
}
