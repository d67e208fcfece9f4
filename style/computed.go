package style

import "veneer/asset"

// Layout holds every property consumed by the layout pass.
type Layout struct {
	Display   Display
	Position  PositionType
	OverflowX OverflowAxis
	OverflowY OverflowAxis
	Direction Direction

	Left   Val
	Right  Val
	Top    Val
	Bottom Val

	Width     Val
	Height    Val
	MinWidth  Val
	MinHeight Val
	MaxWidth  Val
	MaxHeight Val

	AlignItems     AlignItems
	JustifyItems   JustifyItems
	AlignSelf      AlignSelf
	JustifySelf    JustifySelf
	AlignContent   AlignContent
	JustifyContent JustifyContent

	Margin  Rect
	Padding Rect
	Border  Rect

	FlexDirection FlexDirection
	FlexWrap      FlexWrap
	FlexGrow      float64
	FlexShrink    float64
	FlexBasis     Val

	RowGap    Val
	ColumnGap Val

	GridAutoFlow GridAutoFlow
	GridRow      GridPlacement
	GridColumn   GridPlacement
}

// Computed is the flattened result of applying a stack of attribute sets.
// Optional properties stay nil when no attribute in the stack set them.
type Computed struct {
	Layout Layout

	BackgroundImage *asset.Handle
	BackgroundColor *Color
	BorderColor     *Color
	Color           *Color

	ZIndex    *int32
	LineBreak *LineBreak
}

// NewComputed returns a computed style holding the defaults every element
// starts from before any attribute set is applied.
func NewComputed() *Computed {
	return &Computed{
		Layout: Layout{
			Display:   DisplayFlex,
			Position:  PositionRelative,
			OverflowX: OverflowVisible,
			OverflowY: OverflowVisible,

			Left:   Auto,
			Right:  Auto,
			Top:    Auto,
			Bottom: Auto,

			Width:     Auto,
			Height:    Auto,
			MinWidth:  Auto,
			MinHeight: Auto,
			MaxWidth:  Auto,
			MaxHeight: Auto,

			Margin:  ZeroRect(),
			Padding: ZeroRect(),
			Border:  ZeroRect(),

			FlexShrink: 1,
			FlexBasis:  Auto,

			RowGap:    Px(0),
			ColumnGap: Px(0),
		},
	}
}
