package style_test

import (
	"testing"

	"veneer/style"
)

func styleOf(t *testing.T, attrs ...[2]string) *style.ElementStyle {
	t.Helper()
	s := style.NewElementStyle()
	for _, kv := range attrs {
		s.Set(mustParseAttr(t, kv[0], kv[1]))
	}
	return s
}

func TestComputedDefaults(t *testing.T) {
	c := style.NewComputed()
	if c.Layout.Display != style.DisplayFlex {
		t.Errorf("default display = %v", c.Layout.Display)
	}
	if c.Layout.Position != style.PositionRelative {
		t.Errorf("default position = %v", c.Layout.Position)
	}
	if c.Layout.Width != style.Auto || c.Layout.Left != style.Auto {
		t.Error("sizes and insets should default to auto")
	}
	if c.Layout.Margin != style.ZeroRect() || c.Layout.Padding != style.ZeroRect() {
		t.Error("margin and padding should default to zero")
	}
	if c.Layout.FlexGrow != 0 || c.Layout.FlexShrink != 1 || c.Layout.FlexBasis != style.Auto {
		t.Error("flex defaults should be grow 0, shrink 1, basis auto")
	}
	if c.BackgroundColor != nil || c.Color != nil || c.BackgroundImage != nil {
		t.Error("paint properties should default to unset")
	}
}

func TestCascadeFieldGranularity(t *testing.T) {
	base := styleOf(t,
		[2]string{"width", "100px"},
		[2]string{"height", "50px"},
		[2]string{"background-color", "#ff0000"},
	)
	over := styleOf(t,
		[2]string{"width", "200px"},
	)

	c := style.Cascade(style.EvalContext{}, base, over)
	if c.Layout.Width != style.Px(200) {
		t.Errorf("width = %v, want 200px from the later set", c.Layout.Width)
	}
	if c.Layout.Height != style.Px(50) {
		t.Errorf("height = %v, untouched fields must survive the later set", c.Layout.Height)
	}
	if c.BackgroundColor == nil {
		t.Error("background color from the earlier set was lost")
	}
}

func TestCascadeShorthandThenSpecific(t *testing.T) {
	s := styleOf(t,
		[2]string{"margin", "10px"},
		[2]string{"margin-left", "2px"},
	)
	c := style.Cascade(style.EvalContext{}, s)
	want := style.Rect{Top: style.Px(10), Right: style.Px(10), Bottom: style.Px(10), Left: style.Px(2)}
	if c.Layout.Margin != want {
		t.Errorf("margin = %v, want %v", c.Layout.Margin, want)
	}
}

func TestCascadeCompositeAttrs(t *testing.T) {
	s := styleOf(t,
		[2]string{"overflow", "clip"},
		[2]string{"gap", "4px 8px"},
		[2]string{"flex", "2 0 10px"},
	)
	c := style.Cascade(style.EvalContext{}, s)
	if c.Layout.OverflowX != style.OverflowClip || c.Layout.OverflowY != style.OverflowClip {
		t.Error("overflow should set both axes")
	}
	if c.Layout.RowGap != style.Px(4) || c.Layout.ColumnGap != style.Px(8) {
		t.Errorf("gap = %v / %v", c.Layout.RowGap, c.Layout.ColumnGap)
	}
	if c.Layout.FlexGrow != 2 || c.Layout.FlexShrink != 0 || c.Layout.FlexBasis != style.Px(10) {
		t.Errorf("flex = %v %v %v", c.Layout.FlexGrow, c.Layout.FlexShrink, c.Layout.FlexBasis)
	}
}

func TestCascadeGridPlacementParts(t *testing.T) {
	s := styleOf(t,
		[2]string{"grid-row", "1/3"},
		[2]string{"grid-row-start", "2"},
		[2]string{"grid-column-span", "4"},
	)
	c := style.Cascade(style.EvalContext{}, s)
	if c.Layout.GridRow.Start != 2 || c.Layout.GridRow.End != 3 {
		t.Errorf("grid row = %+v, start must be overridden in place", c.Layout.GridRow)
	}
	if c.Layout.GridColumn.Span != 4 {
		t.Errorf("grid column = %+v", c.Layout.GridColumn)
	}
}

func TestApplySkipsMismatchedValue(t *testing.T) {
	c := style.NewComputed()
	c.Layout.Width = style.Px(100)

	// A color expression cannot serve a length property; the previous
	// value must survive.
	bad := style.StyleAttr{Prop: style.PropWidth, Value: style.ColorExpr(style.RGBA(1, 0, 0, 1))}
	bad.ApplyTo(c, style.EvalContext{})
	if c.Layout.Width != style.Px(100) {
		t.Errorf("width = %v after mismatched apply", c.Layout.Width)
	}
}

func TestElementStyleSetReplaces(t *testing.T) {
	s := style.NewElementStyle(
		mustParseAttr(t, "width", "10px"),
		mustParseAttr(t, "height", "20px"),
		mustParseAttr(t, "width", "30px"),
	)
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	if s.Attrs()[0].Prop != style.PropHeight || s.Attrs()[1].Prop != style.PropWidth {
		t.Error("replaced property must move to the end of the sequence")
	}
	a, ok := s.Get(style.PropWidth)
	if !ok {
		t.Fatal("width missing")
	}
	if v, _ := a.Value.AsLength(); v != style.Px(30) {
		t.Errorf("width = %v, want the last value", v)
	}
}

func TestElementStyleDuplicateAppliesLate(t *testing.T) {
	// The duplicate overflow-x lands after the overflow shorthand, so it
	// must win on the x axis even though its first occurrence came first.
	s := styleOf(t,
		[2]string{"overflow-x", "clip"},
		[2]string{"overflow", "clip"},
		[2]string{"overflow-x", "visible"},
	)
	c := style.Cascade(style.EvalContext{}, s)
	if c.Layout.OverflowX != style.OverflowVisible {
		t.Errorf("overflow-x = %v, later duplicate must apply later", c.Layout.OverflowX)
	}
	if c.Layout.OverflowY != style.OverflowClip {
		t.Errorf("overflow-y = %v", c.Layout.OverflowY)
	}
}

func TestCascadeOverflowThenAxis(t *testing.T) {
	s := styleOf(t,
		[2]string{"overflow", "clip"},
		[2]string{"overflow-x", "visible"},
	)
	c := style.Cascade(style.EvalContext{}, s)
	if c.Layout.OverflowX != style.OverflowVisible {
		t.Errorf("overflow-x = %v, want the specific axis to win", c.Layout.OverflowX)
	}
	if c.Layout.OverflowY != style.OverflowClip {
		t.Errorf("overflow-y = %v, want the shorthand to stick", c.Layout.OverflowY)
	}
}

func TestOptionalFieldsDistinguishUnset(t *testing.T) {
	unset := style.Cascade(style.EvalContext{}, style.NewElementStyle())
	if unset.ZIndex != nil {
		t.Errorf("z-index = %v without any attribute, want unset", *unset.ZIndex)
	}
	if unset.LineBreak != nil {
		t.Errorf("line-break = %v without any attribute, want unset", *unset.LineBreak)
	}

	zero := style.Cascade(style.EvalContext{}, styleOf(t,
		[2]string{"z-index", "0"},
		[2]string{"line-break", "nowrap"},
	))
	if zero.ZIndex == nil || *zero.ZIndex != 0 {
		t.Errorf("z-index = %v, explicit zero must be distinguishable from unset", zero.ZIndex)
	}
	if zero.LineBreak == nil || *zero.LineBreak != style.LineBreakNoWrap {
		t.Errorf("line-break = %v, explicit nowrap must be distinguishable from unset", zero.LineBreak)
	}
}

func TestNullColorClearsInheritedValue(t *testing.T) {
	base := styleOf(t, [2]string{"color", "#fff"})
	clear := style.NewElementStyle(style.StyleAttr{Prop: style.PropColor, Value: style.NullExpr()})

	c := style.Cascade(style.EvalContext{}, base, clear)
	if c.Color != nil {
		t.Errorf("color = %v, null must clear it", *c.Color)
	}
}
