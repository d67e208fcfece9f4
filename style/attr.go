package style

import "veneer/asset"

// StyleAttr is one property assignment. Value carries the expression for
// every property; Image additionally carries the asset reference behind a
// background image once the owning document has been resolved.
type StyleAttr struct {
	Prop  Prop
	Value Expr
	Image *asset.Ref
}

// ApplyTo writes the attribute's value into c. Every value goes through its
// property's typed expression, so narrowing happens here and nowhere
// earlier; an expression that does not evaluate leaves c untouched, and one
// malformed attribute cannot poison the rest of a cascade.
func (a StyleAttr) ApplyTo(c *Computed, ctx EvalContext) {
	switch a.Prop {
	case PropBackgroundImage:
		a.applyBackgroundImage(c)
	case PropBackgroundColor:
		if v, err := TypedColor(a.Value).Eval(ctx); err == nil {
			c.BackgroundColor = v
		}
	case PropBorderColor:
		if v, err := TypedColor(a.Value).Eval(ctx); err == nil {
			c.BorderColor = v
		}
	case PropColor:
		if v, err := TypedColor(a.Value).Eval(ctx); err == nil {
			c.Color = v
		}

	case PropZIndex:
		if v, err := TypedInt(a.Value).Eval(ctx); err == nil {
			c.ZIndex = &v
		}

	case PropDisplay:
		if v, err := TypedDisplay(a.Value).Eval(ctx); err == nil {
			c.Layout.Display = v
		}
	case PropPosition:
		if v, err := TypedPosition(a.Value).Eval(ctx); err == nil {
			c.Layout.Position = v
		}
	case PropOverflow:
		if v, err := TypedOverflowAxis(a.Value).Eval(ctx); err == nil {
			c.Layout.OverflowX = v
			c.Layout.OverflowY = v
		}
	case PropOverflowX:
		if v, err := TypedOverflowAxis(a.Value).Eval(ctx); err == nil {
			c.Layout.OverflowX = v
		}
	case PropOverflowY:
		if v, err := TypedOverflowAxis(a.Value).Eval(ctx); err == nil {
			c.Layout.OverflowY = v
		}
	case PropDirection:
		if v, err := TypedDirection(a.Value).Eval(ctx); err == nil {
			c.Layout.Direction = v
		}

	case PropLeft:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Left = v
		}
	case PropRight:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Right = v
		}
	case PropTop:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Top = v
		}
	case PropBottom:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Bottom = v
		}

	case PropWidth:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Width = v
		}
	case PropHeight:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Height = v
		}
	case PropMinWidth:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.MinWidth = v
		}
	case PropMinHeight:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.MinHeight = v
		}
	case PropMaxWidth:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.MaxWidth = v
		}
	case PropMaxHeight:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.MaxHeight = v
		}

	case PropAlignItems:
		if v, err := TypedAlignItems(a.Value).Eval(ctx); err == nil {
			c.Layout.AlignItems = v
		}
	case PropJustifyItems:
		if v, err := TypedJustifyItems(a.Value).Eval(ctx); err == nil {
			c.Layout.JustifyItems = v
		}
	case PropAlignSelf:
		if v, err := TypedAlignSelf(a.Value).Eval(ctx); err == nil {
			c.Layout.AlignSelf = v
		}
	case PropJustifySelf:
		if v, err := TypedJustifySelf(a.Value).Eval(ctx); err == nil {
			c.Layout.JustifySelf = v
		}
	case PropAlignContent:
		if v, err := TypedAlignContent(a.Value).Eval(ctx); err == nil {
			c.Layout.AlignContent = v
		}
	case PropJustifyContent:
		if v, err := TypedJustifyContent(a.Value).Eval(ctx); err == nil {
			c.Layout.JustifyContent = v
		}

	case PropMargin:
		if v, err := TypedRect(a.Value).Eval(ctx); err == nil {
			c.Layout.Margin = v
		}
	case PropMarginLeft:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Margin.Left = v
		}
	case PropMarginRight:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Margin.Right = v
		}
	case PropMarginTop:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Margin.Top = v
		}
	case PropMarginBottom:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Margin.Bottom = v
		}

	case PropPadding:
		if v, err := TypedRect(a.Value).Eval(ctx); err == nil {
			c.Layout.Padding = v
		}
	case PropPaddingLeft:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Padding.Left = v
		}
	case PropPaddingRight:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Padding.Right = v
		}
	case PropPaddingTop:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Padding.Top = v
		}
	case PropPaddingBottom:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Padding.Bottom = v
		}

	case PropBorder:
		if v, err := TypedRect(a.Value).Eval(ctx); err == nil {
			c.Layout.Border = v
		}
	case PropBorderLeft:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Border.Left = v
		}
	case PropBorderRight:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Border.Right = v
		}
	case PropBorderTop:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Border.Top = v
		}
	case PropBorderBottom:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.Border.Bottom = v
		}

	case PropFlexDirection:
		if v, err := TypedFlexDirection(a.Value).Eval(ctx); err == nil {
			c.Layout.FlexDirection = v
		}
	case PropFlexWrap:
		if v, err := TypedFlexWrap(a.Value).Eval(ctx); err == nil {
			c.Layout.FlexWrap = v
		}
	case PropFlex:
		a.applyFlexShorthand(c, ctx)
	case PropFlexGrow:
		if v, err := TypedFloat(a.Value).Eval(ctx); err == nil {
			c.Layout.FlexGrow = v
		}
	case PropFlexShrink:
		if v, err := TypedFloat(a.Value).Eval(ctx); err == nil {
			c.Layout.FlexShrink = v
		}
	case PropFlexBasis:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.FlexBasis = v
		}

	case PropRowGap:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.RowGap = v
		}
	case PropColumnGap:
		if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
			c.Layout.ColumnGap = v
		}
	case PropGap:
		a.applyGapShorthand(c, ctx)

	case PropGridAutoFlow:
		if v, err := TypedGridAutoFlow(a.Value).Eval(ctx); err == nil {
			c.Layout.GridAutoFlow = v
		}
	case PropGridRow:
		if v, err := TypedGridPlacement(a.Value).Eval(ctx); err == nil {
			c.Layout.GridRow = v
		}
	case PropGridRowStart:
		if v, err := TypedInt(a.Value).Eval(ctx); err == nil {
			c.Layout.GridRow.SetStart(int16(v))
		}
	case PropGridRowSpan:
		if v, err := TypedInt(a.Value).Eval(ctx); err == nil && v >= 0 {
			c.Layout.GridRow.SetSpan(uint16(v))
		}
	case PropGridRowEnd:
		if v, err := TypedInt(a.Value).Eval(ctx); err == nil {
			c.Layout.GridRow.SetEnd(int16(v))
		}
	case PropGridColumn:
		if v, err := TypedGridPlacement(a.Value).Eval(ctx); err == nil {
			c.Layout.GridColumn = v
		}
	case PropGridColumnStart:
		if v, err := TypedInt(a.Value).Eval(ctx); err == nil {
			c.Layout.GridColumn.SetStart(int16(v))
		}
	case PropGridColumnSpan:
		if v, err := TypedInt(a.Value).Eval(ctx); err == nil && v >= 0 {
			c.Layout.GridColumn.SetSpan(uint16(v))
		}
	case PropGridColumnEnd:
		if v, err := TypedInt(a.Value).Eval(ctx); err == nil {
			c.Layout.GridColumn.SetEnd(int16(v))
		}

	case PropLineBreak:
		if v, err := TypedLineBreak(a.Value).Eval(ctx); err == nil {
			c.LineBreak = &v
		}
	}
}

func (a StyleAttr) applyBackgroundImage(c *Computed) {
	if a.Value.IsNull() || a.Value.Ident() == "none" {
		c.BackgroundImage = nil
		return
	}
	if a.Image != nil && a.Image.Resolved() {
		c.BackgroundImage = a.Image.Handle()
	}
}

func (a StyleAttr) applyFlexShorthand(c *Computed, ctx EvalContext) {
	if v, err := TypedFloat(a.Value).Eval(ctx); err == nil {
		c.Layout.FlexGrow = v
		c.Layout.FlexShrink = 1
		c.Layout.FlexBasis = Auto
		return
	}
	items := a.Value.Items()
	if len(items) != 3 {
		return
	}
	grow, err1 := TypedFloat(items[0]).Eval(ctx)
	shrink, err2 := TypedFloat(items[1]).Eval(ctx)
	basis, err3 := TypedLength(items[2]).Eval(ctx)
	if err1 != nil || err2 != nil || err3 != nil {
		return
	}
	c.Layout.FlexGrow = grow
	c.Layout.FlexShrink = shrink
	c.Layout.FlexBasis = basis
}

func (a StyleAttr) applyGapShorthand(c *Computed, ctx EvalContext) {
	if v, err := TypedLength(a.Value).Eval(ctx); err == nil {
		c.Layout.RowGap = v
		c.Layout.ColumnGap = v
		return
	}
	items := a.Value.Items()
	if len(items) != 2 {
		return
	}
	row, err1 := TypedLength(items[0]).Eval(ctx)
	col, err2 := TypedLength(items[1]).Eval(ctx)
	if err1 != nil || err2 != nil {
		return
	}
	c.Layout.RowGap = row
	c.Layout.ColumnGap = col
}

// ElementStyle is an ordered set of attributes: at most one per property,
// applied in insertion order. A repeated property moves to the end of the
// sequence with the new value, so the later occurrence also applies later.
type ElementStyle struct {
	attrs []StyleAttr
	index map[Prop]int
}

// NewElementStyle creates a set from attrs in order.
func NewElementStyle(attrs ...StyleAttr) *ElementStyle {
	s := &ElementStyle{index: make(map[Prop]int, len(attrs))}
	for _, a := range attrs {
		s.Set(a)
	}
	return s
}

// Set inserts the attribute for its property at the end of the sequence,
// removing any earlier occurrence.
func (s *ElementStyle) Set(a StyleAttr) {
	if s.index == nil {
		s.index = make(map[Prop]int)
	}
	if i, ok := s.index[a.Prop]; ok {
		s.attrs = append(s.attrs[:i], s.attrs[i+1:]...)
		for p, j := range s.index {
			if j > i {
				s.index[p] = j - 1
			}
		}
	}
	s.index[a.Prop] = len(s.attrs)
	s.attrs = append(s.attrs, a)
}

// Get returns the attribute for a property if present.
func (s *ElementStyle) Get(p Prop) (StyleAttr, bool) {
	if s == nil || s.index == nil {
		return StyleAttr{}, false
	}
	if i, ok := s.index[p]; ok {
		return s.attrs[i], true
	}
	return StyleAttr{}, false
}

// Len returns the number of attributes in the set.
func (s *ElementStyle) Len() int {
	if s == nil {
		return 0
	}
	return len(s.attrs)
}

// Attrs returns the attributes in insertion order. The slice is shared;
// callers must not modify it.
func (s *ElementStyle) Attrs() []StyleAttr {
	if s == nil {
		return nil
	}
	return s.attrs
}

// Clone returns an independent copy of the set. Expressions are shared;
// asset references are not, so the copy can be resolved against a different
// document.
func (s *ElementStyle) Clone() *ElementStyle {
	if s == nil {
		return nil
	}
	c := &ElementStyle{
		attrs: make([]StyleAttr, len(s.attrs)),
		index: make(map[Prop]int, len(s.index)),
	}
	copy(c.attrs, s.attrs)
	for p, i := range s.index {
		c.index[p] = i
	}
	for i := range c.attrs {
		if r := c.attrs[i].Image; r != nil {
			c.attrs[i].Image = asset.NewRef(r.Source)
		}
	}
	return c
}

// ApplyTo applies every attribute in order.
func (s *ElementStyle) ApplyTo(c *Computed, ctx EvalContext) {
	if s == nil {
		return
	}
	for _, a := range s.attrs {
		a.ApplyTo(c, ctx)
	}
}

// ResolveAssetPaths anchors every asset reference in the set, recursing
// into nested style and list expressions.
func (s *ElementStyle) ResolveAssetPaths(lc *asset.LoadContext) error {
	if s == nil {
		return nil
	}
	for i := range s.attrs {
		a := &s.attrs[i]
		if a.Prop == PropBackgroundImage && a.Value.Kind() == KindAssetPath {
			if a.Image == nil {
				a.Image = asset.NewRef(a.Value.Text())
			}
			if err := a.Image.Resolve(lc); err != nil {
				return err
			}
		}
		if err := resolveExprAssets(a.Value, lc); err != nil {
			return err
		}
	}
	return nil
}

func resolveExprAssets(e Expr, lc *asset.LoadContext) error {
	switch e.Kind() {
	case KindList:
		for _, item := range e.Items() {
			if err := resolveExprAssets(item, lc); err != nil {
				return err
			}
		}
	case KindStyle:
		return e.Style().ResolveAssetPaths(lc)
	}
	return nil
}

// Cascade flattens a stack of attribute sets onto fresh defaults. Sets
// apply in order, so later sets override earlier ones field by field.
func Cascade(ctx EvalContext, styles ...*ElementStyle) *Computed {
	c := NewComputed()
	for _, s := range styles {
		s.ApplyTo(c, ctx)
	}
	return c
}
