package style

import (
	"strconv"
	"strings"
)

// Kind tags the variant held by an Expr.
type Kind uint8

const (
	KindNull Kind = iota
	KindIdent
	KindString
	KindNumber
	KindColor
	KindLength
	KindRect
	KindAssetPath
	KindList
	KindStyle
)

// Expr is a dynamic style value: a literal or a deferred expression that a
// typed consumer narrows on demand. Exprs are immutable once constructed and
// cheap to share between attribute sets.
type Expr struct {
	kind  Kind
	str   string // ident, string literal or asset path
	num   float64
	color Color
	val   Val
	rect  Rect
	list  []Expr
	style *ElementStyle
}

func NullExpr() Expr               { return Expr{kind: KindNull} }
func IdentExpr(name string) Expr   { return Expr{kind: KindIdent, str: name} }
func StringExpr(s string) Expr     { return Expr{kind: KindString, str: s} }
func NumberExpr(f float64) Expr    { return Expr{kind: KindNumber, num: f} }
func ColorExpr(c Color) Expr       { return Expr{kind: KindColor, color: c} }
func LengthExpr(v Val) Expr        { return Expr{kind: KindLength, val: v} }
func RectExpr(r Rect) Expr         { return Expr{kind: KindRect, rect: r} }
func AssetPathExpr(p string) Expr  { return Expr{kind: KindAssetPath, str: p} }
func ListExpr(items ...Expr) Expr  { return Expr{kind: KindList, list: items} }
func StyleExpr(s *ElementStyle) Expr { return Expr{kind: KindStyle, style: s} }

func (e Expr) Kind() Kind { return e.kind }

// IsNull reports whether the expression is the explicit null literal.
func (e Expr) IsNull() bool { return e.kind == KindNull }

// Ident returns the identifier name for KindIdent expressions.
func (e Expr) Ident() string {
	if e.kind == KindIdent {
		return e.str
	}
	return ""
}

// Text returns the raw string payload of ident, string and asset-path
// expressions.
func (e Expr) Text() string { return e.str }

// Items returns the elements of a list expression.
func (e Expr) Items() []Expr {
	if e.kind == KindList {
		return e.list
	}
	return nil
}

// Style returns the nested attribute set of a style expression.
func (e Expr) Style() *ElementStyle {
	if e.kind == KindStyle {
		return e.style
	}
	return nil
}

// String renders a debug form of the expression.
func (e Expr) String() string {
	switch e.kind {
	case KindNull:
		return "null"
	case KindIdent:
		return e.str
	case KindString:
		return strconv.Quote(e.str)
	case KindNumber:
		return formatNum(e.num)
	case KindColor:
		return e.color.String()
	case KindLength:
		return e.val.String()
	case KindRect:
		return e.rect.String()
	case KindAssetPath:
		return "asset(" + e.str + ")"
	case KindList:
		parts := make([]string, len(e.list))
		for i, item := range e.list {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindStyle:
		return "style{...}"
	}
	return "?"
}

// Conversions narrow an Expr to a specific target type. Every conversion is
// a pure, total function: a tag or unit mismatch yields ok == false, never an
// error, so the cascade can skip malformed attributes and keep going.

// AsColor narrows to a color literal.
func (e Expr) AsColor() (Color, bool) {
	if e.kind == KindColor {
		return e.color, true
	}
	return Color{}, false
}

// AsColorOpt narrows to an optional color: the null literal converts to "no
// color" rather than failing.
func (e Expr) AsColorOpt() (*Color, bool) {
	switch e.kind {
	case KindNull:
		return nil, true
	case KindColor:
		c := e.color
		return &c, true
	}
	return nil, false
}

// AsInt narrows to a signed 32-bit integer; the number must be integral.
func (e Expr) AsInt() (int32, bool) {
	if e.kind != KindNumber {
		return 0, false
	}
	i := int32(e.num)
	if float64(i) != e.num {
		return 0, false
	}
	return i, true
}

// AsFloat narrows to a scalar number.
func (e Expr) AsFloat() (float64, bool) {
	if e.kind == KindNumber {
		return e.num, true
	}
	return 0, false
}

// AsLength narrows to a length. Bare numbers default to pixels; the
// identifier "auto" converts to the auto value.
func (e Expr) AsLength() (Val, bool) {
	switch e.kind {
	case KindLength:
		return e.val, true
	case KindNumber:
		return Px(e.num), true
	case KindIdent:
		if e.str == "auto" {
			return Auto, true
		}
	}
	return Val{}, false
}

// AsRect narrows to a four-sided rect. A single length or number applies to
// all sides; a list of one to four length-convertible items uses CSS
// shorthand defaulting.
func (e Expr) AsRect() (Rect, bool) {
	switch e.kind {
	case KindRect:
		return e.rect, true
	case KindLength, KindNumber:
		v, _ := e.AsLength()
		return UniformRect(v), true
	case KindList:
		if len(e.list) == 0 || len(e.list) > 4 {
			return Rect{}, false
		}
		vals := make([]Val, len(e.list))
		for i, item := range e.list {
			v, ok := item.AsLength()
			if !ok {
				return Rect{}, false
			}
			vals[i] = v
		}
		var r Rect
		r.Top = vals[0]
		r.Right = r.Top
		if len(vals) > 1 {
			r.Right = vals[1]
		}
		r.Bottom = r.Top
		if len(vals) > 2 {
			r.Bottom = vals[2]
		}
		r.Left = r.Right
		if len(vals) > 3 {
			r.Left = vals[3]
		}
		return r, true
	}
	return Rect{}, false
}

// AsGridPlacement narrows to a grid placement. Accepted forms: a string in
// the literal "<start>/<end>" or "<start>/span <n>" grammar, or a list of
// two integral numbers (start, end).
func (e Expr) AsGridPlacement() (GridPlacement, bool) {
	switch e.kind {
	case KindString, KindIdent:
		g, err := ParseGridPlacement(e.str)
		if err != nil {
			return GridPlacement{}, false
		}
		return g, true
	case KindList:
		if len(e.list) != 2 {
			return GridPlacement{}, false
		}
		start, ok1 := e.list[0].AsInt()
		end, ok2 := e.list[1].AsInt()
		if !ok1 || !ok2 {
			return GridPlacement{}, false
		}
		return GridPlacement{Start: int16(start), End: int16(end)}, true
	}
	return GridPlacement{}, false
}

func (e Expr) AsDisplay() (Display, bool) {
	if e.kind != KindIdent {
		return 0, false
	}
	return ParseDisplay(e.str)
}

func (e Expr) AsPosition() (PositionType, bool) {
	if e.kind != KindIdent {
		return 0, false
	}
	return ParsePosition(e.str)
}

func (e Expr) AsOverflowAxis() (OverflowAxis, bool) {
	if e.kind != KindIdent {
		return 0, false
	}
	return ParseOverflowAxis(e.str)
}

func (e Expr) AsDirection() (Direction, bool) {
	if e.kind != KindIdent {
		return 0, false
	}
	return ParseDirection(e.str)
}

func (e Expr) AsAlignItems() (AlignItems, bool) {
	if e.kind != KindIdent {
		return 0, false
	}
	return ParseAlignItems(e.str)
}

func (e Expr) AsJustifyItems() (JustifyItems, bool) {
	if e.kind != KindIdent {
		return 0, false
	}
	return ParseJustifyItems(e.str)
}

func (e Expr) AsAlignSelf() (AlignSelf, bool) {
	if e.kind != KindIdent {
		return 0, false
	}
	return ParseAlignSelf(e.str)
}

func (e Expr) AsJustifySelf() (JustifySelf, bool) {
	if e.kind != KindIdent {
		return 0, false
	}
	return ParseJustifySelf(e.str)
}

func (e Expr) AsAlignContent() (AlignContent, bool) {
	if e.kind != KindIdent {
		return 0, false
	}
	return ParseAlignContent(e.str)
}

func (e Expr) AsJustifyContent() (JustifyContent, bool) {
	if e.kind != KindIdent {
		return 0, false
	}
	return ParseJustifyContent(e.str)
}

func (e Expr) AsFlexDirection() (FlexDirection, bool) {
	if e.kind != KindIdent {
		return 0, false
	}
	return ParseFlexDirection(e.str)
}

func (e Expr) AsFlexWrap() (FlexWrap, bool) {
	if e.kind != KindIdent {
		return 0, false
	}
	return ParseFlexWrap(e.str)
}

func (e Expr) AsGridAutoFlow() (GridAutoFlow, bool) {
	if e.kind != KindIdent {
		return 0, false
	}
	return ParseGridAutoFlow(e.str)
}

func (e Expr) AsLineBreak() (LineBreak, bool) {
	if e.kind != KindIdent {
		return 0, false
	}
	return ParseLineBreak(e.str)
}
