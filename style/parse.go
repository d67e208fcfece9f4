package style

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a recognized attribute whose value does not parse.
// Unknown distinguishes an enumeration value outside the accepted set from a
// value that is malformed for its type.
type ParseError struct {
	What    string
	Value   string
	Unknown bool
}

func (e *ParseError) Error() string {
	if e.Unknown {
		return fmt.Sprintf("unknown %s value %q", e.What, e.Value)
	}
	return fmt.Sprintf("invalid %s value %q", e.What, e.Value)
}

func invalidValue(what, value string) error {
	return &ParseError{What: what, Value: value}
}

func unknownValue(what, value string) error {
	return &ParseError{What: what, Value: value, Unknown: true}
}

func parseI16(s string) (int16, bool) {
	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return int16(v), true
}

func parseU16(s string) (uint16, bool) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

var propByAttr = func() map[string]Prop {
	m := make(map[string]Prop, propCount)
	for p := Prop(0); p < propCount; p++ {
		m[propNames[p].attr] = p
	}
	return m
}()

// ParseAttr parses a single markup attribute into a style attribute. An
// attribute name that is not a style property returns (nil, nil) so callers
// can route it elsewhere; a recognized name with a bad value returns a
// *ParseError.
func ParseAttr(name, value string) (*StyleAttr, error) {
	prop, ok := propByAttr[name]
	if !ok {
		return nil, nil
	}

	expr, err := parseAttrValue(prop, name, value)
	if err != nil {
		return nil, err
	}
	return &StyleAttr{Prop: prop, Value: expr}, nil
}

func parseAttrValue(prop Prop, name, value string) (Expr, error) {
	switch prop {
	case PropBackgroundImage:
		// The path is anchored and loaded when the owning document is
		// resolved; here it is only captured.
		return AssetPathExpr(value), nil

	case PropBackgroundColor, PropBorderColor, PropColor:
		c, err := ParseColor(value)
		if err != nil {
			return Expr{}, err
		}
		return ColorExpr(c), nil

	case PropZIndex:
		n, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return Expr{}, invalidValue(name, value)
		}
		return NumberExpr(float64(n)), nil

	case PropFlexGrow, PropFlexShrink:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Expr{}, invalidValue(name, value)
		}
		return NumberExpr(f), nil

	case PropFlex:
		return parseFlexShorthand(name, value)

	case PropLeft, PropRight, PropTop, PropBottom,
		PropWidth, PropHeight, PropMinWidth, PropMinHeight,
		PropMaxWidth, PropMaxHeight,
		PropMarginLeft, PropMarginRight, PropMarginTop, PropMarginBottom,
		PropPaddingLeft, PropPaddingRight, PropPaddingTop, PropPaddingBottom,
		PropBorderLeft, PropBorderRight, PropBorderTop, PropBorderBottom,
		PropFlexBasis, PropRowGap, PropColumnGap:
		v, err := ParseVal(value)
		if err != nil {
			return Expr{}, err
		}
		return LengthExpr(v), nil

	case PropMargin, PropPadding, PropBorder:
		r, err := ParseRect(value)
		if err != nil {
			return Expr{}, err
		}
		return RectExpr(r), nil

	case PropGap:
		return parseGapShorthand(name, value)

	case PropGridRow, PropGridColumn:
		// Re-parsed at evaluation time; validate eagerly so markup
		// errors surface at load.
		if _, err := ParseGridPlacement(value); err != nil {
			return Expr{}, invalidValue(name, value)
		}
		return StringExpr(value), nil

	case PropGridRowStart, PropGridRowEnd, PropGridColumnStart, PropGridColumnEnd:
		n, ok := parseI16(value)
		if !ok {
			return Expr{}, invalidValue(name, value)
		}
		return NumberExpr(float64(n)), nil

	case PropGridRowSpan, PropGridColumnSpan:
		n, ok := parseU16(value)
		if !ok {
			return Expr{}, invalidValue(name, value)
		}
		return NumberExpr(float64(n)), nil

	case PropDisplay:
		return parseEnumAttr(name, value, ParseDisplay)
	case PropPosition:
		return parseEnumAttr(name, value, ParsePosition)
	case PropOverflow, PropOverflowX, PropOverflowY:
		return parseEnumAttr(name, value, ParseOverflowAxis)
	case PropDirection:
		return parseEnumAttr(name, value, ParseDirection)
	case PropAlignItems:
		return parseEnumAttr(name, value, ParseAlignItems)
	case PropJustifyItems:
		return parseEnumAttr(name, value, ParseJustifyItems)
	case PropAlignSelf:
		return parseEnumAttr(name, value, ParseAlignSelf)
	case PropJustifySelf:
		return parseEnumAttr(name, value, ParseJustifySelf)
	case PropAlignContent:
		return parseEnumAttr(name, value, ParseAlignContent)
	case PropJustifyContent:
		return parseEnumAttr(name, value, ParseJustifyContent)
	case PropFlexDirection:
		return parseEnumAttr(name, value, ParseFlexDirection)
	case PropFlexWrap:
		return parseEnumAttr(name, value, ParseFlexWrap)
	case PropGridAutoFlow:
		return parseEnumAttr(name, value, ParseGridAutoFlow)
	case PropLineBreak:
		return parseEnumAttr(name, value, ParseLineBreak)
	}
	return Expr{}, invalidValue(name, value)
}

func parseEnumAttr[T any](name, value string, parse func(string) (T, bool)) (Expr, error) {
	if _, ok := parse(value); !ok {
		return Expr{}, unknownValue(name, value)
	}
	return IdentExpr(value), nil
}

// parseFlexShorthand accepts "<grow>", "<grow> <shrink>" or
// "<grow> <shrink> <basis>". Omitted shrink defaults to 1, omitted basis to
// auto.
func parseFlexShorthand(name, value string) (Expr, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 3 {
		return Expr{}, invalidValue(name, value)
	}
	grow, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Expr{}, invalidValue(name, value)
	}
	shrink := 1.0
	if len(fields) > 1 {
		shrink, err = strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Expr{}, invalidValue(name, value)
		}
	}
	basis := Auto
	if len(fields) > 2 {
		basis, err = ParseVal(fields[2])
		if err != nil {
			return Expr{}, invalidValue(name, value)
		}
	}
	return ListExpr(NumberExpr(grow), NumberExpr(shrink), LengthExpr(basis)), nil
}

// parseGapShorthand accepts one length for both axes or "<row> <column>".
func parseGapShorthand(name, value string) (Expr, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 2 {
		return Expr{}, invalidValue(name, value)
	}
	row, err := ParseVal(fields[0])
	if err != nil {
		return Expr{}, err
	}
	col := row
	if len(fields) > 1 {
		col, err = ParseVal(fields[1])
		if err != nil {
			return Expr{}, err
		}
	}
	return ListExpr(LengthExpr(row), LengthExpr(col)), nil
}
