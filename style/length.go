package style

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Unit is the measurement unit of a length value.
type Unit uint8

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
	UnitVw
	UnitVh
	UnitVMin
	UnitVMax
)

// Val is a single length value as consumed by the layout engine.
// The zero value is "auto".
type Val struct {
	Unit  Unit
	Value float64
}

// Auto is the keyword length value.
var Auto = Val{Unit: UnitAuto}

func Px(v float64) Val      { return Val{Unit: UnitPx, Value: v} }
func Percent(v float64) Val { return Val{Unit: UnitPercent, Value: v} }
func Vw(v float64) Val      { return Val{Unit: UnitVw, Value: v} }
func Vh(v float64) Val      { return Val{Unit: UnitVh, Value: v} }
func VMin(v float64) Val    { return Val{Unit: UnitVMin, Value: v} }
func VMax(v float64) Val    { return Val{Unit: UnitVMax, Value: v} }

// String renders the value in its canonical attribute form, e.g. "1.5px",
// "30%", "auto".
func (v Val) String() string {
	if v.Unit == UnitAuto {
		return "auto"
	}
	num := strconv.FormatFloat(v.Value, 'f', -1, 64)
	switch v.Unit {
	case UnitPx:
		return num + "px"
	case UnitPercent:
		return num + "%"
	case UnitVw:
		return num + "vw"
	case UnitVh:
		return num + "vh"
	case UnitVMin:
		return num + "vmin"
	case UnitVMax:
		return num + "vmax"
	}
	return num
}

// valPattern accepts a signed decimal number with an optional unit suffix.
// The numeric part is validated again by strconv so forms like "1.1.1" fail.
var valPattern = regexp.MustCompile(`^([-+.\d]+)(px|vw|vh|vmin|vmax|%)?$`)

// ParseVal converts an attribute-string length into a Val. The keyword
// "auto" is accepted; a bare number defaults to pixels.
func ParseVal(s string) (Val, error) {
	if s == "auto" {
		return Auto, nil
	}
	m := valPattern.FindStringSubmatch(s)
	if m == nil {
		return Val{}, invalidValue("length", s)
	}
	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Val{}, invalidValue("length", s)
	}
	switch m[2] {
	case "", "px":
		return Px(num), nil
	case "%":
		return Percent(num), nil
	case "vw":
		return Vw(num), nil
	case "vh":
		return Vh(num), nil
	case "vmin":
		return VMin(num), nil
	case "vmax":
		return VMax(num), nil
	}
	return Val{}, invalidValue("length", s)
}

// Rect is a set of four length values, one per side.
type Rect struct {
	Top    Val
	Right  Val
	Bottom Val
	Left   Val
}

// UniformRect returns a Rect with the same value on all four sides.
func UniformRect(v Val) Rect {
	return Rect{Top: v, Right: v, Bottom: v, Left: v}
}

// ZeroRect is the default for margin, padding and border.
func ZeroRect() Rect {
	return UniformRect(Px(0))
}

// ParseRect parses 1 to 4 whitespace-separated lengths with CSS shorthand
// defaulting: one value applies to all sides, two to (top/bottom,
// right/left), three to (top, right/left, bottom), four to each side in
// (top, right, bottom, left) order.
func ParseRect(s string) (Rect, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 4 {
		return Rect{}, invalidValue("rect", s)
	}
	vals := make([]Val, len(fields))
	for i, f := range fields {
		v, err := ParseVal(f)
		if err != nil {
			return Rect{}, invalidValue("rect", s)
		}
		vals[i] = v
	}
	var r Rect
	r.Top = vals[0]
	// Right defaults to top, bottom to top, left to right.
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
	return r, nil
}

// String renders the rect in (top, right, bottom, left) order.
func (r Rect) String() string {
	return fmt.Sprintf("%s %s %s %s", r.Top, r.Right, r.Bottom, r.Left)
}
