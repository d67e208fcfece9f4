package style

import "regexp"

// GridPlacement describes where an element sits on one grid axis. Zero
// fields mean automatic placement on that part of the axis.
type GridPlacement struct {
	Start int16
	End   int16
	Span  uint16
}

func (g *GridPlacement) SetStart(v int16) { g.Start = v }
func (g *GridPlacement) SetEnd(v int16)   { g.End = v }
func (g *GridPlacement) SetSpan(v uint16) { g.Span = v }

var (
	gridStartEndPattern = regexp.MustCompile(`^(-?\d+)\s*/\s*(-?\d+)$`)
	gridSpanPattern     = regexp.MustCompile(`^(-?\d+)\s*/\s*span\s+(\d+)$`)
)

// ParseGridPlacement parses the two literal placement forms:
// "<start>/<end>" and "<start>/span <count>".
func ParseGridPlacement(s string) (GridPlacement, error) {
	if m := gridStartEndPattern.FindStringSubmatch(s); m != nil {
		start, ok1 := parseI16(m[1])
		end, ok2 := parseI16(m[2])
		if ok1 && ok2 {
			return GridPlacement{Start: start, End: end}, nil
		}
		return GridPlacement{}, invalidValue("grid placement", s)
	}
	if m := gridSpanPattern.FindStringSubmatch(s); m != nil {
		start, ok1 := parseI16(m[1])
		span, ok2 := parseU16(m[2])
		if ok1 && ok2 {
			return GridPlacement{Start: start, Span: span}, nil
		}
		return GridPlacement{}, invalidValue("grid placement", s)
	}
	return GridPlacement{}, invalidValue("grid placement", s)
}
