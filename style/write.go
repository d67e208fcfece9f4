package style

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/multierr"
)

// ErrUnsupportedAttr marks an attribute whose value has no markup
// rendition, such as a nested style expression. Serialization reports these
// and keeps going.
var ErrUnsupportedAttr = errors.New("attribute not representable in markup")

// WriteXML renders every attribute of the set onto el in insertion order.
// Unsupported attributes are skipped and reported together; the returned
// error unwraps to ErrUnsupportedAttr for each of them.
func (s *ElementStyle) WriteXML(el *etree.Element) error {
	if s == nil {
		return nil
	}
	var err error
	for _, a := range s.attrs {
		v, aerr := renderAttrValue(a)
		if aerr != nil {
			err = multierr.Append(err, aerr)
			continue
		}
		el.CreateAttr(a.Prop.String(), v)
	}
	return err
}

func renderAttrValue(a StyleAttr) (string, error) {
	switch a.Prop {
	case PropBackgroundImage:
		if a.Image != nil {
			return a.Image.Source, nil
		}
		if k := a.Value.Kind(); k == KindAssetPath || k == KindString {
			return a.Value.Text(), nil
		}

	case PropBackgroundColor, PropBorderColor, PropColor:
		if c, ok := a.Value.AsColor(); ok {
			return c.String(), nil
		}

	case PropZIndex:
		if v, ok := a.Value.AsInt(); ok {
			return strconv.FormatInt(int64(v), 10), nil
		}

	case PropFlexGrow, PropFlexShrink:
		if v, ok := a.Value.AsFloat(); ok {
			return formatNum(v), nil
		}

	case PropFlex:
		if v, ok := a.Value.AsFloat(); ok {
			return formatNum(v), nil
		}
		if items := a.Value.Items(); len(items) == 3 {
			grow, ok1 := items[0].AsFloat()
			shrink, ok2 := items[1].AsFloat()
			basis, ok3 := items[2].AsLength()
			if ok1 && ok2 && ok3 {
				return fmt.Sprintf("%s %s %s", formatNum(grow), formatNum(shrink), basis), nil
			}
		}

	case PropLeft, PropRight, PropTop, PropBottom,
		PropWidth, PropHeight, PropMinWidth, PropMinHeight,
		PropMaxWidth, PropMaxHeight,
		PropMarginLeft, PropMarginRight, PropMarginTop, PropMarginBottom,
		PropPaddingLeft, PropPaddingRight, PropPaddingTop, PropPaddingBottom,
		PropBorderLeft, PropBorderRight, PropBorderTop, PropBorderBottom,
		PropFlexBasis, PropRowGap, PropColumnGap:
		if v, ok := a.Value.AsLength(); ok {
			return v.String(), nil
		}

	case PropMargin, PropPadding, PropBorder:
		if r, ok := a.Value.AsRect(); ok {
			return r.String(), nil
		}

	case PropGap:
		if v, ok := a.Value.AsLength(); ok {
			return v.String(), nil
		}
		if items := a.Value.Items(); len(items) == 2 {
			row, ok1 := items[0].AsLength()
			col, ok2 := items[1].AsLength()
			if ok1 && ok2 {
				return fmt.Sprintf("%s %s", row, col), nil
			}
		}

	case PropGridRow, PropGridColumn:
		if k := a.Value.Kind(); k == KindString || k == KindIdent {
			return a.Value.Text(), nil
		}
		if g, ok := a.Value.AsGridPlacement(); ok {
			if g.Span != 0 {
				return fmt.Sprintf("%d/span %d", g.Start, g.Span), nil
			}
			return fmt.Sprintf("%d/%d", g.Start, g.End), nil
		}

	case PropGridRowStart, PropGridRowSpan, PropGridRowEnd,
		PropGridColumnStart, PropGridColumnSpan, PropGridColumnEnd:
		if v, ok := a.Value.AsInt(); ok {
			return strconv.FormatInt(int64(v), 10), nil
		}

	default:
		// Every enum property serializes as its identifier.
		if a.Value.Kind() == KindIdent {
			return a.Value.Ident(), nil
		}
	}
	return "", fmt.Errorf("%w: %s = %s", ErrUnsupportedAttr, a.Prop, a.Value)
}
