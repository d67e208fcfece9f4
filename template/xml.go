package template

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"veneer/style"
)

// Reserved markup attribute names on elements; everything else is either a
// style property or a pass-through attribute.
const (
	attrID         = "id"
	attrController = "controller"
	attrStyleSet   = "styleset"
	attrTemplate   = "template"
)

// ParseXML parses a template tree from markup. The root element becomes the
// root node; "fragment" and "call" are structural tags, any other tag is an
// element.
func ParseXML(data []byte, log *zap.Logger) (Node, error) {
	if log == nil {
		log = zap.NewNop()
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("reading template markup: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("template markup has no root element")
	}
	return parseNode(root, log)
}

func parseNode(el *etree.Element, log *zap.Logger) (Node, error) {
	switch el.Tag {
	case "fragment":
		children, err := parseChildren(el, log)
		if err != nil {
			return nil, err
		}
		return &Fragment{Children: children}, nil
	case "call":
		return parseCall(el)
	default:
		return parseElement(el, log)
	}
}

func parseElement(el *etree.Element, log *zap.Logger) (*Element, error) {
	e := &Element{Tag: el.Tag}
	inline := style.NewElementStyle()
	for _, a := range el.Attr {
		switch a.Key {
		case attrID:
			e.ID = a.Value
		case attrController:
			e.Controller = a.Value
		case attrStyleSet:
			e.StyleSet = strings.Fields(a.Value)
		default:
			sa, err := style.ParseAttr(a.Key, a.Value)
			if err != nil {
				return nil, fmt.Errorf("element %q, attribute %q: %w", el.Tag, a.Key, err)
			}
			if sa != nil {
				inline.Set(*sa)
				continue
			}
			log.Debug("Pass-through attribute",
				zap.String("element", el.Tag), zap.String("attr", a.Key))
			e.Attrs = append(e.Attrs, Attr{Key: a.Key, Value: a.Value})
		}
	}
	if inline.Len() > 0 {
		e.InlineStyle = inline
	}
	children, err := parseChildren(el, log)
	if err != nil {
		return nil, err
	}
	e.Children = children
	return e, nil
}

func parseChildren(el *etree.Element, log *zap.Logger) ([]Node, error) {
	var children []Node
	for _, tok := range el.Child {
		switch c := tok.(type) {
		case *etree.Element:
			n, err := parseNode(c, log)
			if err != nil {
				return nil, err
			}
			children = append(children, n)
		case *etree.CharData:
			if text := strings.TrimSpace(c.Data); text != "" {
				children = append(children, &Text{Text: text})
			}
		}
	}
	return children, nil
}

// parseCall reads a template invocation. The "template" attribute is
// required; style properties become the call's inline style and every other
// attribute becomes a parameter. A parameter therefore cannot share a name
// with a style property.
func parseCall(el *etree.Element) (*Call, error) {
	c := &Call{}
	inline := style.NewElementStyle()
	for _, a := range el.Attr {
		if a.Key == attrTemplate {
			c.Template = a.Value
			continue
		}
		sa, err := style.ParseAttr(a.Key, a.Value)
		if err != nil {
			return nil, fmt.Errorf("call, attribute %q: %w", a.Key, err)
		}
		if sa != nil {
			inline.Set(*sa)
			continue
		}
		c.Params = append(c.Params, Param{Key: a.Key, Value: a.Value})
	}
	if c.Template == "" {
		return nil, fmt.Errorf("call without a template reference")
	}
	if inline.Len() > 0 {
		c.InlineStyle = inline
	}
	return c, nil
}

// WriteXML renders a tree back to markup. Style attributes with no markup
// rendition are skipped and reported together; the document is complete
// apart from them.
func WriteXML(n Node) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.Indent(2)
	err := writeNode(&doc.Element, n)
	return doc, err
}

func writeNode(parent *etree.Element, n Node) error {
	var err error
	switch t := n.(type) {
	case *Element:
		el := parent.CreateElement(t.Tag)
		if t.ID != "" {
			el.CreateAttr(attrID, t.ID)
		}
		if t.Controller != "" {
			el.CreateAttr(attrController, t.Controller)
		}
		if len(t.StyleSet) > 0 {
			el.CreateAttr(attrStyleSet, strings.Join(t.StyleSet, " "))
		}
		err = multierr.Append(err, t.InlineStyle.WriteXML(el))
		for _, a := range t.Attrs {
			el.CreateAttr(a.Key, a.Value)
		}
		for _, child := range t.Children {
			err = multierr.Append(err, writeNode(el, child))
		}
	case *Fragment:
		el := parent.CreateElement("fragment")
		for _, child := range t.Children {
			err = multierr.Append(err, writeNode(el, child))
		}
	case *Text:
		parent.CreateText(t.Text)
	case *Call:
		el := parent.CreateElement("call")
		el.CreateAttr(attrTemplate, t.Template)
		err = multierr.Append(err, t.InlineStyle.WriteXML(el))
		for _, p := range t.Params {
			el.CreateAttr(p.Key, p.Value)
		}
	}
	return err
}
