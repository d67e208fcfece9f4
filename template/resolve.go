package template

import (
	"fmt"

	"veneer/asset"
)

// Resolve anchors every asset reference in a tree against the loading
// document and returns the resolved tree. The input is never modified:
// elements and calls are copied so an unresolved tree stays reusable, while
// text leaves are shared between the two trees.
func Resolve(n Node, lc *asset.LoadContext) (Node, error) {
	switch t := n.(type) {
	case *Element:
		out := &Element{
			Tag:        t.Tag,
			ID:         t.ID,
			Controller: t.Controller,
			StyleSet:   t.StyleSet,
			Attrs:      t.Attrs,
		}
		for _, path := range t.StyleSet {
			ref := asset.NewRef(path)
			if err := ref.Resolve(lc); err != nil {
				return nil, fmt.Errorf("element %q, style %q: %w", t.Tag, path, err)
			}
			out.StyleSetRefs = append(out.StyleSetRefs, ref)
		}
		if t.InlineStyle != nil {
			out.InlineStyle = t.InlineStyle.Clone()
			if err := out.InlineStyle.ResolveAssetPaths(lc); err != nil {
				return nil, fmt.Errorf("element %q: %w", t.Tag, err)
			}
		}
		if len(t.Children) > 0 {
			out.Children = make([]Node, len(t.Children))
			for i, child := range t.Children {
				r, err := Resolve(child, lc)
				if err != nil {
					return nil, err
				}
				out.Children[i] = r
			}
		}
		return out, nil

	case *Fragment:
		out := &Fragment{}
		if len(t.Children) > 0 {
			out.Children = make([]Node, len(t.Children))
			for i, child := range t.Children {
				r, err := Resolve(child, lc)
				if err != nil {
					return nil, err
				}
				out.Children[i] = r
			}
		}
		return out, nil

	case *Text:
		return t, nil

	case *Call:
		out := &Call{
			Template: t.Template,
			Params:   t.Params,
		}
		out.TemplateRef = asset.NewRef(t.Template)
		if err := out.TemplateRef.Resolve(lc); err != nil {
			return nil, fmt.Errorf("call %q: %w", t.Template, err)
		}
		if t.InlineStyle != nil {
			out.InlineStyle = t.InlineStyle.Clone()
			if err := out.InlineStyle.ResolveAssetPaths(lc); err != nil {
				return nil, fmt.Errorf("call %q: %w", t.Template, err)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown template node %T", n)
}

// ResolveTemplate resolves a template's content tree in place of the
// unresolved one, keeping parameter declarations as they are.
func ResolveTemplate(t *Template, lc *asset.LoadContext) (*Template, error) {
	out := &Template{Params: t.Params}
	if t.Content != nil {
		content, err := Resolve(t.Content, lc)
		if err != nil {
			return nil, err
		}
		out.Content = content
	}
	return out, nil
}
