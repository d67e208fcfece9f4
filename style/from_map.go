package style

import (
	"fmt"

	"veneer/asset"
)

// Member is one key/value pair of a structured style definition. Members
// keep document order so that repeated application stays deterministic.
type Member struct {
	Key   string
	Value Expr
}

// StyleFromMembers builds an attribute set from the members of a structured
// style definition. The key schema is closed: a key that is not a style
// property is an error. Values are stored as-is and narrowed only when the
// style is applied, so a value that cannot serve its property skips at
// cascade time instead of failing the whole document. Background images are
// the exception: they are anchored and requested immediately when lc is
// given.
func StyleFromMembers(members []Member, lc *asset.LoadContext) (*ElementStyle, error) {
	s := NewElementStyle()
	for _, m := range members {
		prop, ok := PropForKey(m.Key)
		if !ok {
			return nil, fmt.Errorf("unknown style key %q", m.Key)
		}
		attr := StyleAttr{Prop: prop, Value: m.Value}
		if prop == PropBackgroundImage {
			img, err := memberImage(m.Value, lc)
			if err != nil {
				return nil, fmt.Errorf("style key %q: %w", m.Key, err)
			}
			attr.Image = img
		}
		s.Set(attr)
	}
	return s, nil
}

func memberImage(e Expr, lc *asset.LoadContext) (*asset.Ref, error) {
	switch e.Kind() {
	case KindNull:
		return nil, nil
	case KindIdent:
		if e.Ident() == "none" {
			return nil, nil
		}
	case KindString, KindAssetPath:
		ref := asset.NewRef(e.Text())
		if lc != nil {
			if err := ref.Resolve(lc); err != nil {
				return nil, err
			}
		}
		return ref, nil
	}
	return nil, fmt.Errorf("cannot use %s as an image source", e)
}
