package template

import (
	"veneer/asset"
	"veneer/style"
)

// Node is one vertex of a template tree.
type Node interface {
	node()
}

// Attr is a non-style markup attribute carried through to the controller.
type Attr struct {
	Key   string
	Value string
}

// Element is a rendered node: a tag with styles, an optional identity and
// controller binding, and child nodes.
type Element struct {
	Tag        string
	ID         string
	Controller string

	// StyleSet lists referenced style definitions in application order;
	// StyleSetRefs holds the matching references once resolved.
	StyleSet     []string
	StyleSetRefs []*asset.Ref

	InlineStyle *style.ElementStyle

	Attrs    []Attr
	Children []Node
}

// Fragment groups sibling nodes without introducing an element.
type Fragment struct {
	Children []Node
}

// Text is a literal text leaf. Text nodes are immutable and shared across
// resolved copies of a tree.
type Text struct {
	Text string
}

// Param is one argument of a template call.
type Param struct {
	Key   string
	Value string
}

// Call instantiates another template in place.
type Call struct {
	Template    string
	TemplateRef *asset.Ref
	InlineStyle *style.ElementStyle
	Params      []Param
}

func (*Element) node()  {}
func (*Fragment) node() {}
func (*Text) node()     {}
func (*Call) node()     {}

// ParamDecl declares a parameter a template accepts.
type ParamDecl struct {
	Name string
	Type string
}

// Template is a named, instantiable tree with its declared parameters.
type Template struct {
	Params  []ParamDecl
	Content Node
}
