package template

import (
	"strings"

	"veneer/style"
	"veneer/utils/debug"
)

// Dump renders a human-readable outline of a tree for diagnostics.
func Dump(n Node) string {
	tw := debug.NewTreeWriter()
	dumpNode(tw, 0, n)
	return tw.String()
}

// DumpTemplate renders a template with its parameter declarations.
func DumpTemplate(name string, t *Template) string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "template %q", name)
	if len(t.Params) > 0 {
		pairs := make([][2]string, len(t.Params))
		for i, p := range t.Params {
			pairs[i] = [2]string{p.Name, p.Type}
		}
		tw.KeyValues(1, "params", pairs)
	}
	if t.Content != nil {
		dumpNode(tw, 1, t.Content)
	}
	return tw.String()
}

func dumpNode(tw *debug.TreeWriter, depth int, n Node) {
	switch t := n.(type) {
	case *Element:
		var extra strings.Builder
		if t.ID != "" {
			extra.WriteString(" id=" + t.ID)
		}
		if t.Controller != "" {
			extra.WriteString(" controller=" + t.Controller)
		}
		tw.Line(depth, "<%s>%s", t.Tag, extra.String())
		if len(t.StyleSet) > 0 {
			tw.Line(depth+1, "styleset: %s", strings.Join(t.StyleSet, " "))
		}
		dumpStyle(tw, depth+1, t.InlineStyle)
		if len(t.Attrs) > 0 {
			pairs := make([][2]string, len(t.Attrs))
			for i, a := range t.Attrs {
				pairs[i] = [2]string{a.Key, a.Value}
			}
			tw.KeyValues(depth+1, "attrs", pairs)
		}
		for _, child := range t.Children {
			dumpNode(tw, depth+1, child)
		}
	case *Fragment:
		tw.Line(depth, "<fragment>")
		for _, child := range t.Children {
			dumpNode(tw, depth+1, child)
		}
	case *Text:
		tw.TextBlock(depth, "text", t.Text)
	case *Call:
		tw.Line(depth, "<call %s>", t.Template)
		dumpStyle(tw, depth+1, t.InlineStyle)
		if len(t.Params) > 0 {
			pairs := make([][2]string, len(t.Params))
			for i, p := range t.Params {
				pairs[i] = [2]string{p.Key, p.Value}
			}
			tw.KeyValues(depth+1, "params", pairs)
		}
	}
}

func dumpStyle(tw *debug.TreeWriter, depth int, s *style.ElementStyle) {
	if s.Len() == 0 {
		return
	}
	pairs := make([][2]string, 0, s.Len())
	for _, a := range s.Attrs() {
		pairs = append(pairs, [2]string{a.Prop.String(), a.Value.String()})
	}
	tw.KeyValues(depth, "style", pairs)
}
