package document

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"veneer/asset"
	"veneer/style"
	"veneer/template"
)

// Ext is the container file extension.
const Ext = ".veneer.json"

// StyleLabelPrefix and TemplateLabelPrefix namespace the labels a container
// publishes its definitions under.
const (
	StyleLabelPrefix    = "styles/"
	TemplateLabelPrefix = "templates/"
)

// NamedStyle is one published style definition.
type NamedStyle struct {
	Name  string
	Style *style.ElementStyle
}

// NamedTemplate is one published template definition.
type NamedTemplate struct {
	Name     string
	Template *template.Template
}

// Document is a loaded container with its definitions in document order.
type Document struct {
	Path      asset.Path
	Styles    []NamedStyle
	Templates []NamedTemplate
}

// Style returns a style definition by name.
func (d *Document) Style(name string) (*style.ElementStyle, bool) {
	for _, s := range d.Styles {
		if s.Name == name {
			return s.Style, true
		}
	}
	return nil, false
}

// Template returns a template definition by name.
func (d *Document) Template(name string) (*template.Template, bool) {
	for _, t := range d.Templates {
		if t.Name == name {
			return t.Template, true
		}
	}
	return nil, false
}

// Loader loads containers from an asset store and publishes their
// definitions back into it.
type Loader struct {
	log   *zap.Logger
	store asset.Store
}

// NewLoader creates a loader over store. A nil logger disables logging.
func NewLoader(store asset.Store, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log.Named("documents"), store: store}
}

// Load reads and decodes the container at name, resolves every reference it
// holds against the container's own path and publishes each definition
// under "styles/<name>" or "templates/<name>". A container that does not
// decode is a hard error.
func (l *Loader) Load(ctx context.Context, name string) (*Document, error) {
	if !strings.HasSuffix(name, Ext) {
		return nil, fmt.Errorf("document %q: expected a %q container", name, Ext)
	}
	p := asset.ParsePath(name)

	h, err := l.store.Load(p)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", name, err)
	}
	data, err := h.Bytes(ctx)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", name, err)
	}

	lc := asset.NewLoadContext(l.store, p)
	dec, err := decode(data, lc)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", name, err)
	}

	doc := &Document{Path: p}
	for _, s := range dec.styles {
		lc.Publish(StyleLabelPrefix+s.name, s.style)
		doc.Styles = append(doc.Styles, NamedStyle{Name: s.name, Style: s.style})
	}
	for _, t := range dec.templates {
		resolved, err := template.ResolveTemplate(t.tmpl, lc)
		if err != nil {
			return nil, fmt.Errorf("document %q, template %q: %w", name, t.name, err)
		}
		lc.Publish(TemplateLabelPrefix+t.name, resolved)
		doc.Templates = append(doc.Templates, NamedTemplate{Name: t.name, Template: resolved})
	}

	l.log.Info("Loaded document",
		zap.String("path", name),
		zap.Int("styles", len(doc.Styles)),
		zap.Int("templates", len(doc.Templates)))
	return doc, nil
}

// StyleAt looks up a style published under path in the store.
func StyleAt(store asset.Store, path asset.Path) (*style.ElementStyle, bool) {
	v, ok := store.Lookup(path)
	if !ok {
		return nil, false
	}
	s, ok := v.(*style.ElementStyle)
	return s, ok
}

// TemplateAt looks up a template published under path in the store.
func TemplateAt(store asset.Store, path asset.Path) (*template.Template, bool) {
	v, ok := store.Lookup(path)
	if !ok {
		return nil, false
	}
	t, ok := v.(*template.Template)
	return t, ok
}
