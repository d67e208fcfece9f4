package asset

// LoadContext anchors relative references encountered while loading one
// document. It carries the document's own path and the store the document
// was loaded from.
type LoadContext struct {
	path  Path
	store Store
}

// NewLoadContext creates a context for the document at p.
func NewLoadContext(store Store, p Path) *LoadContext {
	return &LoadContext{path: p, store: store}
}

// Path returns the path of the document being loaded.
func (c *LoadContext) Path() Path { return c.path }

// Load anchors rel against the document path and requests the asset.
func (c *LoadContext) Load(rel string) (*Handle, error) {
	return c.store.Load(c.path.Resolve(rel))
}

// LoadPath requests an already anchored path.
func (c *LoadContext) LoadPath(p Path) (*Handle, error) {
	return c.store.Load(p)
}

// Publish registers a value under a label of the document being loaded.
func (c *LoadContext) Publish(label string, v any) {
	c.store.Publish(c.path.WithLabel(label), v)
}
