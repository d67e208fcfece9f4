package asset

// Ref is a reference to an asset as written in a document: a path relative
// to the document that owns it. Resolution anchors the path and requests a
// handle; it happens at most once, so resolved references can be shared
// freely.
type Ref struct {
	Source string

	path   Path
	handle *Handle
	done   bool
}

// NewRef creates an unresolved reference.
func NewRef(source string) *Ref {
	return &Ref{Source: source}
}

// Resolved reports whether the reference has been anchored.
func (r *Ref) Resolved() bool { return r.done }

// Path returns the anchored path. Valid only after resolution.
func (r *Ref) Path() Path { return r.path }

// Handle returns the loaded handle, or nil before resolution.
func (r *Ref) Handle() *Handle { return r.handle }

// Resolve anchors the source path against the loading document and requests
// the asset. Calling Resolve on an already resolved reference is a no-op.
func (r *Ref) Resolve(lc *LoadContext) error {
	if r.done {
		return nil
	}
	r.path = lc.Path().Resolve(r.Source)
	h, err := lc.LoadPath(r.path)
	if err != nil {
		return err
	}
	r.handle = h
	r.done = true
	return nil
}
