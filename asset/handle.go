package asset

import (
	"context"

	"github.com/google/uuid"
)

// Handle is a shared reference to a loaded file. The server fetches file
// contents in the background; Bytes and ContentType block until the fetch
// settles.
type Handle struct {
	ID   uuid.UUID
	Path Path

	ready chan struct{}
	data  []byte
	mime  string
	err   error
}

func newHandle(p Path) *Handle {
	return &Handle{
		ID:    uuid.New(),
		Path:  p,
		ready: make(chan struct{}),
	}
}

func (h *Handle) settle(data []byte, mime string, err error) {
	h.data = data
	h.mime = mime
	h.err = err
	close(h.ready)
}

// Ready reports whether the fetch has settled without blocking.
func (h *Handle) Ready() bool {
	select {
	case <-h.ready:
		return true
	default:
		return false
	}
}

// Bytes returns the file contents, waiting for the background fetch.
func (h *Handle) Bytes(ctx context.Context) ([]byte, error) {
	select {
	case <-h.ready:
		return h.data, h.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ContentType returns the sniffed MIME type of the file contents.
func (h *Handle) ContentType(ctx context.Context) (string, error) {
	select {
	case <-h.ready:
		return h.mime, h.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Loader hands out handles for asset paths.
type Loader interface {
	Load(p Path) (*Handle, error)
}

// Store extends Loader with a registry of values published under labeled
// paths, such as the named styles and templates a document contributes.
type Store interface {
	Loader
	Publish(p Path, v any)
	Lookup(p Path) (any, bool)
}
