package asset

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/h2non/filetype"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Server serves assets from a filesystem root. Each file is fetched once in
// the background regardless of how many handles point at it; labeled values
// published by document loaders live in the same namespace.
type Server struct {
	log  *zap.Logger
	fsys fs.FS

	mu        sync.Mutex
	handles   map[string]*Handle
	published map[string]any
	closed    bool
	wg        sync.WaitGroup
}

// NewServer creates a server over fsys. A nil logger disables logging.
func NewServer(fsys fs.FS, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		log:       log.Named("assets"),
		fsys:      fsys,
		handles:   make(map[string]*Handle),
		published: make(map[string]any),
	}
}

// Load returns a handle for the file at p, starting a background fetch on
// first request. Handles for the same file are shared.
func (s *Server) Load(p Path) (*Handle, error) {
	key := p.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, fmt.Errorf("asset server is closed")
	}
	if h, ok := s.handles[key]; ok {
		return h, nil
	}

	h := newHandle(p)
	s.handles[key] = h

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.fetch(h)
	}()
	return h, nil
}

func (s *Server) fetch(h *Handle) {
	data, err := fs.ReadFile(s.fsys, h.Path.Name)
	if err != nil {
		s.log.Warn("Unable to read asset", zap.String("path", h.Path.String()), zap.Error(err))
		h.settle(nil, "", fmt.Errorf("reading asset %q: %w", h.Path.String(), err))
		return
	}

	mime := "application/octet-stream"
	if t, err := filetype.Match(data); err == nil && t != filetype.Unknown {
		mime = t.MIME.Value
	}

	s.log.Debug("Loaded asset",
		zap.String("path", h.Path.String()),
		zap.String("type", mime),
		zap.Int("size", len(data)))
	h.settle(data, mime, nil)
}

// Publish registers a value under a labeled path, replacing any previous
// value at that path.
func (s *Server) Publish(p Path, v any) {
	s.mu.Lock()
	s.published[p.String()] = v
	s.mu.Unlock()
	s.log.Debug("Published asset", zap.String("path", p.String()))
}

// Lookup returns a previously published value.
func (s *Server) Lookup(p Path) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.published[p.String()]
	return v, ok
}

// Close waits for in-flight fetches and reports every fetch failure.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	s.wg.Wait()

	var err error
	s.mu.Lock()
	for _, h := range s.handles {
		if h.err != nil {
			err = multierr.Append(err, h.err)
		}
	}
	s.mu.Unlock()
	return err
}
