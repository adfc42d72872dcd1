package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"levelup-cart/internal/pkg/errs"
)

// FileStore persists each partition as one file under dir, so carts survive
// process restarts. Writes go through a temp file and rename to keep a
// partition readable while it is being rewritten.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "create storage directory")
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", errs.Wrap(err, "read storage partition")
	}
	return string(data), nil
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return errs.Wrap(err, "write storage partition")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errs.Wrap(err, "replace storage partition")
	}
	return nil
}

func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errs.Wrap(err, "remove storage partition")
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, sanitize(key)+".json")
}

// sanitize keeps partition file names flat even if a key ever carries a
// separator.
func sanitize(key string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':':
			return '_'
		default:
			return r
		}
	}, key)
}
