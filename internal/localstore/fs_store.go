package localstore

import (
	"os"
	"path/filepath"
)

// FSStore persists each key as a flat file under a base directory.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// Get reads the value for key; ok is false when the key is absent or unreadable.
func (s *FSStore) Get(key string) (string, bool) {
	if s == nil || key == "" {
		return "", false
	}
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set writes the value atomically via a temp file rename.
func (s *FSStore) Set(key, value string) error {
	if s == nil {
		return os.ErrInvalid
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return err
	}
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Remove deletes the key; removing an absent key is not an error.
func (s *FSStore) Remove(key string) {
	if s == nil || key == "" {
		return
	}
	_ = os.Remove(s.path(key))
}

func (s *FSStore) path(key string) string {
	return filepath.Join(s.basePath, key+".v")
}
