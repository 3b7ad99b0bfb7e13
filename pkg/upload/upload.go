package upload

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store persists user-submitted documents (photos, ID scans) on local
// disk and hands back an opaque reference string. Callers never inspect
// the contents or the path layout.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Save writes a document and returns its reference.
func (s *Store) Save(data []byte, ext string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty document")
	}
	ref := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, ref), data, 0o644); err != nil {
		return "", err
	}
	return ref, nil
}
