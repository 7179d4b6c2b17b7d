package blob

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store hands out opaque references for uploaded blobs. Writes are
// best-effort with respect to record commits: an orphaned blob after a
// crash is acceptable, a dangling reference is not.
type Store interface {
	Save(data []byte, ext string) (string, error)
	Delete(ref string) error
}

type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "blob dir")
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Save(data []byte, ext string) (string, error) {
	ref := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, ref), data, 0o644); err != nil {
		return "", errors.Wrap(err, "blob write")
	}
	return ref, nil
}

func (s *FileStore) Delete(ref string) error {
	// ref is server-generated, never a client path
	if filepath.Base(ref) != ref {
		return errors.New("invalid blob ref")
	}
	err := os.Remove(filepath.Join(s.dir, ref))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "blob delete")
	}
	return nil
}
