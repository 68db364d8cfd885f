package imagestore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Disk stores images as files under a single directory. Filenames are
// random UUIDs, never derived from wall-clock time, so concurrent saves
// cannot collide.
type Disk struct {
	dir string
}

func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &IOError{Op: "mkdir", Path: dir, Err: err}
	}
	return &Disk{dir: dir}, nil
}

func (d *Disk) Save(ctx context.Context, data []byte, ext string) (string, error) {
	name := uuid.NewString() + "." + ext
	full := filepath.Join(d.dir, name)

	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", &IOError{Op: "write", Path: full, Err: err}
	}

	return filepath.ToSlash(filepath.Join(filepath.Base(d.dir), name)), nil
}

func (d *Disk) Remove(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	full := filepath.Join(filepath.Dir(d.dir), filepath.FromSlash(path))

	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &IOError{Op: "remove", Path: full, Err: err}
	}
	return nil
}

func (d *Disk) URL(path string) string {
	return "/" + path
}

// Dir exposes the backing directory for static file serving.
func (d *Disk) Dir() string { return d.dir }

var _ Store = (*Disk)(nil)
