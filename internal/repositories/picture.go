package repositories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-private-chat/internal/logger"
)

// UploadsURLPrefix is the public path under which uploaded pictures are served.
const UploadsURLPrefix = "/uploads/"

// PictureFileRepository stores uploaded profile pictures in a directory that
// is served statically under UploadsURLPrefix.
type PictureFileRepository struct {
	dir string
}

// NewPictureFileRepository creates dir if needed.
func NewPictureFileRepository(dir string) (*PictureFileRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &PictureFileRepository{dir: dir}, nil
}

// Save writes content under a random name ending in ext, as given, and
// returns the public reference of the new file.
func (r *PictureFileRepository) Save(ctx context.Context, ext string, content io.Reader) (string, error) {
	name := uuid.NewString() + ext
	full := filepath.Join(r.dir, name)

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", full, err)
	}

	n, err := io.Copy(f, content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(full)
		return "", fmt.Errorf("write %s: %w", full, err)
	}

	logger.Log.Infow("picture saved", "file", full, "size", n)

	return UploadsURLPrefix + name, nil
}

// Remove deletes the file behind a public reference. A missing file or a
// reference outside the uploads directory is ignored.
func (r *PictureFileRepository) Remove(ctx context.Context, ref string) error {
	if !strings.HasPrefix(ref, UploadsURLPrefix) {
		logger.Log.Warnw("ignoring picture reference outside uploads", "ref", ref)
		return nil
	}

	name := path.Base(ref)
	if name == "." || name == "/" || name == ".." {
		return nil
	}

	full := filepath.Join(r.dir, name)
	err := os.Remove(full)
	if errors.Is(err, os.ErrNotExist) {
		err = nil
	}

	logger.Log.Infow("picture removed", "file", full, "error", err)

	return err
}
