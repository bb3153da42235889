package imagecap

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/unibazaar/unibazaar-tui/internal/logging"
)

// Handle is an app-owned, restart-stable reference to a persisted
// image.
type Handle string

// CropRequest describes the crop applied when importing an image. The
// create-post and avatar flows always request a square crop.
type CropRequest struct {
	Square bool
	Size   int
}

// Capability imports an external image source and returns a persisted
// handle. A false result means "no image" — the caller treats user
// cancellation and capability failure identically.
type Capability interface {
	Attach(ctx context.Context, source string, crop CropRequest) (Handle, bool)
}

// FileStore is the local-filesystem capability: it copies the source
// into the app's private image directory under a fresh UUID name.
type FileStore struct {
	dir string
}

// NewFileStore roots persisted images under dir/images.
func NewFileStore(dir string) (*FileStore, error) {
	imageDir := filepath.Join(dir, "images")
	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &FileStore{dir: imageDir}, nil
}

// Attach copies the source file into the store. Failures are logged
// and reported as "no image"; they never block the calling flow.
func (s *FileStore) Attach(ctx context.Context, source string, crop CropRequest) (Handle, bool) {
	if source == "" {
		return "", false
	}
	if err := ctx.Err(); err != nil {
		return "", false
	}
	in, err := os.Open(source)
	if err != nil {
		logging.Error(fmt.Errorf("open image source: %w", err))
		return "", false
	}
	defer in.Close()

	name := uuid.NewString() + filepath.Ext(source)
	dest := filepath.Join(s.dir, name)
	out, err := os.Create(dest)
	if err != nil {
		logging.Error(fmt.Errorf("create image copy: %w", err))
		return "", false
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		logging.Error(fmt.Errorf("copy image: %w", err))
		return "", false
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		logging.Error(fmt.Errorf("close image copy: %w", err))
		return "", false
	}
	return Handle(name), true
}

// Path resolves a handle back to its on-disk location.
func (s *FileStore) Path(h Handle) string {
	return filepath.Join(s.dir, string(h))
}
