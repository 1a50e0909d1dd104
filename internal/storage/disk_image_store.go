package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// DiskImageStore writes images under a local directory and serves them by
// URL. The public id is the generated filename.
type DiskImageStore struct {
	dir     string
	baseURL string
}

func NewDiskImageStore(dir, baseURL string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &DiskImageStore{dir: dir, baseURL: baseURL}, nil
}

func (s *DiskImageStore) Store(ctx context.Context, data []byte, contentType string) (StoredImage, error) {
	ext, ok := extByContentType[contentType]
	if !ok {
		return StoredImage{}, ErrUnsupportedImageType
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return StoredImage{}, fmt.Errorf("write image: %w", err)
	}

	return StoredImage{
		URL:      s.baseURL + "/static/images/" + name,
		PublicID: name,
	}, nil
}

func (s *DiskImageStore) Remove(ctx context.Context, publicID string) error {
	// Base strips any path components a tampered id might carry.
	err := os.Remove(filepath.Join(s.dir, filepath.Base(publicID)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Dir is where images are written, for wiring the static file route.
func (s *DiskImageStore) Dir() string {
	return s.dir
}
