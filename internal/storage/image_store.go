package storage

import (
	"context"
	"errors"
)

// StoredImage is the opaque reference pair a stored image resolves to. The
// rest of the system never looks inside either string.
type StoredImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type ImageStore interface {
	Store(ctx context.Context, data []byte, contentType string) (StoredImage, error)

	Remove(ctx context.Context, publicID string) error
}

var ErrUnsupportedImageType = errors.New("unsupported image content type")
