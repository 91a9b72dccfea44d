package service

import (
	"context"
	"io"
)

// StoredObject is an opened object from image storage.
type StoredObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ImageStorage persists uploaded donation images.
type ImageStorage interface {
	// Save stores the content under a fresh key and returns that key.
	Save(ctx context.Context, ext, contentType string, content io.Reader) (string, error)

	// Open returns the stored object, or domainerrors.ErrObjectNotFound.
	Open(ctx context.Context, key string) (*StoredObject, error)

	// Delete removes an object; a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// PublicURL returns the path clients use to fetch the object.
	PublicURL(key string) string
}
