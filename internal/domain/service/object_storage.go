package service

import (
	"context"
	"io"
)

// ObjectStorage stores uploaded branding assets.
type ObjectStorage interface {
	// Put writes the object and returns its public URL.
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
