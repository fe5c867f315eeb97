package storage

import (
	"context"
	"io"
)

// BlobStore accepts a binary payload and returns a publicly retrievable URL.
// Uploads must complete before the owning entity is persisted.
type BlobStore interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}
