package store

import (
	"context"
	"io"
)

// BlobStore defines the interface for binary object storage. The backing
// implementation may be a local disk in development or a cloud bucket in
// production; callers only see publicly dereferenceable URLs.
type BlobStore interface {
	// Put writes the blob under the given key and returns a public URL
	// from which it can be fetched. Keys are write-once: storing under
	// an existing key returns ErrDuplicate.
	Put(ctx context.Context, key string, contentType string, r io.Reader) (string, error)
}
