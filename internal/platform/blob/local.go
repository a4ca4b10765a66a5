// Package blob provides blob storage backends for uploaded media.
package blob

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gatluaknyang/guuk-api/internal/store"
)

// LocalStore implements store.BlobStore on the local filesystem. Files
// land under the configured root directory and are served by the HTTP
// layer from the public base URL.
type LocalStore struct {
	root    string
	baseURL string
	logger  *slog.Logger
}

// NewLocalStore creates a filesystem blob store rooted at root. The
// directory is created if it does not exist. baseURL is the public
// prefix joined with the object key to form the returned URL.
// If logger is nil, a default logger will be used.
func NewLocalStore(root, baseURL string, logger *slog.Logger) (*LocalStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory %q: %w", root, err)
	}

	return &LocalStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.With(slog.String("component", "blob_store")),
	}, nil
}

// Ensure LocalStore implements store.BlobStore
var _ store.BlobStore = (*LocalStore)(nil)

// Root returns the directory files are written to, for the HTTP layer
// to serve from.
func (s *LocalStore) Root() string {
	return s.root
}

// Put implements store.BlobStore.Put
// Keys may contain forward-slash separated segments; each segment must
// be a plain name so uploads cannot escape the media root.
func (s *LocalStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	if !validKey(key) {
		return "", fmt.Errorf("%w: invalid object key %q", store.ErrInvalidEntity, key)
	}

	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("%w: object %q", store.ErrDuplicate, key)
		}
		return "", fmt.Errorf("failed to create media file: %w", err)
	}

	written, err := io.Copy(f, r)
	if closeErr := f.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	s.logger.Info("media stored",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.Int64("bytes", written))

	return s.baseURL + "/" + key, nil
}

func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") || strings.HasSuffix(key, "/") {
		return false
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == "" || strings.HasPrefix(segment, ".") || strings.ContainsAny(segment, `\`) {
			return false
		}
	}
	return true
}
