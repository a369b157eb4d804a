package facades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sbilibin2017/gw-image-gallery/internal/logger"
)

// ErrInvalidObjectKey is returned for keys that would escape the storage root.
var ErrInvalidObjectKey = errors.New("invalid object key")

// FileObjectStorage stores image objects on a local or mounted volume and
// serves them under a public base URL.
type FileObjectStorage struct {
	root    string
	baseURL string
}

// NewFileObjectStorage creates the root directory if needed.
func NewFileObjectStorage(root, baseURL string) (*FileObjectStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FileObjectStorage{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *FileObjectStorage) path(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if key == "" || clean == "/" || clean != "/"+key {
		return "", ErrInvalidObjectKey
	}
	return filepath.Join(s.root, clean), nil
}

// Put writes the object and returns its public URL. The object is written to
// a temporary file first so readers never observe a partial object.
func (s *FileObjectStorage) Put(ctx context.Context, key string, body io.Reader) (string, error) {
	dst, err := s.path(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = ctx.Err()
	}
	if err == nil {
		err = os.Rename(tmp.Name(), dst)
	}

	logger.Log.Infow("object put", "key", key, "bytes", n, "error", err)

	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}

// Delete removes the object. Deleting a missing object is not an error.
func (s *FileObjectStorage) Delete(ctx context.Context, key string) error {
	dst, err := s.path(key)
	if err != nil {
		return err
	}
	err = os.Remove(dst)
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
	}

	logger.Log.Infow("object delete", "key", key, "error", err)

	return err
}
