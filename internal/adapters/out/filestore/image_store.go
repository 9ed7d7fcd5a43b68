// Package filestore keeps uploaded prescription images on local disk.
package filestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"

	"github.com/google/uuid"
)

const dependency = "filestore"

// ImageStore writes each upload under a random UUID name so client file
// names never reach the disk.
type ImageStore struct {
	dir      string
	maxBytes int64
}

var _ ports.ImageStore = (*ImageStore)(nil)

// NewImageStore creates dir when missing. Uploads larger than maxBytes are
// rejected.
func NewImageStore(dir string, maxBytes int64) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errs.NewDependencyFailureError(dependency, err)
	}
	return &ImageStore{dir: dir, maxBytes: maxBytes}, nil
}

// Save returns the stored file name, e.g. "3f0c...e1.png".
func (s *ImageStore) Save(ctx context.Context, ext string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" || strings.ContainsAny(ext, `/\.`) {
		return "", errs.NewValueIsInvalidErrorWithCause("file extension", fmt.Errorf("%q is not allowed", ext))
	}

	name := uuid.NewString() + "." + ext
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", errs.NewDependencyFailureError(dependency, err)
	}

	n, err := io.Copy(f, io.LimitReader(content, s.maxBytes+1))
	closeErr := f.Close()
	switch {
	case err != nil:
		_ = os.Remove(path)
		return "", errs.NewDependencyFailureError(dependency, err)
	case n > s.maxBytes:
		_ = os.Remove(path)
		return "", errs.NewValueIsOutOfRangeError("file size", n, 1, s.maxBytes)
	case closeErr != nil:
		_ = os.Remove(path)
		return "", errs.NewDependencyFailureError(dependency, closeErr)
	}

	return name, nil
}
