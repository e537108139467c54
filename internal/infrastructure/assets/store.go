// Package assets implements the local-disk asset store behind the branding
// logo: store a binary blob, get back a retrievable URL.
package assets

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/ppgarage/backoffice/pkg/errors"
)

// MaxUploadBytes caps logo uploads at 5 MiB.
const MaxUploadBytes = 5 << 20

// URLPrefix is where stored files are served from (gin Static mount).
const URLPrefix = "/uploads"

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// Store writes uploads under a single directory and addresses them by URL.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory files are written to, for static serving.
func (s *Store) Dir() string {
	return s.dir
}

// Save validates and writes content, returning its serving URL. The original
// filename only contributes its extension; the stored name is a generated
// UUID so concurrent uploads never collide.
func (s *Store) Save(content []byte, originalFilename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if !imageExtensions[ext] {
		return "", apperrors.NewValidationError("logo", fmt.Sprintf("file type '%s' is not an image", ext))
	}
	if len(content) > MaxUploadBytes {
		return "", apperrors.NewValidationError("logo", "file exceeds the 5 MB limit")
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", apperrors.NewInternalError("failed to create upload directory", err)
	}

	filename := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, filename), content, 0644); err != nil {
		return "", apperrors.NewInternalError("failed to save file", err)
	}

	return path.Join(URLPrefix, filename), nil
}

// Remove deletes the file behind a URL previously returned by Save. A file
// that is already gone is not an error.
func (s *Store) Remove(url string) error {
	filename := path.Base(url)
	if filename == "." || filename == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return apperrors.NewInternalError("failed to remove file", err)
	}
	return nil
}
