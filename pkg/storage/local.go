package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sangkips/solarpower/pkg/utils"
)

var (
	// ErrFileTooLarge is returned when an upload exceeds the configured limit
	ErrFileTooLarge = errors.New("file too large")
	// ErrUnsupportedType is returned for files that are not images
	ErrUnsupportedType = errors.New("unsupported file type")
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// LocalStorage keeps uploaded files on the local filesystem
type LocalStorage struct {
	root    string
	maxSize int64
}

// NewLocalStorage creates a store rooted at root accepting files up to maxSize bytes
func NewLocalStorage(root string, maxSize int64) *LocalStorage {
	return &LocalStorage{root: root, maxSize: maxSize}
}

// Root returns the directory uploads are written to
func (s *LocalStorage) Root() string {
	return s.root
}

// SaveImage writes an uploaded image under dir and returns its path relative to the root
func (s *LocalStorage) SaveImage(fh *multipart.FileHeader, dir string) (string, error) {
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	name := utils.UploadFileName(fh.Filename)
	if !imageExtensions[strings.ToLower(filepath.Ext(name))] {
		return "", ErrUnsupportedType
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	targetDir := filepath.Join(s.root, dir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(targetDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return path.Join(dir, name), nil
}

// Remove deletes a file previously returned by SaveImage. A missing file is not an error.
func (s *LocalStorage) Remove(rel string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove upload: %w", err)
	}
	return nil
}
