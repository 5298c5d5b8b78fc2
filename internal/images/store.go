package images

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aaravmahajanofficial/clothing-store/internal/config"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooLarge        = errors.New("image exceeds the upload limit")
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Store keeps product pictures. Names are slash separated and relative to the store root.
type Store interface {
	Save(folder string, r io.Reader) (string, error)
	Delete(name string) error
	URL(name string) string
}

type fileStore struct {
	dir       string
	urlPrefix string
	maxBytes  int64
}

func NewFileStore(cfg *config.Images) Store {
	return &fileStore{dir: cfg.Dir, urlPrefix: cfg.URLPrefix, maxBytes: cfg.MaxUploadBytes}
}

// Save writes r under folder with a generated name and returns that name.
func (s *fileStore) Save(folder string, r io.Reader) (string, error) {

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	if int64(len(data)) > s.maxBytes {
		return "", ErrTooLarge
	}

	ext, ok := allowedTypes[mimetype.Detect(data).String()]
	if !ok {
		return "", ErrUnsupportedType
	}

	name := path.Join("clothes", folder, uuid.NewString()+ext)
	target := s.resolve(name)

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	return name, nil
}

// Delete removes a stored image. Missing files are not an error.
func (s *fileStore) Delete(name string) error {

	if name == "" {
		return nil
	}

	if err := os.Remove(s.resolve(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete image %s: %w", name, err)
	}

	return nil
}

func (s *fileStore) URL(name string) string {
	if name == "" {
		return ""
	}

	return strings.TrimSuffix(s.urlPrefix, "/") + "/" + name
}

// resolve keeps name inside the store root.
func (s *fileStore) resolve(name string) string {
	clean := path.Clean("/" + name)
	return filepath.Join(s.dir, filepath.FromSlash(clean))
}
