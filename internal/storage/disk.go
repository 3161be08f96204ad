package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds size limit")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// Extension allowlists per upload field. CVs are documents, profile
// pictures are images; anything else is rejected before touching disk.
var (
	CVExtensions      = []string{".pdf", ".doc", ".docx"}
	PictureExtensions = []string{".jpg", ".jpeg", ".png"}
)

// DiskStore writes uploads under a single directory with server-generated
// names, so client-supplied filenames never reach the filesystem.
type DiskStore struct {
	dir      string
	maxBytes int64
}

func NewDiskStore(dir string, maxBytes int64) (*DiskStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("empty upload dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return &DiskStore{dir: dir, maxBytes: maxBytes}, nil
}

func (s *DiskStore) Dir() string {
	return s.dir
}

// Save persists one multipart file and returns the generated filename.
func (s *DiskStore) Save(fh *multipart.FileHeader, field string, allowedExts []string) (string, error) {
	if fh == nil {
		return "", errors.New("nil file header")
	}
	if fh.Size > s.maxBytes {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !extAllowed(ext, allowedExts) {
		return "", ErrUnsupportedType
	}

	name := generateName(field, ext)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, io.LimitReader(src, s.maxBytes+1)); err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return "", err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}

	return name, nil
}

// Remove deletes a previously saved upload. Only the base name is used,
// so a crafted path cannot escape the upload directory.
func (s *DiskStore) Remove(name string) error {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func extAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

func generateName(field, ext string) string {
	field = strings.TrimSpace(field)
	if field == "" {
		field = "file"
	}
	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixNano(), uuid.NewString(), ext)
}
