package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// ErrNotImage is returned when an upload does not sniff as an image.
// Detection is content-based; the client-supplied filename and Content-Type
// headers are not trusted.
var ErrNotImage = errors.New("uploaded file is not an image")

const sniffLen = 3072

// UploadStore writes accepted image uploads to a local directory. Stored
// names carry a nanosecond timestamp plus a random suffix so concurrent
// uploads never collide.
type UploadStore struct {
	dir string
}

func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &UploadStore{dir: dir}, nil
}

// Save sniffs the upload, rejects non-images before anything touches disk,
// and returns the site-relative path (/uploads/<name>) to persist.
func (s *UploadStore) Save(field string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	if !strings.HasPrefix(mimetype.Detect(head).String(), "image/") {
		return "", ErrNotImage
	}

	name := fmt.Sprintf("%s-%d-%s%s",
		field,
		time.Now().UnixNano(),
		uuid.NewString()[:8],
		strings.ToLower(filepath.Ext(fileHeader.Filename)),
	)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.MultiReader(bytes.NewReader(head), file)); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return "/uploads/" + name, nil
}

// Dir returns the on-disk directory backing the store.
func (s *UploadStore) Dir() string {
	return s.dir
}
