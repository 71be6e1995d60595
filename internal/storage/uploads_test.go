package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

func fileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(dir)
	require.NoError(t, err)

	path, err := store.Save("mainImage", fileHeader(t, "mainImage", "villa.png", pngBytes))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/uploads/mainImage-"), "got %q", path)
	assert.True(t, strings.HasSuffix(path, ".png"), "got %q", path)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(dir + "/" + entries[0].Name())
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestSaveRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(dir)
	require.NoError(t, err)

	_, err = store.Save("mainImage", fileHeader(t, "mainImage", "resume.pdf", []byte("plain text, not an image")))
	assert.ErrorIs(t, err, ErrNotImage)

	// Rejection happens before anything touches disk.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveUniqueNames(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save("interiorImages", fileHeader(t, "interiorImages", "a.png", pngBytes))
	require.NoError(t, err)
	second, err := store.Save("interiorImages", fileHeader(t, "interiorImages", "a.png", pngBytes))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
