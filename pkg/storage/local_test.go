package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.Len(t, form.File["image"], 1)
	return form.File["image"][0]
}

func TestLocalStorage_SaveImage(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStorage(root, 1024)

	rel, err := store.SaveImage(fileHeader(t, "Roof Top.PNG", []byte("png-bytes")), "case_studies")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "case_studies/"))
	assert.True(t, strings.HasSuffix(strings.ToLower(rel), ".png"))

	saved, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), saved)
}

func TestLocalStorage_SaveImageRejects(t *testing.T) {
	store := NewLocalStorage(t.TempDir(), 4)

	_, err := store.SaveImage(fileHeader(t, "big.jpg", []byte("more than four bytes")), "services")
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = store.SaveImage(fileHeader(t, "run.sh", []byte("sh")), "services")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestLocalStorage_Remove(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStorage(root, 1024)

	rel, err := store.SaveImage(fileHeader(t, "panel.jpg", []byte("jpg-bytes")), "services")
	require.NoError(t, err)

	require.NoError(t, store.Remove(rel))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Remove(rel), "removing twice is harmless")
}
