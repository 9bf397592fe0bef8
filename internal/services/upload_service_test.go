package services_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"banarts/internal/imageprocessor"
	"banarts/internal/services"
	"banarts/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// formFile runs content through a real multipart round trip.
func formFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func newUploadService(t *testing.T, maxSize int64) (services.UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: dir, BaseURL: "/img"})
	require.NoError(t, err)
	svc := services.NewUploadService(store, imageprocessor.NewProcessor(85, 16), services.UploadConfig{
		MaxSize:      maxSize,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
	})
	return svc, dir
}

func TestUploadService_SaveImageResizesAndStores(t *testing.T) {
	svc, dir := newUploadService(t, 1<<20)

	url, err := svc.SaveImage(context.Background(), formFile(t, "My Painting.PNG", pngBytes(t, 40, 20)), "artworks")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/img/artworks/"), url)
	assert.True(t, strings.HasSuffix(url, "-my-painting.png"), url)

	stored, err := os.Open(filepath.Join(dir, strings.TrimPrefix(url, "/img/")))
	require.NoError(t, err)
	defer stored.Close()
	cfg, _, err := image.DecodeConfig(stored)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Width)
	assert.Equal(t, 8, cfg.Height)

	svc.Remove(context.Background(), url)
	_, err = os.Stat(filepath.Join(dir, strings.TrimPrefix(url, "/img/")))
	assert.True(t, os.IsNotExist(err))
}

func TestUploadService_RejectsLargeFiles(t *testing.T) {
	svc, _ := newUploadService(t, 32)

	_, err := svc.SaveImage(context.Background(), formFile(t, "big.png", pngBytes(t, 64, 64)), "artworks")
	requireAppError(t, err, http.StatusRequestEntityTooLarge)
}

func TestUploadService_RejectsNonImages(t *testing.T) {
	svc, _ := newUploadService(t, 1<<20)

	_, err := svc.SaveImage(context.Background(), formFile(t, "notes.png", []byte("just some text, honest")), "artworks")
	requireAppError(t, err, http.StatusUnsupportedMediaType)

	_, err = svc.SaveImage(context.Background(), nil, "artworks")
	requireAppError(t, err, http.StatusBadRequest)
}
