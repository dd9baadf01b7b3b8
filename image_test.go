package loom

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, width, height))))
	return path
}

func TestLoadImage(t *testing.T) {
	path := writeTestPNG(t, 8, 4)

	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.True(t, img.Loaded())
	assert.Equal(t, path, img.Path())

	w, h := img.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 4, h)
	assert.NotNil(t, img.Go())
}

func TestLoadImageMissingFile(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestLoadImageUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err := LoadImage(path)
	assert.Error(t, err)
}

func TestNewImageRef(t *testing.T) {
	img := NewImageRef("assets/logo.png")
	assert.False(t, img.Loaded())
	assert.Equal(t, "assets/logo.png", img.Path())

	w, h := img.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
	assert.Nil(t, img.Go())
}

func TestImageFromGo(t *testing.T) {
	img := ImageFromGo(image.NewGray(image.Rect(0, 0, 2, 3)))
	assert.True(t, img.Loaded())
	assert.Empty(t, img.Path())

	w, h := img.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 3, h)
}
