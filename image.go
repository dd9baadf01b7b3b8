package loom

import (
	"fmt"
	"image"
	"os"

	// Decoders for the common formats loom markup may reference.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a shared handle to a raster image. Values reference the handle;
// copying a Value never copies pixel data, mirroring the cheap-to-share
// semantics of the rest of the engine. Two image Values are equal only when
// they reference the same handle.
type Image struct {
	path string
	img  image.Image
}

// LoadImage opens and decodes the image file at path. PNG, JPEG, GIF, BMP,
// TIFF and WebP are supported.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return &Image{path: path, img: img}, nil
}

// NewImageRef returns an image handle that references path without decoding
// it. Such a handle carries no pixel data; it is what a deserialized image
// Value holds until the host reloads it.
func NewImageRef(path string) *Image {
	return &Image{path: path}
}

// ImageFromGo wraps an already decoded Go image in a handle.
func ImageFromGo(img image.Image) *Image {
	return &Image{img: img}
}

// Path returns the source path of the image, if it was loaded from or
// references a file.
func (i *Image) Path() string {
	return i.path
}

// Loaded reports whether the handle carries decoded pixel data.
func (i *Image) Loaded() bool {
	return i.img != nil
}

// Size returns the pixel dimensions, or zeros for an unloaded reference.
func (i *Image) Size() (width, height int) {
	if i.img == nil {
		return 0, 0
	}
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// Go returns the underlying Go image, or nil for an unloaded reference.
func (i *Image) Go() image.Image {
	return i.img
}
