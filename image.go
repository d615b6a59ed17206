package numring

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// errEmptyImage is wrapped in a DecodeError for images with no pixels.
var errEmptyImage = errors.New("image has zero width or height")

// SourceImage is a decoded raster image. It is immutable once created.
type SourceImage struct {
	img    image.Image
	format string
}

// NewSourceImage wraps an already decoded image.
// It returns a *DecodeError if img is nil or empty.
func NewSourceImage(img image.Image) (*SourceImage, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, &DecodeError{Err: errEmptyImage}
	}
	return &SourceImage{img: img}, nil
}

// Decode reads a PNG, JPEG, GIF, BMP, TIFF, or WebP image from r.
// Any failure is returned as a *DecodeError.
func Decode(r io.Reader) (*SourceImage, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	src, err := NewSourceImage(img)
	if err != nil {
		return nil, err
	}
	src.format = format
	return src, nil
}

// DecodeFile decodes the image stored at path.
func DecodeFile(path string) (*SourceImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("numring: open image: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Width returns the image width in pixels.
func (s *SourceImage) Width() int { return s.img.Bounds().Dx() }

// Height returns the image height in pixels.
func (s *SourceImage) Height() int { return s.img.Bounds().Dy() }

// Format returns the codec name reported by the decoder ("png", "jpeg", ...).
// It is empty for images built with NewSourceImage.
func (s *SourceImage) Format() string { return s.format }

// Image returns the decoded pixels.
func (s *SourceImage) Image() image.Image { return s.img }
