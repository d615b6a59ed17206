// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/gogpu/numring/text"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.FillRect(image.Rect(10, 10, 110, 60), color.RGBA{255, 0, 0, 255})
//
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// compression is the zlib level used by EncodePNG
	compression png.CompressionLevel

	// closed tracks if Close has been called
	closed bool
}

var _ Surface = (*ImageSurface)(nil)

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// The surface starts fully transparent, like a freshly sized canvas.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// SetCompression sets the zlib level used by EncodePNG.
func (s *ImageSurface) SetCompression(level png.CompressionLevel) {
	s.compression = level
}

// Compression returns the zlib level used by EncodePNG.
func (s *ImageSurface) Compression() png.CompressionLevel {
	return s.compression
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect composites c over the rectangle r.
func (s *ImageSurface) FillRect(r image.Rectangle, c color.Color) {
	if s.closed {
		return
	}
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawImage composites img with its top-left corner at the given point.
// Fractional positions are truncated to whole pixels.
func (s *ImageSurface) DrawImage(img image.Image, at Point) {
	if s.closed || img == nil {
		return
	}

	src := img.Bounds()
	if src.Empty() {
		return
	}

	dst := image.Rect(0, 0, src.Dx(), src.Dy()).Add(image.Pt(int(at.X), int(at.Y)))
	draw.Draw(s.img, dst, img, src.Min, draw.Over)
}

// DrawText draws str anchored at the given point.
// Text that falls outside the surface is clipped.
func (s *ImageSurface) DrawText(str string, at Point, style TextStyle) {
	if s.closed || style.Face == nil || str == "" {
		return
	}

	c := style.Color
	if c == nil {
		c = color.Black
	}

	text.DrawAnchored(s.img, str, style.Face, at.X, at.Y, style.AnchorX, style.AnchorY, c)
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(result.Pix, s.img.Pix)
	return result
}

// EncodePNG writes the surface contents to w as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if s.closed {
		return ErrClosed
	}
	enc := png.Encoder{CompressionLevel: s.compression}
	return enc.Encode(w, s.img)
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	return nil
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}
