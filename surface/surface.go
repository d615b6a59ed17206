// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"io"
)

// ErrClosed is returned by operations on a surface after Close.
var ErrClosed = errors.New("surface: closed")

// Surface is the rendering target abstraction.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear replaces every pixel with the given color.
	Clear(c color.Color)

	// FillRect composites a solid color over the rectangle.
	// Parts outside the surface are ignored.
	FillRect(r image.Rectangle, c color.Color)

	// DrawImage composites img with its top-left corner at the given point.
	DrawImage(img image.Image, at Point)

	// DrawText draws s so that the style's anchor lands on the given point.
	DrawText(s string, at Point, style TextStyle)

	// Snapshot returns a copy of the surface contents.
	Snapshot() *image.RGBA

	// EncodePNG writes the surface contents as a PNG stream.
	EncodePNG(w io.Writer) error

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}
