// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/color"

	"github.com/gogpu/numring/text"
)

// Point is a position in surface coordinates.
// Origin is top-left, X grows right, Y grows down.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// TextStyle describes how DrawText renders a string.
type TextStyle struct {
	// Face is the font face. Text is skipped when nil.
	Face text.Face

	// Color is the fill color. Black when nil.
	Color color.Color

	// AnchorX and AnchorY place the anchor inside the text box:
	// (0, 0) is top-left, (0.5, 0.5) is the center, (1, 1) bottom-right.
	AnchorX, AnchorY float64
}

// CenteredText returns a style that centers text on its point, like a
// canvas with textAlign "center" and textBaseline "middle".
func CenteredText(face text.Face, c color.Color) TextStyle {
	return TextStyle{
		Face:    face,
		Color:   c,
		AnchorX: 0.5,
		AnchorY: 0.5,
	}
}
