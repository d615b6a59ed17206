package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders text to a destination image.
// Position (x, y) is the baseline origin.
// The face must come from a FontSource of this package.
func Draw(dst draw.Image, text string, face Face, x, y float64, col color.Color) {
	if text == "" || face == nil {
		return
	}

	sf, ok := face.(*sourceFace)
	if !ok {
		return
	}

	sf.with(func(ot font.Face) {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(col),
			Face: ot,
			Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
		}
		d.DrawString(text)
	})
}

// DrawAnchored renders text so that the anchor point (ax, ay) of its box
// lands on (x, y). ax is relative to the shaped advance width and ay to the
// em box (ascent + descent):
//
//	(0, 0)     = top-left
//	(0.5, 0.5) = center, the canvas "center"/"middle" alignment
//	(1, 1)     = bottom-right
func DrawAnchored(dst draw.Image, text string, face Face, x, y, ax, ay float64, col color.Color) {
	if text == "" || face == nil {
		return
	}

	w, _ := Measure(text, face)
	m := face.Metrics()

	x -= w * ax
	y += m.MiddleOffset() + (m.Ascent+m.Descent)*(0.5-ay)

	Draw(dst, text, face, x, y, col)
}

// Measure returns the dimensions of text.
// Width is the advance reported by the active Shaper, height is the
// font's line height.
func Measure(text string, face Face) (width, height float64) {
	if text == "" || face == nil {
		return 0, 0
	}

	for _, g := range Shape(text, face) {
		if end := g.X + g.XAdvance; end > width {
			width = end
		}
	}

	return width, face.Metrics().LineHeight()
}
