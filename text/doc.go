// Package text provides the label text pipeline for numring.
//
// The pipeline separates three concerns:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - Face: lightweight font instance at a specific size
//   - Shaper: positions glyphs; BuiltinShaper (golang.org/x/image) by
//     default, GoTextShaper (go-text/typesetting HarfBuzz) on request
//
// # Example usage
//
//	face := text.Default().Face(24)
//	dst := image.NewRGBA(image.Rect(0, 0, 200, 100))
//	text.DrawAnchored(dst, "07", face, 100, 50, 0.5, 0.5, color.Black)
//
// Sizes are given in points at 72 DPI, so a 24 point face is 24 pixels per em.
package text
