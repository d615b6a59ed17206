package text

// GlyphID is a glyph index within a font.
type GlyphID uint16

// ShapedGlyph is a glyph positioned by a Shaper.
// X and Y are relative to the start of the shaped run.
type ShapedGlyph struct {
	GID      GlyphID
	Cluster  int
	X, Y     float64
	XAdvance float64
}
