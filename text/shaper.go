package text

import "sync"

// Shaper converts text to positioned glyphs.
//   - BuiltinShaper: golang.org/x/image advances plus kerning pairs
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting
type Shaper interface {
	// Shape converts text into positioned glyphs using the given face.
	Shape(text string, face Face) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the global shaper used by Shape and Measure.
// Pass nil to reset to the default BuiltinShaper.
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil)
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that uses the global shaper.
func Shape(text string, face Face) []ShapedGlyph {
	return GetShaper().Shape(text, face)
}

// BuiltinShaper shapes text with the glyph advances and kerning table
// exposed by golang.org/x/image/font. No ligatures or reordering.
type BuiltinShaper struct{}

// Shape implements Shaper.
func (BuiltinShaper) Shape(text string, face Face) []ShapedGlyph {
	sf, ok := face.(*sourceFace)
	if !ok || text == "" {
		return nil
	}
	return sf.shape(text)
}
