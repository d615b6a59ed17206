package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face represents a font face at a specific size.
// This is a lightweight object created from a FontSource.
// Face is safe for concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels,
	// including kerning.
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Size returns the size of this face in points.
	Size() float64

	// PixelSize returns the size of this face in pixels per em.
	PixelSize() float64

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Err reports why the face cannot draw, or nil. A face with a
	// non-positive size reports ErrInvalidSize.
	Err() error

	// private prevents external implementation
	private()
}

// sourceFace is the internal implementation of Face.
// The x/image face is created lazily and guarded by mu because
// opentype faces keep per-call scratch buffers.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig

	mu  sync.Mutex
	ot  font.Face
	err error
}

func (f *sourceFace) private() {}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 { return f.size }

// PixelSize implements Face.PixelSize.
func (f *sourceFace) PixelSize() float64 { return f.size * f.config.dpi / 72 }

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource { return f.source }

// Err implements Face.Err.
func (f *sourceFace) Err() error {
	f.with(func(font.Face) {})
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	var m Metrics
	f.with(func(ot font.Face) {
		fm := ot.Metrics()
		descent := fixedToFloat(fm.Descent)
		if descent < 0 {
			descent = -descent
		}
		ascent := fixedToFloat(fm.Ascent)
		m = Metrics{
			Ascent:    ascent,
			Descent:   descent,
			LineGap:   fixedToFloat(fm.Height) - ascent - descent,
			CapHeight: fixedToFloat(fm.CapHeight),
		}
		if m.LineGap < 0 {
			m.LineGap = 0
		}
	})
	return m
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	var w float64
	f.with(func(ot font.Face) {
		w = fixedToFloat(font.MeasureString(ot, text))
	})
	return w
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	otf := f.source.opentypeFont()
	if otf == nil {
		return false
	}
	var buf sfnt.Buffer
	gid, err := otf.GlyphIndex(&buf, r)
	return err == nil && gid != 0
}

// shape positions the runes of text using the x/image advances and
// kerning pairs. It backs BuiltinShaper.
func (f *sourceFace) shape(text string) []ShapedGlyph {
	otf := f.source.opentypeFont()
	if otf == nil || text == "" {
		return nil
	}

	var out []ShapedGlyph
	f.with(func(ot font.Face) {
		var (
			buf  sfnt.Buffer
			x    fixed.Int26_6
			prev rune = -1
		)
		for i, r := range text {
			if prev >= 0 {
				x += ot.Kern(prev, r)
			}
			adv, _ := ot.GlyphAdvance(r)
			gid, _ := otf.GlyphIndex(&buf, r)
			out = append(out, ShapedGlyph{
				GID:      GlyphID(gid),
				Cluster:  i,
				X:        fixedToFloat(x),
				XAdvance: fixedToFloat(adv),
			})
			x += adv
			prev = r
		}
	})
	return out
}

// with runs fn with the lazily created x/image face while holding the
// face lock. fn is not called when the face cannot be created.
func (f *sourceFace) with(fn func(font.Face)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ot == nil && f.err == nil {
		otf := f.source.opentypeFont()
		switch {
		case f.size <= 0:
			f.err = ErrInvalidSize
			return
		case otf == nil:
			f.err = ErrSourceClosed
			return
		}
		ot, err := opentype.NewFace(otf, &opentype.FaceOptions{
			Size:    f.size,
			DPI:     f.config.dpi,
			Hinting: font.HintingFull,
		})
		if err != nil {
			f.err = fmt.Errorf("text: create face: %w", err)
			return
		}
		f.ot = ot
	}
	if f.ot == nil {
		return
	}
	fn(f.ot)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// floatToFixed converts a float64 to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
