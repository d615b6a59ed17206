package text

import (
	"math"
	"testing"
)

func TestBuiltinShaperPositions(t *testing.T) {
	face := Default().Face(20)
	glyphs := BuiltinShaper{}.Shape("123", face)

	if len(glyphs) != 3 {
		t.Fatalf("got %d glyphs, want 3", len(glyphs))
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X <= glyphs[i-1].X {
			t.Errorf("glyph %d X = %v not after glyph %d X = %v", i, glyphs[i].X, i-1, glyphs[i-1].X)
		}
	}
	if glyphs[0].GID == 0 {
		t.Error("digit should map to a real glyph")
	}
}

func TestSetShaperNilResets(t *testing.T) {
	t.Cleanup(func() { SetShaper(nil) })

	SetShaper(NewGoTextShaper())
	if _, ok := GetShaper().(*GoTextShaper); !ok {
		t.Fatalf("GetShaper() = %T, want *GoTextShaper", GetShaper())
	}

	SetShaper(nil)
	if _, ok := GetShaper().(*BuiltinShaper); !ok {
		t.Errorf("GetShaper() = %T after reset, want *BuiltinShaper", GetShaper())
	}
}

func TestGoTextShaperMatchesBuiltinWidth(t *testing.T) {
	face := Default().Face(30)
	s := NewGoTextShaper()

	hb := s.Shape("2048", face)
	if len(hb) != 4 {
		t.Fatalf("got %d glyphs, want 4", len(hb))
	}

	width := func(gs []ShapedGlyph) float64 {
		last := gs[len(gs)-1]
		return last.X + last.XAdvance
	}

	// Go Regular has no digit kerning, so both shapers agree within rounding.
	got, want := width(hb), width(BuiltinShaper{}.Shape("2048", face))
	if math.Abs(got-want) > 4 {
		t.Errorf("HarfBuzz width %.2f, builtin width %.2f", got, want)
	}
}

func TestGoTextShaperCachesFont(t *testing.T) {
	s := NewGoTextShaper()
	face := Default().Face(12)

	_ = s.Shape("1", face)
	_ = s.Shape("2", face)

	s.mu.RLock()
	n := len(s.fontCache)
	s.mu.RUnlock()
	if n != 1 {
		t.Errorf("font cache has %d entries, want 1", n)
	}

	s.RemoveSource(face.Source())
	s.mu.RLock()
	n = len(s.fontCache)
	s.mu.RUnlock()
	if n != 0 {
		t.Errorf("font cache has %d entries after RemoveSource, want 0", n)
	}
}

func TestGoTextShaperEmpty(t *testing.T) {
	if got := NewGoTextShaper().Shape("", Default().Face(12)); got != nil {
		t.Errorf("Shape(\"\") = %v, want nil", got)
	}
	if got := NewGoTextShaper().Shape("1", nil); got != nil {
		t.Errorf("Shape with nil face = %v, want nil", got)
	}
}
