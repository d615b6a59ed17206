package numring

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/numring/surface"
	"github.com/gogpu/numring/text"
)

// solidImage returns a w x h image filled with c.
func solidImage(w, h int, c color.Color) *SourceImage {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	src, err := NewSourceImage(img)
	if err != nil {
		panic(err)
	}
	return src
}

// TestRendererSurfaceSize tests the padded surface size.
func TestRendererSurfaceSize(t *testing.T) {
	img := solidImage(80, 30, color.Black)

	r := NewRenderer()
	s := r.NewSurface(img)
	if s.Width() != 180 || s.Height() != 130 {
		t.Errorf("surface = %dx%d, want 180x130", s.Width(), s.Height())
	}

	if s.Compression() != png.BestSpeed {
		t.Errorf("Compression = %v, want BestSpeed", s.Compression())
	}

	r = NewRenderer(WithPadding(-5))
	if r.Padding() != 0 {
		t.Errorf("Padding = %d, want 0", r.Padding())
	}
}

// TestRendererDrawsImageAndLabels tests the background, image, and label pixels.
func TestRendererDrawsImageAndLabels(t *testing.T) {
	img := solidImage(100, 100, color.RGBA{0, 0, 255, 255})
	cfg := mustResolve(t, RawInputs{Count: "4", FontColor: "#ff0000", FontSize: "20", RadiusOffset: "40"})

	r := NewRenderer()
	s := r.NewSurface(img)
	placements := r.Render(s, img, cfg)
	if len(placements) != 4 {
		t.Fatalf("placements = %d, want 4", len(placements))
	}

	px := s.Image()
	if c := px.RGBAAt(2, 2); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("margin pixel = %v, want white", c)
	}
	if c := px.RGBAAt(DefaultPadding+5, DefaultPadding+5); c != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("image pixel = %v, want blue", c)
	}

	// Radius 90 puts slot 0 at (190, 110), in the right margin.
	p := placements[0]
	red := countRed(px, image.Rect(int(p.X)-15, int(p.Y)-15, int(p.X)+15, int(p.Y)+15))
	if red == 0 {
		t.Errorf("no red pixels around label %q at (%.0f, %.0f)", p.Label, p.X, p.Y)
	}
}

// TestRendererParityDrawsNothing tests that hidden slots leave no ink.
func TestRendererParityDrawsNothing(t *testing.T) {
	img := solidImage(100, 100, color.White)
	cfg := mustResolve(t, RawInputs{Count: "1", StartNumber: "1", EvenOddFilter: "even", FontColor: "red"})

	r := NewRenderer()
	s := r.NewSurface(img)
	placements := r.Render(s, img, cfg)

	if len(placements) != 1 || placements[0].Visible {
		t.Fatalf("placements = %+v, want one hidden slot", placements)
	}
	if n := countRed(s.Image(), s.Image().Bounds()); n != 0 {
		t.Errorf("found %d red pixels, want none", n)
	}
}

// TestRendererDeterministic tests that identical renders are pixel-identical.
func TestRendererDeterministic(t *testing.T) {
	img := solidImage(64, 48, color.RGBA{30, 120, 60, 255})
	cfg := mustResolve(t, RawInputs{Count: "7", Rotation: "33", FontColor: "purple"})

	r := NewRenderer()
	a := r.NewSurface(img)
	b := r.NewSurface(img)
	r.Render(a, img, cfg)
	r.Render(b, img, cfg)
	first := a.Snapshot()
	r.Render(a, img, cfg)

	if !bytes.Equal(first.Pix, b.Image().Pix) {
		t.Error("two surfaces rendered from the same input differ")
	}
	if !bytes.Equal(first.Pix, a.Image().Pix) {
		t.Error("re-rendering the same surface changed it")
	}
}

// TestRendererBackground tests WithBackground.
func TestRendererBackground(t *testing.T) {
	img := solidImage(10, 10, color.Black)
	cfg := mustResolve(t, RawInputs{Count: "1"})

	r := NewRenderer(WithBackground(color.RGBA{0, 255, 0, 255}), WithPadding(5))
	s := surface.NewImageSurface(r.SurfaceSize(img))
	r.Render(s, img, cfg)

	if c := s.Image().RGBAAt(0, 0); c != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("background pixel = %v, want green", c)
	}
}

// TestRendererUnusableFaceLogged tests that a face that cannot draw is
// reported once, when it is first cached.
func TestRendererUnusableFaceLogged(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	r := NewRenderer()
	if err := r.face(0).Err(); !errors.Is(err, text.ErrInvalidSize) {
		t.Fatalf("face(0).Err() = %v, want ErrInvalidSize", err)
	}
	_ = r.face(0)
	if n := strings.Count(buf.String(), "labels will not draw"); n != 1 {
		t.Errorf("warnings = %d, want 1; log: %q", n, buf.String())
	}

	buf.Reset()
	_ = r.face(24)
	if buf.Len() != 0 {
		t.Errorf("usable face logged %q", buf.String())
	}
}

func countRed(img *image.RGBA, r image.Rectangle) int {
	r = r.Intersect(img.Bounds())
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R > 200 && c.G < 100 && c.B < 100 {
				n++
			}
		}
	}
	return n
}
