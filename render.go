package numring

import (
	"image/color"
	"image/png"

	"github.com/gogpu/numring/internal/cache"
	"github.com/gogpu/numring/surface"
	"github.com/gogpu/numring/text"
)

// faceCacheSize bounds the number of label sizes kept open at once.
const faceCacheSize = 8

// Renderer draws a source image and its ring of number labels onto a surface.
//
// Renderer is safe for concurrent use. Faces are cached per pixel size.
type Renderer struct {
	padding    int
	source     *text.FontSource
	background color.Color
	faces      *cache.Cache[int, text.Face]
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = text.Default()
	}
	return &Renderer{
		padding:    o.padding,
		source:     o.source,
		background: o.background,
		faces:      cache.New[int, text.Face](faceCacheSize),
	}
}

// Padding returns the margin added on every side of the source image.
func (r *Renderer) Padding() int { return r.padding }

// FontSource returns the font used for labels.
func (r *Renderer) FontSource() *text.FontSource { return r.source }

// SurfaceSize returns the surface dimensions for img.
func (r *Renderer) SurfaceSize(img *SourceImage) (width, height int) {
	return img.Width() + 2*r.padding, img.Height() + 2*r.padding
}

// NewSurface creates a surface sized for img. Exports from it favor
// encoding speed over size.
func (r *Renderer) NewSurface(img *SourceImage) *surface.ImageSurface {
	s := surface.NewImageSurface(r.SurfaceSize(img))
	s.SetCompression(png.BestSpeed)
	return s
}

// Render clears dst, draws img at (padding, padding), and draws one label
// per visible slot. It returns every slot, drawn or not.
//
// cfg must come from Resolve. Labels that fall outside dst are clipped.
func (r *Renderer) Render(dst surface.Surface, img *SourceImage, cfg GenerationConfig) []LabelPlacement {
	r.DrawBase(dst, img)

	placements := Layout(img.Width(), img.Height(), r.padding, cfg)

	style := surface.CenteredText(r.face(cfg.FontSizePx), cfg.FontColor.Color())
	drawn := 0
	for _, p := range placements {
		if !p.Visible {
			continue
		}
		dst.DrawText(p.Label, surface.Pt(p.X, p.Y), style)
		drawn++
	}

	Logger().Debug("numring: render",
		"slots", len(placements),
		"drawn", drawn,
		"width", dst.Width(),
		"height", dst.Height())
	return placements
}

// DrawBase clears dst to the background color and draws img at
// (padding, padding), without labels.
func (r *Renderer) DrawBase(dst surface.Surface, img *SourceImage) {
	dst.Clear(r.background)
	dst.DrawImage(img.Image(), surface.Pt(float64(r.padding), float64(r.padding)))
}

// face returns the cached face for a pixel size.
func (r *Renderer) face(px int) text.Face {
	return r.faces.GetOrCreate(px, func() text.Face {
		f := r.source.Face(float64(px))
		if err := f.Err(); err != nil {
			Logger().Warn("numring: labels will not draw", "size", px, "error", err)
		}
		return f
	})
}
