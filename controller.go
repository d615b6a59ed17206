package numring

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/numring/surface"
)

// ExportFileName is the name of the file written by ExportFile.
const ExportFileName = "image_with_numbers.png"

// Placeholder and blank surface geometry.
const (
	placeholderWidth  = 500
	placeholderHeight = 300
	placeholderText   = "Load a PNG image to start"
	placeholderFontPx = 16

	blankWidth  = 300
	blankHeight = 150
)

var (
	placeholderBackground = color.RGBA{0xee, 0xee, 0xee, 0xff}
	placeholderForeground = color.RGBA{0x99, 0x99, 0x99, 0xff}
)

// State is the image load state of a Controller.
type State int

const (
	// StateIdle means no image is loaded and none is being decoded.
	StateIdle State = iota
	// StateDecoding means a load is in progress.
	StateDecoding
	// StateLoaded means an image is loaded and renders are live.
	StateLoaded
	// StateFailed means the last load could not be decoded. An image
	// loaded before it stays live.
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDecoding:
		return "decoding"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Controller owns the loaded image, the current form state, and the
// surface they are rendered to.
//
// Every input change re-renders synchronously. Decoding is the only
// asynchronous step; see Load. Controller is safe for concurrent use and
// renders never overlap.
type Controller struct {
	renderer *Renderer

	mu         sync.Mutex
	gen        uint64
	state      State
	img        *SourceImage
	surf       *surface.ImageSurface
	inputs     RawInputs
	placements []LabelPlacement
	lastErr    error
}

// NewController creates an idle controller showing the placeholder surface.
func NewController(opts ...ControllerOption) *Controller {
	o := defaultControllerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.renderer == nil {
		o.renderer = NewRenderer()
	}

	c := &Controller{
		renderer: o.renderer,
		inputs:   o.inputs,
	}
	c.surf = c.placeholder()
	return c
}

// placeholder draws the surface shown before the first load.
func (c *Controller) placeholder() *surface.ImageSurface {
	s := surface.NewImageSurface(placeholderWidth, placeholderHeight)
	s.Clear(placeholderBackground)

	face := c.renderer.face(placeholderFontPx)
	m := face.Metrics()
	style := surface.TextStyle{
		Face:    face,
		Color:   placeholderForeground,
		AnchorX: 0.5,
	}
	// Alphabetic baseline on the center line.
	if h := m.Ascent + m.Descent; h > 0 {
		style.AnchorY = m.Ascent / h
	}
	s.DrawText(placeholderText, surface.Pt(placeholderWidth/2, placeholderHeight/2), style)
	return s
}

// Pending is the outcome of an asynchronous Load.
type Pending struct {
	done chan struct{}
	err  error
}

// Done is closed once the load has been applied or discarded.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the load completes or ctx is done.
//
// It returns nil when the image was loaded, a *DecodeError when it could not
// be decoded, and ErrLoadSuperseded when a later Load or Cancel replaced it.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pending) finish(err error) {
	p.err = err
	close(p.done)
}

// Load starts decoding the image read from r and returns immediately.
//
// The controller enters StateDecoding. When decoding finishes the result is
// applied only if no later Load or Cancel happened in the meantime: success
// replaces the image and surface and renders with the current inputs;
// failure enters StateFailed and keeps the previous surface. If ctx is done
// by the time decoding finishes, the result is discarded as a failure.
//
// r must not be used by the caller until the returned Pending is done.
func (c *Controller) Load(ctx context.Context, r io.Reader) *Pending {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.state = StateDecoding
	c.lastErr = nil
	c.mu.Unlock()

	p := &Pending{done: make(chan struct{})}
	go func() {
		src, err := Decode(r)
		if err == nil {
			if cerr := ctx.Err(); cerr != nil {
				src, err = nil, fmt.Errorf("numring: load: %w", cerr)
			}
		}
		p.finish(c.apply(gen, src, err))
	}()
	return p
}

// LoadFile opens path and loads it. The file is closed once decoding ends.
func (c *Controller) LoadFile(ctx context.Context, path string) (*Pending, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("numring: open image: %w", err)
	}

	p := c.Load(ctx, f)
	go func() {
		<-p.Done()
		f.Close()
	}()
	return p, nil
}

// apply installs the outcome of load generation gen.
func (c *Controller) apply(gen uint64, src *SourceImage, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return ErrLoadSuperseded
	}

	if err != nil {
		c.state = StateFailed
		c.lastErr = err
		Logger().Warn("numring: image load failed", "error", err)
		return err
	}

	if c.surf != nil {
		c.surf.Close()
	}
	c.img = src
	c.surf = c.renderer.NewSurface(src)
	c.state = StateLoaded
	c.placements = nil

	Logger().Info("numring: image loaded",
		"format", src.Format(),
		"width", src.Width(),
		"height", src.Height())

	if rerr := c.renderLocked(); rerr != nil {
		// A fresh surface has no previous raster to keep.
		c.renderer.DrawBase(c.surf, c.img)
	}
	return nil
}

// Cancel handles a file selection that was cancelled. Any pending load is
// superseded, the image is dropped, and the surface becomes a blank 300x150.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.state = StateIdle
	c.img = nil
	c.placements = nil
	c.lastErr = nil
	if c.surf != nil {
		c.surf.Close()
	}
	c.surf = surface.NewImageSurface(blankWidth, blankHeight)
}

// SetInputs stores the form state and renders with it.
//
// The inputs are stored even when the render is skipped. The returned error
// is diagnostic only: it matches ErrInvalidParameter for rejected inputs and
// is ErrNoImageLoaded when there is nothing to draw. In both cases the
// surface is left untouched.
func (c *Controller) SetInputs(raw RawInputs) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inputs = raw
	return c.renderLocked()
}

// Inputs returns the current form state.
func (c *Controller) Inputs() RawInputs {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inputs
}

// Render re-renders with the current inputs.
func (c *Controller) Render() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderLocked()
}

// hasImageLocked reports whether an image is live: one was loaded and no
// load is in progress.
func (c *Controller) hasImageLocked() bool {
	return c.img != nil && c.state != StateDecoding
}

func (c *Controller) renderLocked() error {
	if !c.hasImageLocked() {
		return ErrNoImageLoaded
	}

	cfg, err := Resolve(c.inputs)
	if err != nil {
		Logger().Warn("numring: invalid inputs, render skipped", "error", err)
		return err
	}

	c.placements = c.renderer.Render(c.surf, c.img, cfg)
	return nil
}

// Export writes the current surface to w as PNG.
// It returns ErrNoImageLoaded, writing nothing, until an image has loaded.
// After a failed reload the previous image is exported.
func (c *Controller) Export(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasImageLocked() {
		return ErrNoImageLoaded
	}
	if err := c.surf.EncodePNG(w); err != nil {
		return fmt.Errorf("numring: export: %w", err)
	}
	return nil
}

// ExportFile writes the current surface to dir/ExportFileName and returns
// the path written. No file is created when no image is loaded.
func (c *Controller) ExportFile(dir string) (string, error) {
	c.mu.Lock()
	live := c.hasImageLocked()
	c.mu.Unlock()
	if !live {
		return "", ErrNoImageLoaded
	}

	path := filepath.Join(dir, ExportFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("numring: export: %w", err)
	}

	if err := c.Export(f); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("numring: export: %w", err)
	}

	Logger().Info("numring: export written", "path", path)
	return path, nil
}

// Snapshot returns a copy of the current surface.
func (c *Controller) Snapshot() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.surf.Snapshot()
}

// Placements returns the slots of the last successful render.
func (c *Controller) Placements() []LabelPlacement {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]LabelPlacement, len(c.placements))
	copy(out, c.placements)
	return out
}

// State returns the load state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Image returns the loaded image, or nil.
func (c *Controller) Image() *SourceImage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.img
}

// LastError returns the error of the last failed load, or nil.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
