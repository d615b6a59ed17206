package numring

import (
	"image/color"

	"github.com/gogpu/numring/text"
)

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	r := numring.NewRenderer(
//	    numring.WithPadding(20),
//	    numring.WithFontSource(src),
//	)
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	padding    int
	source     *text.FontSource
	background color.Color
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		padding:    DefaultPadding,
		source:     nil, // text.Default() when nil
		background: color.White,
	}
}

// WithPadding sets the margin added on every side of the source image.
// Negative values are treated as zero.
func WithPadding(px int) RendererOption {
	return func(o *rendererOptions) {
		if px < 0 {
			px = 0
		}
		o.padding = px
	}
}

// WithFontSource sets the font used for labels.
// The default is Go Regular.
func WithFontSource(src *text.FontSource) RendererOption {
	return func(o *rendererOptions) {
		o.source = src
	}
}

// WithBackground sets the color the surface is cleared to before each render.
func WithBackground(c color.Color) RendererOption {
	return func(o *rendererOptions) {
		if c != nil {
			o.background = c
		}
	}
}

// ControllerOption configures a Controller during creation.
type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	renderer *Renderer
	inputs   RawInputs
}

func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		inputs: DefaultInputs(),
	}
}

// WithRenderer sets the renderer used by the controller.
// Use this to share a renderer or to customize padding and font.
func WithRenderer(r *Renderer) ControllerOption {
	return func(o *controllerOptions) {
		o.renderer = r
	}
}

// WithInitialInputs sets the form state the controller starts with.
// Empty fields keep their DefaultInputs value.
func WithInitialInputs(raw RawInputs) ControllerOption {
	return func(o *controllerOptions) {
		o.inputs = DefaultInputs().Merge(raw)
	}
}
