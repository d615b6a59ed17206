// Package numring overlays a ring of numbers on a raster image.
//
// # Overview
//
// A loaded image is drawn onto a white surface with a fixed margin on every
// side. Around an anchor point near the image center, Count labels are laid
// out at equal angles on a circle and drawn as zero-padded decimal numbers.
// The result can be exported as PNG.
//
// # Quick Start
//
//	c := numring.NewController()
//
//	p, err := c.LoadFile(ctx, "photo.png")
//	if err != nil {
//	    return err
//	}
//	if err := p.Wait(ctx); err != nil {
//	    return err
//	}
//
//	in := numring.DefaultInputs()
//	in.Count = "8"
//	in.Direction = "counterclockwise"
//	if err := c.SetInputs(in); err != nil {
//	    return err
//	}
//
//	path, err := c.ExportFile(".")
//
// # Pipeline
//
// Raw form values go through Resolve, which produces a GenerationConfig or
// an error matching ErrInvalidParameter. Layout turns a config into
// LabelPlacement values, and Renderer draws them onto a surface.Surface.
// Controller ties these together and owns the load state machine:
//
//	Idle -> Decoding -> Loaded | Failed
//
// # Coordinate System
//
// Surface coordinates have the origin at top-left with Y growing down, so a
// positive angle step runs clockwise on screen. Angle 0 points right.
//
// # Logging
//
// numring is silent by default. Use SetLogger to route its log/slog output.
package numring
