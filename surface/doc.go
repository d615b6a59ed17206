// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the raster surface numring renders into.
//
// A Surface is a fixed-size 2D pixel buffer that supports the handful of
// operations the label renderer needs: clearing, rectangle fills, image
// blits, anchored text, and PNG serialization. Surfaces are rendering
// targets independent of the code that decides what to draw, following
// the Cairo/Skia image-surface pattern.
//
// # Usage
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.DrawImage(photo, surface.Pt(50, 50))
//	s.DrawText("07", surface.Pt(400, 300), surface.CenteredText(face, color.Black))
//
//	var buf bytes.Buffer
//	if err := s.EncodePNG(&buf); err != nil {
//	    return err
//	}
//
// # References
//
//   - Cairo: https://cairographics.org/manual/cairo-Image-Surfaces.html
//   - HTML canvas drawImage / fillText semantics for compositing and anchors
package surface
