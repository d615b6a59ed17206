package numring

import (
	"math"
	"strconv"
)

// DefaultPadding is the white margin, in pixels, added on every side of the
// source image.
const DefaultPadding = 50

// anchorYRatio places the anchor at 60% of the image height instead of the
// geometric center, biasing the ring toward the lower part of the image.
const anchorYRatio = 0.60

// LabelPlacement is one angular slot of a layout.
type LabelPlacement struct {
	// Index is the slot index in [0, count).
	Index int
	// Value is the number carried by the slot.
	Value int
	// Label is Value formatted for drawing.
	Label string
	// Angle is the slot angle in radians, rotation included.
	Angle float64
	// X and Y are the label center in surface coordinates.
	X, Y float64
	// Visible is false when the parity filter skips the slot.
	Visible bool
}

// Anchor returns the point the ring is centered on for an image of the given
// size drawn at (padding, padding).
func Anchor(width, height, padding int, cfg GenerationConfig) (x, y float64) {
	x = float64(padding) + float64(width)/2 + float64(cfg.CenterOffsetX)
	y = float64(padding) + float64(height)*anchorYRatio + float64(cfg.CenterOffsetY)
	return x, y
}

// Radius returns the ring radius: half the smaller image side plus the
// configured offset. It is not clamped and may be negative.
func Radius(width, height int, cfg GenerationConfig) float64 {
	base := math.Min(float64(width)/2, float64(height)/2)
	return base + float64(cfg.RadiusOffset)
}

// SlotValue returns the number carried by slot i.
//
// Clockwise rings number slots StartNumber+i. Counterclockwise rings number
// them StartNumber+(Count-1-i), so slot 0 carries the largest value.
func SlotValue(i int, cfg GenerationConfig) int {
	if cfg.Direction == Clockwise {
		return cfg.StartNumber + i
	}
	return cfg.StartNumber + (cfg.Count - 1 - i)
}

// FormatLabel renders v in decimal, left-padded with '0' to at least two
// characters. The sign counts toward the width: -1 stays "-1".
func FormatLabel(v int) string {
	s := strconv.Itoa(v)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

// Layout computes every slot of the ring for an image of the given size.
// It returns cfg.Count placements in slot order; slots rejected by the
// parity filter are present with Visible set to false.
func Layout(width, height, padding int, cfg GenerationConfig) []LabelPlacement {
	if cfg.Count <= 0 {
		return nil
	}

	cx, cy := Anchor(width, height, padding, cfg)
	radius := Radius(width, height, cfg)
	rotation := float64(cfg.RotationDegrees) * math.Pi / 180
	step := 2 * math.Pi / float64(cfg.Count)
	sign := cfg.Direction.sign()

	out := make([]LabelPlacement, cfg.Count)
	for i := range out {
		angle := rotation + float64(i)*step*sign
		value := SlotValue(i, cfg)
		out[i] = LabelPlacement{
			Index:   i,
			Value:   value,
			Label:   FormatLabel(value),
			Angle:   angle,
			X:       cx + radius*math.Cos(angle),
			Y:       cy + radius*math.Sin(angle),
			Visible: cfg.Parity.Allows(value),
		}
	}
	return out
}
