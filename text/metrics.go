package text

// Metrics holds font metrics at a specific size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font.
	// Stored as a positive value.
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// CapHeight is the height of uppercase letters and digits.
	CapHeight float64
}

// LineHeight returns the total line height (ascent + descent + line gap).
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// MiddleOffset returns the distance to add to a vertical center line to
// reach the alphabetic baseline, so that the em box is centered on it.
// This matches the canvas "middle" text baseline.
func (m Metrics) MiddleOffset() float64 {
	return (m.Ascent - m.Descent) / 2
}
