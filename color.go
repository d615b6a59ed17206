package numring

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
)

// ParseColor parses a CSS color string as accepted by a canvas fillStyle:
//   - hex: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" (leading '#' optional)
//   - functional: "rgb(255, 0, 0)", "rgba(255, 0, 0, 0.5)"
//   - named: the SVG 1.1 keywords known to golang.org/x/image/colornames,
//     plus "transparent"
//
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseColor(s string) (RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return RGBA{}, errors.New("numring: empty color")
	}

	if v == "transparent" {
		return RGBA{}, nil
	}
	if c, ok := colornames.Map[v]; ok {
		return FromColor(c), nil
	}
	if strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba(") {
		return parseFunctional(v)
	}
	return parseHex(v)
}

// parseHex supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func parseHex(hex string) (RGBA, error) {
	h := strings.TrimPrefix(hex, "#")

	var digits []uint64
	for i := 0; i < len(h); i++ {
		d, err := strconv.ParseUint(h[i:i+1], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("numring: invalid hex color %q", hex)
		}
		digits = append(digits, d)
	}

	var r, g, b, a uint64 = 0, 0, 0, 255
	switch len(digits) {
	case 3:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
	case 4:
		r, g, b, a = digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17
	case 6:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
	case 8:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		a = digits[6]<<4 | digits[7]
	default:
		return RGBA{}, fmt.Errorf("numring: invalid hex color %q", hex)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// parseFunctional parses "rgb(r, g, b)" and "rgba(r, g, b, a)".
// Channels are 0-255 or percentages; alpha is 0-1 or a percentage.
func parseFunctional(v string) (RGBA, error) {
	open := strings.IndexByte(v, '(')
	if !strings.HasSuffix(v, ")") {
		return RGBA{}, fmt.Errorf("numring: invalid color %q", v)
	}

	parts := strings.Split(v[open+1:len(v)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, fmt.Errorf("numring: invalid color %q", v)
	}

	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		p = strings.TrimSpace(p)
		scale := 255.0
		if i == 3 {
			scale = 1
		}
		if strings.HasSuffix(p, "%") {
			p = strings.TrimSuffix(p, "%")
			scale = 100
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return RGBA{}, fmt.Errorf("numring: invalid color %q", v)
		}
		ch[i] = clamp01(f / scale)
	}

	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
