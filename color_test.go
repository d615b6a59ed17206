package numring

import (
	"image/color"
	"testing"
)

// TestParseColor tests the accepted CSS color notations.
func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{0, 0, 0, 255}},
		{"#ff8000", color.NRGBA{255, 128, 0, 255}},
		{"FF8000", color.NRGBA{255, 128, 0, 255}},
		{"#f80", color.NRGBA{255, 136, 0, 255}},
		{"#f808", color.NRGBA{255, 136, 0, 136}},
		{"#ff800080", color.NRGBA{255, 128, 0, 128}},
		{"red", color.NRGBA{255, 0, 0, 255}},
		{" Navy ", color.NRGBA{0, 0, 128, 255}},
		{"rgb(10, 20, 30)", color.NRGBA{10, 20, 30, 255}},
		{"rgba(10,20,30,0.5)", color.NRGBA{10, 20, 30, 128}},
		{"rgb(100%, 0%, 50%)", color.NRGBA{255, 0, 128, 255}},
		{"transparent", color.NRGBA{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got := c.Color().(color.NRGBA); got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestParseColorInvalid tests rejected color strings.
func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "#12", "#12345", "#gggggg", "rgb(1,2)", "rgb(1,2,3", "rgb(a,b,c)", "notacolor"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", in)
		}
	}
}

// TestFromColor tests conversion from premultiplied colors.
func TestFromColor(t *testing.T) {
	c := FromColor(color.RGBA{128, 0, 0, 128})
	if got := c.Color().(color.NRGBA); got.R != 255 || got.A != 128 {
		t.Errorf("FromColor round trip = %v, want R=255 A=128", got)
	}
}
