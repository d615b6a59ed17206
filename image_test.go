package numring

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// TestDecodeFormats tests the registered decoders.
func TestDecodeFormats(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 9, 7))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}

	tests := []struct {
		format string
		encode func(*bytes.Buffer) error
	}{
		{"png", func(b *bytes.Buffer) error { return png.Encode(b, src) }},
		{"jpeg", func(b *bytes.Buffer) error { return jpeg.Encode(b, src, nil) }},
		{"gif", func(b *bytes.Buffer) error { return gif.Encode(b, src, nil) }},
		{"bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, src) }},
		{"tiff", func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf); err != nil {
				t.Fatalf("encode: %v", err)
			}
			img, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if img.Width() != 9 || img.Height() != 7 {
				t.Errorf("size = %dx%d, want 9x7", img.Width(), img.Height())
			}
			if img.Format() != tt.format {
				t.Errorf("Format = %q, want %q", img.Format(), tt.format)
			}
		})
	}
}

// TestDecodeInvalid tests decode failures.
func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("GIF89a-truncated")))
	if !errors.Is(err, ErrImageDecode) {
		t.Errorf("Decode err = %v, want ErrImageDecode", err)
	}

	_, err = NewSourceImage(image.NewRGBA(image.Rect(0, 0, 0, 5)))
	if !errors.Is(err, ErrImageDecode) {
		t.Errorf("empty image err = %v, want ErrImageDecode", err)
	}

	if _, err := NewSourceImage(nil); err == nil {
		t.Error("NewSourceImage(nil) succeeded")
	}
}

// TestDecodeFile tests decoding from disk.
func TestDecodeFile(t *testing.T) {
	if _, err := DecodeFile("does-not-exist.png"); err == nil {
		t.Error("DecodeFile of a missing file succeeded")
	}
}
