package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidSize is returned when a face is requested with a non-positive size.
	ErrInvalidSize = errors.New("text: face size must be positive")

	// ErrSourceClosed is reported by faces whose FontSource was closed.
	ErrSourceClosed = errors.New("text: font source closed")
)
