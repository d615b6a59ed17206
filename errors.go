package numring

import (
	"errors"
	"fmt"
)

// Sentinel errors for numring.
var (
	// ErrInvalidParameter is returned when a raw input fails to parse or
	// fails a range check. The render is skipped.
	ErrInvalidParameter = errors.New("numring: invalid parameter")

	// ErrNoImageLoaded is returned by render and export requests made
	// before an image has been decoded successfully.
	ErrNoImageLoaded = errors.New("numring: no image loaded")

	// ErrImageDecode is returned when the selected data is not a decodable image.
	ErrImageDecode = errors.New("numring: image decode failure")

	// ErrLoadSuperseded is reported by Pending.Wait when a later load or a
	// cancel replaced the load before it completed.
	ErrLoadSuperseded = errors.New("numring: load superseded")
)

// ParamError describes a single rejected input field.
// It matches ErrInvalidParameter with errors.Is.
type ParamError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("numring: invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidParameter.
func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

// DecodeError wraps the codec error for an image that could not be decoded.
// It matches ErrImageDecode with errors.Is.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "numring: image decode failure: " + e.Err.Error()
}

// Unwrap returns the underlying codec error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrImageDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrImageDecode
}
