package numring

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

// Resolve validates raw control values and builds a GenerationConfig.
//
// Integer fields are read the way an HTML form handler using
// parseInt(value, 10) reads them: surrounding whitespace is ignored, an
// optional sign is accepted, and parsing stops at the first non-digit
// ("12px" is 12, "3.7" is 3). Fullwidth digits are folded to ASCII first.
// A field without leading digits is rejected, as are Count <= 0 and
// FontSize <= 0.
//
// Direction is clockwise for "clockwise" or "cw" (any case) and
// counterclockwise for anything else. EvenOddFilter is "even", "odd", or
// all. An unparseable FontColor falls back to opaque black.
//
// On failure the returned error matches ErrInvalidParameter and joins one
// *ParamError per rejected field. Resolve has no side effects beyond
// debug logging.
func Resolve(raw RawInputs) (GenerationConfig, error) {
	var (
		cfg  GenerationConfig
		errs []error
	)

	readInt := func(field, value string, dst *int, positive bool) {
		n, reason := parseLeadingInt(value)
		switch {
		case reason != "":
			errs = append(errs, &ParamError{Field: field, Value: value, Reason: reason})
		case positive && n <= 0:
			errs = append(errs, &ParamError{Field: field, Value: value, Reason: "must be greater than zero"})
		default:
			*dst = n
		}
	}

	readInt("startNumber", raw.StartNumber, &cfg.StartNumber, false)
	readInt("rotation", raw.Rotation, &cfg.RotationDegrees, false)
	readInt("numCount", raw.Count, &cfg.Count, true)
	readInt("radiusOffset", raw.RadiusOffset, &cfg.RadiusOffset, false)
	readInt("fontSize", raw.FontSize, &cfg.FontSizePx, true)
	readInt("offsetX", raw.OffsetX, &cfg.CenterOffsetX, false)
	readInt("offsetY", raw.OffsetY, &cfg.CenterOffsetY, false)

	if len(errs) > 0 {
		return GenerationConfig{}, errors.Join(errs...)
	}

	cfg.Direction = parseDirection(raw.Direction)
	cfg.Parity = parseParity(raw.EvenOddFilter)

	c, err := ParseColor(raw.FontColor)
	if err != nil {
		Logger().Debug("numring: font color fallback to black",
			"value", raw.FontColor, "error", err)
		c = Black
	}
	cfg.FontColor = c

	return cfg, nil
}

// parseLeadingInt returns the integer formed by the optional sign and
// leading decimal digits of s. The second result is a non-empty reason
// when no integer can be read.
func parseLeadingInt(s string) (int, string) {
	v := strings.TrimSpace(width.Narrow.String(s))

	end := 0
	if end < len(v) && (v[end] == '+' || v[end] == '-') {
		end++
	}
	digits := end
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, "not an integer"
	}

	n, err := strconv.Atoi(v[:end])
	if err != nil {
		return 0, "out of range"
	}
	return n, ""
}

// parseDirection maps a form value to a Direction.
func parseDirection(s string) Direction {
	switch fold(s) {
	case "clockwise", "cw":
		return Clockwise
	default:
		return Counterclockwise
	}
}

// parseParity maps a form value to a Parity.
func parseParity(s string) Parity {
	switch fold(s) {
	case "even":
		return ParityEven
	case "odd":
		return ParityOdd
	default:
		return ParityAll
	}
}

// fold trims and case-folds s. A Caser is stateful, so one is made per call.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
