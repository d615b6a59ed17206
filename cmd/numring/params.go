package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/numring"
)

// fieldFlag binds one command-line flag to one form field.
type fieldFlag struct {
	name  string
	field string
	usage string
	set   func(*numring.RawInputs, string)
}

var fieldFlagTable = []fieldFlag{
	{"start", "startNumber", "first label value", func(r *numring.RawInputs, v string) { r.StartNumber = v }},
	{"direction", "direction", "clockwise or counterclockwise", func(r *numring.RawInputs, v string) { r.Direction = v }},
	{"rotation", "rotation", "rotation of slot 0, in degrees", func(r *numring.RawInputs, v string) { r.Rotation = v }},
	{"count", "numCount", "number of slots", func(r *numring.RawInputs, v string) { r.Count = v }},
	{"radius-offset", "radiusOffset", "pixels added to the ring radius", func(r *numring.RawInputs, v string) { r.RadiusOffset = v }},
	{"font-size", "fontSize", "label size in pixels", func(r *numring.RawInputs, v string) { r.FontSize = v }},
	{"color", "fontColor", "label color (hex, rgb(), or a color name)", func(r *numring.RawInputs, v string) { r.FontColor = v }},
	{"offset-x", "offsetX", "horizontal anchor offset in pixels", func(r *numring.RawInputs, v string) { r.OffsetX = v }},
	{"offset-y", "offsetY", "vertical anchor offset in pixels", func(r *numring.RawInputs, v string) { r.OffsetY = v }},
	{"filter", "evenOddFilter", "all, even, or odd", func(r *numring.RawInputs, v string) { r.EvenOddFilter = v }},
}

// fieldFlags holds the raw flag values for the form fields.
type fieldFlags map[string]*string

func registerFieldFlags(fs *flag.FlagSet) fieldFlags {
	defaults := numring.DefaultInputs()
	ff := make(fieldFlags, len(fieldFlagTable))
	for _, f := range fieldFlagTable {
		usage := fmt.Sprintf("%s (default %q)", f.usage, fieldValue(defaults, f.field))
		ff[f.name] = fs.String(f.name, "", usage)
	}
	return ff
}

// apply overlays the flags that were set explicitly on raw.
// A flag set to the empty string still overrides.
func (ff fieldFlags) apply(fs *flag.FlagSet, raw numring.RawInputs) numring.RawInputs {
	fs.Visit(func(fl *flag.Flag) {
		v, ok := ff[fl.Name]
		if !ok {
			return
		}
		for _, f := range fieldFlagTable {
			if f.name == fl.Name {
				f.set(&raw, *v)
			}
		}
	})
	return raw
}

// fieldValue reads a form field by name.
func fieldValue(raw numring.RawInputs, field string) string {
	switch field {
	case "startNumber":
		return raw.StartNumber
	case "direction":
		return raw.Direction
	case "rotation":
		return raw.Rotation
	case "numCount":
		return raw.Count
	case "radiusOffset":
		return raw.RadiusOffset
	case "fontSize":
		return raw.FontSize
	case "fontColor":
		return raw.FontColor
	case "offsetX":
		return raw.OffsetX
	case "offsetY":
		return raw.OffsetY
	case "evenOddFilter":
		return raw.EvenOddFilter
	}
	return ""
}

// flagForField maps a form field name to its flag name.
func flagForField(field string) string {
	for _, f := range fieldFlagTable {
		if f.field == field {
			return f.name
		}
	}
	return field
}

// loadParams reads a YAML parameter sheet. Keys are the form field names;
// numbers may be written bare or quoted. Unknown keys are rejected.
//
//	numCount: 8
//	direction: counterclockwise
//	fontColor: "#c00"
func loadParams(path string) (numring.RawInputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return numring.RawInputs{}, fmt.Errorf("read parameter sheet: %w", err)
	}
	return parseParams(data)
}

func parseParams(data []byte) (numring.RawInputs, error) {
	var raw numring.RawInputs
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return numring.RawInputs{}, fmt.Errorf("parse parameter sheet: %w", err)
	}
	return raw, nil
}
