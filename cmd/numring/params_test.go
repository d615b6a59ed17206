package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/numring"
)

func TestParseParams(t *testing.T) {
	sheet := []byte(`
startNumber: 0
direction: counterclockwise
numCount: 8
fontColor: "#c00"
offsetY: -15
`)
	got, err := parseParams(sheet)
	if err != nil {
		t.Fatalf("parseParams: %v", err)
	}

	want := numring.RawInputs{
		StartNumber: "0",
		Direction:   "counterclockwise",
		Count:       "8",
		FontColor:   "#c00",
		OffsetY:     "-15",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseParams mismatch (-want +got):\n%s", diff)
	}
}

func TestParseParamsEmpty(t *testing.T) {
	got, err := parseParams(nil)
	if err != nil {
		t.Fatalf("parseParams: %v", err)
	}
	if got != (numring.RawInputs{}) {
		t.Errorf("parseParams(nil) = %+v, want zero", got)
	}
}

func TestParseParamsUnknownKey(t *testing.T) {
	if _, err := parseParams([]byte("numCount: 4\nspeed: 9\n")); err == nil {
		t.Error("unknown key accepted")
	}
}

func TestFieldFlagsOverlay(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	ff := registerFieldFlags(fs)

	if err := fs.Parse([]string{"-count", "6", "-filter", "odd", "-color="}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	base := numring.DefaultInputs().Merge(numring.RawInputs{Rotation: "45", FontColor: "red"})
	got := ff.apply(fs, base)

	want := base
	want.Count = "6"
	want.EvenOddFilter = "odd"
	want.FontColor = ""
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("overlay mismatch (-want +got):\n%s", diff)
	}
}

func TestFlagForField(t *testing.T) {
	tests := map[string]string{
		"numCount":      "count",
		"radiusOffset":  "radius-offset",
		"evenOddFilter": "filter",
		"other":         "other",
	}
	for field, want := range tests {
		if got := flagForField(field); got != want {
			t.Errorf("flagForField(%q) = %q, want %q", field, got, want)
		}
	}
}

// scriptedAsker fills answers without a terminal.
type scriptedAsker struct {
	edit func(*answers)
	err  error
	seen []string
}

func (s *scriptedAsker) Ask(qs []*survey.Question, response any) error {
	for _, q := range qs {
		s.seen = append(s.seen, q.Name)
	}
	if s.err != nil {
		return s.err
	}
	s.edit(response.(*answers))
	return nil
}

func TestPromptInputs(t *testing.T) {
	a := &scriptedAsker{edit: func(ans *answers) {
		ans.Count = "5"
		ans.Direction = "counterclockwise"
	}}

	got, err := promptInputs(context.Background(), a, numring.DefaultInputs())
	if err != nil {
		t.Fatalf("promptInputs: %v", err)
	}

	want := numring.DefaultInputs()
	want.Count = "5"
	want.Direction = "counterclockwise"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("promptInputs mismatch (-want +got):\n%s", diff)
	}
	if len(a.seen) != 10 {
		t.Errorf("asked %d questions, want 10", len(a.seen))
	}
}

func TestPromptInputsInterrupted(t *testing.T) {
	a := &scriptedAsker{err: terminal.InterruptErr}
	_, err := promptInputs(context.Background(), a, numring.DefaultInputs())
	if !errors.Is(err, errAborted) {
		t.Errorf("err = %v, want errAborted", err)
	}
}

func TestFieldValidator(t *testing.T) {
	v := fieldValidator("numCount")
	if err := v("12"); err != nil {
		t.Errorf("valid count rejected: %v", err)
	}
	if err := v("0"); !errors.Is(err, numring.ErrInvalidParameter) {
		t.Errorf("zero count = %v, want ErrInvalidParameter", err)
	}
}

func TestPromptDefaults(t *testing.T) {
	if got := directionOption("CW"); got != "clockwise" {
		t.Errorf("directionOption(CW) = %q", got)
	}
	if got := directionOption("backwards"); got != "counterclockwise" {
		t.Errorf("directionOption(backwards) = %q", got)
	}
	if got := filterOption(" Even "); got != "even" {
		t.Errorf("filterOption(Even) = %q", got)
	}
	if got := filterOption("prime"); got != "all" {
		t.Errorf("filterOption(prime) = %q", got)
	}
}
