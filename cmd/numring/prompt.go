package main

import (
	"context"
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/gogpu/numring"
)

// errAborted signals the user aborted the prompts (Ctrl+C).
var errAborted = errors.New("numring: aborted")

// asker runs a list of questions. surveyAsker talks to the terminal; tests
// substitute a scripted one.
type asker interface {
	Ask(qs []*survey.Question, response any) error
}

type surveyAsker struct{}

func (surveyAsker) Ask(qs []*survey.Question, response any) error {
	return survey.Ask(qs, response)
}

// answers mirrors RawInputs with survey tags.
type answers struct {
	StartNumber   string `survey:"startNumber"`
	Direction     string `survey:"direction"`
	Rotation      string `survey:"rotation"`
	Count         string `survey:"numCount"`
	RadiusOffset  string `survey:"radiusOffset"`
	FontSize      string `survey:"fontSize"`
	FontColor     string `survey:"fontColor"`
	OffsetX       string `survey:"offsetX"`
	OffsetY       string `survey:"offsetY"`
	EvenOddFilter string `survey:"evenOddFilter"`
}

func (a answers) inputs() numring.RawInputs {
	return numring.RawInputs(a)
}

// promptInputs asks for every field, offering raw as the defaults.
func promptInputs(ctx context.Context, a asker, raw numring.RawInputs) (numring.RawInputs, error) {
	if err := ctx.Err(); err != nil {
		return raw, err
	}

	ans := answers(raw)
	if err := a.Ask(questions(raw), &ans); err != nil {
		return raw, translateSurveyErr(err)
	}
	return ans.inputs(), nil
}

func questions(raw numring.RawInputs) []*survey.Question {
	input := func(field, msg, def string) *survey.Question {
		return &survey.Question{
			Name:     field,
			Prompt:   &survey.Input{Message: msg, Default: def},
			Validate: fieldValidator(field),
		}
	}

	return []*survey.Question{
		input("startNumber", "Start number:", raw.StartNumber),
		{
			Name: "direction",
			Prompt: &survey.Select{
				Message: "Direction:",
				Options: []string{"clockwise", "counterclockwise"},
				Default: directionOption(raw.Direction),
			},
		},
		input("rotation", "Rotation (degrees):", raw.Rotation),
		input("numCount", "Number of slots:", raw.Count),
		input("radiusOffset", "Radius offset (px):", raw.RadiusOffset),
		input("fontSize", "Font size (px):", raw.FontSize),
		{
			Name:   "fontColor",
			Prompt: &survey.Input{Message: "Font color:", Default: raw.FontColor, Help: "hex, rgb(), or a color name; invalid colors draw black"},
		},
		input("offsetX", "Center offset X (px):", raw.OffsetX),
		input("offsetY", "Center offset Y (px):", raw.OffsetY),
		{
			Name: "evenOddFilter",
			Prompt: &survey.Select{
				Message: "Show numbers:",
				Options: []string{"all", "even", "odd"},
				Default: filterOption(raw.EvenOddFilter),
			},
		},
	}
}

// fieldValidator checks one answer with the same rules Resolve applies.
func fieldValidator(field string) survey.Validator {
	return func(ans any) error {
		s, _ := ans.(string)
		raw := numring.DefaultInputs()
		for _, f := range fieldFlagTable {
			if f.field == field {
				f.set(&raw, s)
			}
		}
		_, err := numring.Resolve(raw)
		return err
	}
}

func directionOption(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "clockwise", "cw":
		return "clockwise"
	default:
		return "counterclockwise"
	}
}

func filterOption(v string) string {
	switch v = strings.ToLower(strings.TrimSpace(v)); v {
	case "even", "odd":
		return v
	default:
		return "all"
	}
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}
