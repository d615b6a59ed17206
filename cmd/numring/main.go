// Command numring overlays a ring of numbers on an image and writes the
// result to image_with_numbers.png.
//
// Usage:
//
//	numring -in photo.png -count 8 -direction counterclockwise -out ./build
//	numring -pick -params ring.yaml
//	numring -in photo.png -interactive
//
// Parameters come from the defaults, then a YAML parameter sheet (-params),
// then explicit flags, then interactive prompts (-interactive).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/gogpu/numring"
	"github.com/gogpu/numring/internal/logging"
	"github.com/gogpu/numring/text"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type options struct {
	in          string
	pick        bool
	params      string
	interactive bool
	out         string
	font        string
	shaper      string
	padding     int
	logFile     string
	debug       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("numring", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.in, "in", "", "input image (PNG, JPEG, GIF, BMP, TIFF, WebP)")
	fs.BoolVar(&opts.pick, "pick", false, "choose the input image with a file dialog")
	fs.StringVar(&opts.params, "params", "", "YAML parameter sheet")
	fs.BoolVar(&opts.interactive, "interactive", false, "prompt for every parameter")
	fs.StringVar(&opts.out, "out", ".", "output directory")
	fs.StringVar(&opts.font, "font", "", "TTF/OTF font file (default Go Regular)")
	fs.StringVar(&opts.shaper, "shaper", "builtin", "text shaper: builtin or harfbuzz")
	fs.IntVar(&opts.padding, "padding", numring.DefaultPadding, "white margin around the image, in pixels")
	fs.StringVar(&opts.logFile, "log-file", "", "also write JSON logs to this file, rotated")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fields := registerFieldFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	errColor := color.New(color.FgRed, color.Bold)
	fail := func(code int, format string, a ...any) int {
		errColor.Fprint(stderr, "error: ")
		fmt.Fprintf(stderr, format+"\n", a...)
		return code
	}

	if fs.NArg() > 0 {
		return fail(exitUsage, "unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if opts.in == "" && !opts.pick {
		return fail(exitUsage, "no input image: use -in or -pick")
	}

	logger := logging.New(logging.Config{
		Debug:    opts.debug,
		FilePath: opts.logFile,
		Console:  stderr,
	})
	defer logger.Sync()
	numring.SetLogger(logging.Slog(logger))
	defer numring.SetLogger(nil)

	raw := numring.DefaultInputs()
	if opts.params != "" {
		sheet, err := loadParams(opts.params)
		if err != nil {
			return fail(exitUsage, "%v", err)
		}
		raw = raw.Merge(sheet)
	}
	raw = fields.apply(fs, raw)

	if opts.interactive {
		var err error
		raw, err = promptInputs(ctx, surveyAsker{}, raw)
		if err != nil {
			if errors.Is(err, errAborted) {
				return fail(exitFailure, "aborted")
			}
			return fail(exitFailure, "prompt: %v", err)
		}
	}

	if _, err := numring.Resolve(raw); err != nil {
		reportParamErrors(stderr, err)
		return exitUsage
	}

	renderer, release, err := newRenderer(opts)
	if err != nil {
		return fail(exitUsage, "%v", err)
	}
	defer release()

	c := numring.NewController(
		numring.WithRenderer(renderer),
		numring.WithInitialInputs(raw),
	)

	path := opts.in
	if path == "" {
		path, err = pickImage()
		if errors.Is(err, errPickCanceled) {
			c.Cancel()
			return fail(exitFailure, "no image selected")
		}
		if err != nil {
			return fail(exitFailure, "file dialog: %v", err)
		}
	}

	pending, err := c.LoadFile(ctx, path)
	if err != nil {
		return fail(exitFailure, "%v", err)
	}
	if err := pending.Wait(ctx); err != nil {
		return fail(exitFailure, "load %s: %v", path, err)
	}

	written, err := c.ExportFile(opts.out)
	if err != nil {
		return fail(exitFailure, "%v", err)
	}

	drawn := 0
	for _, p := range c.Placements() {
		if p.Visible {
			drawn++
		}
	}
	img := c.Image()
	color.New(color.FgGreen).Fprint(stdout, "wrote ")
	fmt.Fprintf(stdout, "%s (%dx%d image, %d labels)\n", written,
		img.Width()+2*renderer.Padding(), img.Height()+2*renderer.Padding(), drawn)
	return exitOK
}

// newRenderer builds the renderer and selects the shaper from the flags.
// The returned release func restores the builtin shaper and closes a font
// loaded from -font.
func newRenderer(opts options) (*numring.Renderer, func(), error) {
	var shaper *text.GoTextShaper
	switch opts.shaper {
	case "builtin":
	case "harfbuzz":
		shaper = text.NewGoTextShaper()
	default:
		return nil, nil, fmt.Errorf("unknown shaper %q: want builtin or harfbuzz", opts.shaper)
	}

	ropts := []numring.RendererOption{numring.WithPadding(opts.padding)}
	var src *text.FontSource
	if opts.font != "" {
		var err error
		src, err = text.NewFontSourceFromFile(opts.font)
		if err != nil {
			return nil, nil, fmt.Errorf("load font: %w", err)
		}
		ropts = append(ropts, numring.WithFontSource(src))
	}

	if shaper != nil {
		text.SetShaper(shaper)
	} else {
		text.SetShaper(nil)
	}

	release := func() {
		text.SetShaper(nil)
		if src == nil {
			return
		}
		if shaper != nil {
			shaper.RemoveSource(src)
		}
		_ = src.Close()
	}
	return numring.NewRenderer(ropts...), release, nil
}
