package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/fractal-draw/pkg/geometry"
	"github.com/willbeason/fractal-draw/pkg/render"
	"github.com/willbeason/fractal-draw/pkg/surface"
	"github.com/willbeason/fractal-draw/pkg/theme"
)

const (
	// The browser host sizes its canvas at 3:2.
	Width  = 960
	Height = 640

	// Zoom 8 puts 256 pixels on one unit of the plane, which fits the whole
	// set on the default canvas.
	Zoom = 8

	CenterX = -0.5
	CenterY = 0.0
)

type options struct {
	x, y          float64
	zoom          uint32
	width, height uint32
	maxSteps      uint64

	theme     string
	offsets   string
	indexBits int

	out      string
	format   string
	logLevel string
}

func mainCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render an escape-time view of the Mandelbrot set to an image file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.x, "x", CenterX, "real part of the view center")
	flags.Float64Var(&opts.y, "y", CenterY, "imaginary part of the view center")
	flags.Uint32Var(&opts.zoom, "zoom", Zoom, "each pixel is 2^-zoom units of the plane wide")
	flags.Uint32Var(&opts.width, "width", Width, "canvas width in pixels")
	flags.Uint32Var(&opts.height, "height", Height, "canvas height in pixels")
	flags.Uint64Var(&opts.maxSteps, "max-steps", 0, "iteration cap; 0 uses the theme's")
	flags.StringVar(&opts.theme, "theme", theme.Default.String(),
		"color theme: simple, red, green, blue or position")
	flags.StringVar(&opts.offsets, "offsets", geometry.SignedOffsets.String(),
		"pixel offset arithmetic: signed, or wrapping to reproduce the unsigned wrap-around artifact")
	flags.IntVar(&opts.indexBits, "index-bits", 32, "width of pixel coordinates: 32 or 64")
	flags.StringVarP(&opts.out, "out", "o", "", "output file; defaults to out/<timestamp>.<format>")
	flags.StringVar(&opts.format, "format", surface.PNG.String(), "output format: png, bmp or tiff")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	var level slog.Level
	err := level.UnmarshalText([]byte(opts.logLevel))
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	variant, err := theme.ParseVariant(opts.theme)
	if err != nil {
		return fmt.Errorf("--theme: %w", err)
	}

	th, err := theme.New(variant)
	if err != nil {
		return err
	}

	offsets, err := geometry.ParseOffsetMode(opts.offsets)
	if err != nil {
		return fmt.Errorf("--offsets: %w", err)
	}

	format, err := surface.ParseFormat(strings.ToLower(opts.format))
	if err != nil {
		return fmt.Errorf("--format: %w", err)
	}

	// Image formats cannot hold an empty frame.
	if opts.width == 0 || opts.height == 0 {
		return fmt.Errorf("--width and --height must be positive, got %dx%d", opts.width, opts.height)
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)
	defer render.SetLogger(nil)

	out := opts.out
	if out == "" {
		out = fmt.Sprintf("out/%s%s", time.Now().Format("20060102150405"), format.Extension())
	}

	switch opts.indexBits {
	case 32:
		err = renderFile[uint32](logger, opts, th, offsets, format, out)
	case 64:
		err = renderFile[uint64](logger, opts, th, offsets, format, out)
	default:
		err = fmt.Errorf("--index-bits: got %d, want 32 or 64", opts.indexBits)
	}
	if err != nil {
		return err
	}

	logger.Info("wrote image", slog.String("path", out))
	return nil
}

// progressEvery is how often, as a fraction of rows, progress is logged.
const progressEvery = 0.1

func renderFile[T geometry.Index](
	logger *slog.Logger,
	opts *options,
	th theme.Theme,
	offsets geometry.OffsetMode,
	format surface.Format,
	out string,
) error {
	maxSteps := opts.maxSteps
	if maxSteps == 0 {
		maxSteps = th.MaxSteps()
	}
	s := surface.NewImage(T(opts.width), T(opts.height), maxSteps)

	next := 0.0
	s.OnProgress = func(fraction float64) {
		if fraction >= next {
			logger.Debug("rendering", slog.Float64("progress", fraction))
			next = fraction + progressEvery
		}
	}
	s.OnPaint = func(img *image.RGBA) error {
		return surface.WriteFile(out, img, format)
	}

	r := render.New[T](s, th)
	r.Offsets = offsets

	err := r.RenderXY(opts.x, opts.y, opts.zoom)
	if err != nil {
		return err
	}

	return s.Err()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
