// Package render draws an escape-time fractal onto a host surface.
//
// For each pixel, row by row from the top and left to right, a Renderer maps
// the pixel into the plane, iterates z <- z² + c there, colors the step count
// with its theme and hands the packed color to the host.
package render

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/willbeason/fractal-draw/pkg/escape"
	"github.com/willbeason/fractal-draw/pkg/geometry"
	"github.com/willbeason/fractal-draw/pkg/theme"
)

var (
	// ErrNoTheme is returned by a Renderer whose Theme was not made by theme.New.
	ErrNoTheme = errors.New("renderer has no theme")

	// ErrNoSteps is returned when the host's step cap is zero.
	ErrNoSteps = errors.New("host reported zero max steps")

	// ErrZoomUnderflow is returned for zooms past geometry.MaxZoom.
	ErrZoomUnderflow = errors.New("zoom is too deep for float64 pixels")
)

// A Renderer draws views onto one host. It is not safe for concurrent use.
type Renderer[T geometry.Index] struct {
	Host  Host[T]
	Theme theme.Theme

	// Offsets controls how pixel offsets from the canvas center are computed.
	// The zero value is geometry.SignedOffsets.
	Offsets geometry.OffsetMode
}

// New creates a Renderer drawing onto host with th.
func New[T geometry.Index](host Host[T], th theme.Theme) *Renderer[T] {
	return &Renderer[T]{Host: host, Theme: th}
}

// RenderXY renders the view centered on (x, y) at zoom.
func (r *Renderer[T]) RenderXY(x, y float64, zoom uint32) error {
	return r.Render(geometry.Complex{Re: x, Im: y}, zoom)
}

// Render draws the view centered on target at zoom, one pixel at a time.
//
// The canvas size and step cap are read from the host once, before the first
// pixel. An empty canvas draws nothing but is still painted. Render returns an
// error without drawing if zoom is past geometry.MaxZoom or the host reports a
// zero step cap.
func (r *Renderer[T]) Render(target geometry.Complex, zoom uint32) error {
	if r.Theme.MaxSteps() == 0 {
		return ErrNoTheme
	}
	if zoom > geometry.MaxZoom {
		return fmt.Errorf("zoom %d: %w", zoom, ErrZoomUnderflow)
	}

	canvas := geometry.Canvas[T]{
		Width:  r.Host.CanvasWidth(),
		Height: r.Host.CanvasHeight(),
	}
	maxSteps := r.Host.MaxSteps()
	if maxSteps == 0 {
		return ErrNoSteps
	}

	view := geometry.View{Center: target, Zoom: zoom}
	mapper := geometry.NewMapper(canvas, view, r.Offsets)

	progress, _ := r.Host.(ProgressReporter)
	painter, _ := r.Host.(Painter)

	if canvas.Empty() {
		if painter != nil {
			painter.Paint()
		}
		return nil
	}

	logger := Logger()
	start := time.Now()
	logger.Debug("render started",
		slog.Group("canvas", "width", uint64(canvas.Width), "height", uint64(canvas.Height)),
		slog.Float64("x", target.Re),
		slog.Float64("y", target.Im),
		slog.Uint64("zoom", uint64(zoom)),
		slog.Uint64("max_steps", maxSteps),
		slog.Float64("distance", mapper.Distance()),
		slog.String("theme", r.Theme.Variant().String()),
		slog.String("offsets", r.Offsets.String()),
	)

	for y := T(0); y < canvas.Height; y++ {
		for x := T(0); x < canvas.Width; x++ {
			c := mapper.Map(x, y)
			result := escape.Evaluate(c, maxSteps)
			r.Host.DrawPixel(x, y, r.Theme.ColorFor(result.Steps, c).Pack())
		}

		if progress != nil {
			progress.ReportProgress(float64(y) / float64(canvas.Height))
		}
	}

	if painter != nil {
		painter.Paint()
	}

	logger.Debug("render finished", slog.Duration("elapsed", time.Since(start)))
	return nil
}
