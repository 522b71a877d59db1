// Package surface provides hosts that keep the rendered frame in memory.
package surface

import (
	"image"

	"github.com/willbeason/fractal-draw/pkg/geometry"
	"github.com/willbeason/fractal-draw/pkg/render"
	"github.com/willbeason/fractal-draw/pkg/theme"
)

// Image is a host backed by an RGBA pixel buffer. Every pixel drawn is
// opaque.
type Image[T geometry.Index] struct {
	img      *image.RGBA
	width    T
	height   T
	maxSteps uint64

	// OnProgress, if set, is called after each rendered row.
	OnProgress func(fraction float64)

	// OnPaint, if set, is called when a frame is complete. Its error is kept
	// and returned by Err.
	OnPaint func(img *image.RGBA) error

	err error
}

var (
	_ render.Host[uint32]     = (*Image[uint32])(nil)
	_ render.Host[uint64]     = (*Image[uint64])(nil)
	_ render.ProgressReporter = (*Image[uint32])(nil)
	_ render.Painter          = (*Image[uint32])(nil)
)

// NewImage creates a width x height surface reporting maxSteps as the step
// cap.
func NewImage[T geometry.Index](width, height T, maxSteps uint64) *Image[T] {
	return &Image[T]{
		img:      image.NewRGBA(image.Rect(0, 0, int(width), int(height))),
		width:    width,
		height:   height,
		maxSteps: maxSteps,
	}
}

// ForTheme creates a surface whose step cap is the one th is calibrated for.
func ForTheme[T geometry.Index](width, height T, th theme.Theme) *Image[T] {
	return NewImage(width, height, th.MaxSteps())
}

func (s *Image[T]) CanvasWidth() T   { return s.width }
func (s *Image[T]) CanvasHeight() T  { return s.height }
func (s *Image[T]) MaxSteps() uint64 { return s.maxSteps }

// DrawPixel stores the packed color at (x, y). Pixels outside the canvas
// are ignored.
func (s *Image[T]) DrawPixel(x, y T, color uint32) {
	if x >= s.width || y >= s.height {
		return
	}
	s.img.SetRGBA(int(x), int(y), theme.Unpack(color).RGBA())
}

func (s *Image[T]) ReportProgress(fraction float64) {
	if s.OnProgress != nil {
		s.OnProgress(fraction)
	}
}

func (s *Image[T]) Paint() {
	if s.OnPaint != nil {
		s.err = s.OnPaint(s.img)
	}
}

// Err is the error returned by the last OnPaint call, if any.
func (s *Image[T]) Err() error {
	return s.err
}

// RGBA is the pixel buffer. It is shared, not copied.
func (s *Image[T]) RGBA() *image.RGBA {
	return s.img
}
