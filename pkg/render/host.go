package render

import "github.com/willbeason/fractal-draw/pkg/geometry"

// Host is the surface a Renderer draws on. T is the integer width the host
// uses for pixel coordinates.
//
// Hosts are not required to be safe for concurrent use; a Renderer calls
// them from a single goroutine.
type Host[T geometry.Index] interface {
	CanvasWidth() T
	CanvasHeight() T

	// MaxSteps is the iteration cap for the pass. It must be nonzero.
	MaxSteps() uint64

	// DrawPixel sets pixel (x, y) to a color packed as red | green<<8 | blue<<16.
	DrawPixel(x, y T, color uint32)
}

// ProgressReporter is implemented by hosts that want to hear how far a
// render pass has got.
type ProgressReporter interface {
	// ReportProgress is called after each row with the fraction of rows done
	// before it, in [0, 1).
	ReportProgress(fraction float64)
}

// Painter is implemented by hosts that present the frame once every pixel
// has been drawn.
type Painter interface {
	Paint()
}
