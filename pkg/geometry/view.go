package geometry

import "math"

// MaxZoom is the largest zoom for which the pixel distance 2^-zoom is still a
// nonzero float64. Past it every pixel would map onto the view center.
const MaxZoom = 1074

// Index is the integer width a host uses for pixel coordinates and canvas
// dimensions. Hosts built around 32-bit ABIs (wasm) use uint32; others may
// use uint64.
type Index interface {
	~uint32 | ~uint64
}

// View is the region of the plane being rendered: the point at the center of
// the canvas and how far in we are zoomed.
type View struct {
	Center Complex

	// Zoom sets plane units per pixel to 2^-Zoom. It is unsigned, so zooming
	// only ever makes pixels smaller.
	Zoom uint32
}

// Distance is the width of one pixel in plane units.
func (v View) Distance() float64 {
	return math.Ldexp(1, -int(v.Zoom))
}

// Canvas is the pixel grid reported by the host for one render pass.
type Canvas[T Index] struct {
	Width, Height T
}

// Empty is whether the canvas has no pixels.
func (c Canvas[T]) Empty() bool {
	return c.Width == 0 || c.Height == 0
}

// Center is the pixel that maps onto the view center.
func (c Canvas[T]) Center() (T, T) {
	return c.Width / 2, c.Height / 2
}
