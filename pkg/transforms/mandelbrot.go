package transforms

import "github.com/willbeason/fractal-draw/pkg/geometry"

// Mandelbrot is the quadratic recurrence z <- z² + c.
type Mandelbrot struct{}

func (Mandelbrot) Next(z, c geometry.Complex) geometry.Complex {
	return z.Square().Add(c)
}
