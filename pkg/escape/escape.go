// Package escape computes how long the orbit of a point under z <- z² + c
// takes to leave the disc of radius 2.
package escape

import (
	"github.com/willbeason/fractal-draw/pkg/geometry"
	"github.com/willbeason/fractal-draw/pkg/transforms"
)

// Bailout is the squared radius past which an orbit is known to diverge.
const Bailout = 4.0

// Result is the outcome of iterating a single point.
type Result struct {
	// Steps is how many times the recurrence was applied. It equals the cap
	// when the orbit did not escape.
	Steps uint64

	// Final is the last value of z.
	Final geometry.Complex
}

// Evaluate iterates z <- z² + c from z = 0 until |z|² >= Bailout or maxSteps
// iterations have run, whichever comes first.
func Evaluate(c geometry.Complex, maxSteps uint64) Result {
	var m transforms.Mandelbrot
	var z geometry.Complex
	steps := uint64(0)

	for z.NormSqr() < Bailout && steps < maxSteps {
		z = m.Next(z, c)
		steps++
	}

	return Result{Steps: steps, Final: z}
}
