// Package theme maps the outcome of an escape-time iteration to a color.
//
// A theme is one of a closed set of variants. The variant a binary uses by
// default is fixed when it is built, by build tag:
//
//	(no tag)        simple: gray level = steps mod 256
//	theme_red       red channel = steps mod 256
//	theme_green     green channel = steps mod 256
//	theme_blue      blue channel = steps mod 256
//	theme_position  red and blue from the point, green from steps
//	theme_demo      unimplemented; New fails
//
// Hosts may pick another variant once at startup. The color function is
// resolved when the Theme is created and is never switched per pixel.
package theme

import (
	"errors"
	"fmt"
	"math"

	"github.com/willbeason/fractal-draw/pkg/geometry"
)

var (
	// ErrUnimplemented is returned when selecting a variant that has no color
	// mapping.
	ErrUnimplemented = errors.New("unimplemented theme")

	// ErrUnknownVariant is returned for a name or value that is not a variant.
	ErrUnknownVariant = errors.New("unknown theme")
)

// Variant names one theme.
type Variant int

const (
	Grayscale Variant = iota
	Red
	Green
	Blue
	Position

	// Demo is a placeholder that was never given a color mapping.
	Demo
)

var variantNames = [...]string{
	Grayscale: "simple",
	Red:       "red",
	Green:     "green",
	Blue:      "blue",
	Position:  "position",
	Demo:      "demo",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Variants lists every variant, implemented or not.
func Variants() []Variant {
	return []Variant{Grayscale, Red, Green, Blue, Position, Demo}
}

// ParseVariant returns the variant with the given name. "grayscale" is
// accepted as another name for "simple".
func ParseVariant(name string) (Variant, error) {
	if name == "grayscale" {
		return Grayscale, nil
	}
	for v, n := range variantNames {
		if n == name {
			return Variant(v), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownVariant, name)
}

// Implemented is whether v has a color mapping.
func (v Variant) Implemented() bool {
	return v >= Grayscale && v < Demo
}

// ColorFunc colors a pixel from its step count and a point in the plane.
type ColorFunc func(steps uint64, point geometry.Complex) Color

type definition struct {
	maxSteps uint64
	color    ColorFunc
}

// Every variant is calibrated for step counts in [0, 256].
var definitions = [...]definition{
	Grayscale: {maxSteps: 256, color: gray},
	Red:       {maxSteps: 256, color: red},
	Green:     {maxSteps: 256, color: green},
	Blue:      {maxSteps: 256, color: blue},
	Position:  {maxSteps: 256, color: position},
	Demo:      {maxSteps: 256, color: demo},
}

// Theme is a resolved variant. The zero Theme is not usable; call New.
type Theme struct {
	variant  Variant
	maxSteps uint64
	color    ColorFunc
}

// New resolves v. It fails with ErrUnimplemented for Demo.
func New(v Variant) (Theme, error) {
	if v < 0 || int(v) >= len(definitions) {
		return Theme{}, fmt.Errorf("%w: %v", ErrUnknownVariant, v)
	}
	if !v.Implemented() {
		return Theme{}, fmt.Errorf("theme %q: %w", v, ErrUnimplemented)
	}

	d := definitions[v]
	return Theme{variant: v, maxSteps: d.maxSteps, color: d.color}, nil
}

// NewDefault resolves the variant selected at build time.
func NewDefault() (Theme, error) {
	return New(Default)
}

func (t Theme) Variant() Variant {
	return t.variant
}

// MaxSteps is the iteration cap this theme's colors are calibrated for.
func (t Theme) MaxSteps() uint64 {
	return t.maxSteps
}

// ColorFor colors a pixel whose orbit took steps iterations. point is the
// pixel's position in the plane.
func (t Theme) ColorFor(steps uint64, point geometry.Complex) Color {
	return t.color(steps, point)
}

func gray(steps uint64, _ geometry.Complex) Color {
	level := uint8(steps)
	return Color{Red: level, Green: level, Blue: level}
}

func red(steps uint64, _ geometry.Complex) Color {
	return Color{Red: uint8(steps)}
}

func green(steps uint64, _ geometry.Complex) Color {
	return Color{Green: uint8(steps)}
}

func blue(steps uint64, _ geometry.Complex) Color {
	return Color{Blue: uint8(steps)}
}

// position spreads |Re| and |Im| over [0, 2] across the red and blue
// channels.
func position(steps uint64, point geometry.Complex) Color {
	return Color{
		Red:   saturate(math.Abs(point.Re) * 256 / 2),
		Green: uint8(steps),
		Blue:  saturate(math.Abs(point.Im) * 256 / 2),
	}
}

func demo(uint64, geometry.Complex) Color {
	panic(fmt.Errorf("theme %q: %w", Demo, ErrUnimplemented))
}

// saturate converts f to a byte, clamping to [0, 255]. NaN becomes 0.
func saturate(f float64) uint8 {
	switch {
	case f >= math.MaxUint8:
		return math.MaxUint8
	case f > 0:
		return uint8(f)
	default:
		return 0
	}
}
