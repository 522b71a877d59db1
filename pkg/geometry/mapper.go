package geometry

import "fmt"

// OffsetMode is how a pixel's offset from the canvas center is computed.
type OffsetMode int

const (
	// SignedOffsets subtracts in a signed domain, so pixels left of or above
	// the center get negative offsets.
	SignedOffsets OffsetMode = iota

	// WrappingOffsets subtracts in the host's unsigned index type. Pixels left
	// of or above the center wrap around to huge positive offsets, which mirrors
	// and tiles the image. Only useful to reproduce that artifact.
	WrappingOffsets
)

func (m OffsetMode) String() string {
	switch m {
	case SignedOffsets:
		return "signed"
	case WrappingOffsets:
		return "wrapping"
	default:
		return fmt.Sprintf("OffsetMode(%d)", int(m))
	}
}

// ParseOffsetMode is the inverse of OffsetMode.String.
func ParseOffsetMode(s string) (OffsetMode, error) {
	switch s {
	case "signed":
		return SignedOffsets, nil
	case "wrapping":
		return WrappingOffsets, nil
	default:
		return 0, fmt.Errorf("unknown offset mode %q", s)
	}
}

// offset is p - half, in plane pixels.
func offset[T Index](p, half T, mode OffsetMode) float64 {
	if mode == WrappingOffsets {
		return float64(p - half)
	}
	return float64(p) - float64(half)
}

// MapPixel returns the point in the plane under pixel (x, y) of canvas when
// looking at view. The canvas center pixel (Width/2, Height/2) always maps to
// view.Center.
func MapPixel[T Index](x, y T, canvas Canvas[T], view View) Complex {
	return NewMapper(canvas, view, SignedOffsets).Map(x, y)
}

// A Mapper converts pixels of one canvas to points of one view. It holds the
// per-pass values so that Map does only the per-pixel arithmetic.
type Mapper[T Index] struct {
	view     View
	mode     OffsetMode
	distance float64
	halfW    T
	halfH    T
}

// NewMapper creates a Mapper for a single render pass.
func NewMapper[T Index](canvas Canvas[T], view View, mode OffsetMode) Mapper[T] {
	halfW, halfH := canvas.Center()
	return Mapper[T]{
		view:     view,
		mode:     mode,
		distance: view.Distance(),
		halfW:    halfW,
		halfH:    halfH,
	}
}

// Distance is the width of one pixel in plane units.
func (m Mapper[T]) Distance() float64 {
	return m.distance
}

// Map returns the point under pixel (x, y).
func (m Mapper[T]) Map(x, y T) Complex {
	dx := offset(x, m.halfW, m.mode)
	dy := offset(y, m.halfH, m.mode)

	return Complex{
		Re: m.view.Center.Re + dx*m.distance,
		Im: m.view.Center.Im + dy*m.distance,
	}
}
