package theme

import "image/color"

// Color is a 24-bit RGB color.
type Color struct {
	Red, Green, Blue uint8
}

// Pack encodes c for the host as red | green<<8 | blue<<16. The top byte is
// always zero.
func (c Color) Pack() uint32 {
	return uint32(c.Red) | uint32(c.Green)<<8 | uint32(c.Blue)<<16
}

// Unpack is the inverse of Color.Pack. The top byte of packed is ignored.
func Unpack(packed uint32) Color {
	return Color{
		Red:   uint8(packed),
		Green: uint8(packed >> 8),
		Blue:  uint8(packed >> 16),
	}
}

// RGBA is c as an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.Red, G: c.Green, B: c.Blue, A: 0xff}
}
