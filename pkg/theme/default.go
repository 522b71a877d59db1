//go:build !theme_red && !theme_green && !theme_blue && !theme_position && !theme_demo

package theme

// Default is the variant selected by build tag.
const Default = Grayscale
