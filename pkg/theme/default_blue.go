//go:build theme_blue

package theme

// Default is the variant selected by build tag.
const Default = Blue
