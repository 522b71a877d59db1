//go:build theme_green

package theme

// Default is the variant selected by build tag.
const Default = Green
