//go:build theme_red

package theme

// Default is the variant selected by build tag.
const Default = Red
