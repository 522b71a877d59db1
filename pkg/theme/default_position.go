//go:build theme_position

package theme

// Default is the variant selected by build tag.
const Default = Position
