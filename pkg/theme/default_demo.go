//go:build theme_demo

package theme

// Default is the variant selected by build tag.
const Default = Demo
