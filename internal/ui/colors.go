package ui

import "github.com/charmbracelet/lipgloss"

// Colors are plain ANSI indexes so plain CLI output follows the user's
// terminal theme. The dashboard has its own truecolor palette.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// spinnerColors is the cycle the CLI spinner steps through.
var spinnerColors = []lipgloss.Color{ColorSecondary, ColorInfo}
