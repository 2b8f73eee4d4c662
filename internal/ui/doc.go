// Package ui provides the terminal building blocks shared by the dashboard
// and the plain CLI commands.
//
//	Spinner        - single-line animated indicator for blocking setup steps
//	SpinnerFrames  - frame set for Bubble Tea spinners, shared with Spinner
//	NewTable       - read-only Bubbles table with the default styling
//	RenderGauge    - [████░░░░]  42% bar colored by warning/critical levels
//	RenderSparkline - block-character history line
//
// Colors are ANSI indexes (ColorSuccess, ColorError, ColorWarning, ColorInfo,
// ColorPrimary, ColorSecondary, ColorMuted) so output follows the terminal
// theme. Use lipgloss.SetColorProfile(termenv.Ascii) for monochrome output.
//
// # Spinner Usage
//
//	s := ui.NewSpinner("Connecting to web-1")
//	s.Start()
//	// ... do work ...
//	s.Success() // or s.Fail()
package ui
