package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gauge block characters.
const (
	gaugeFilled = '█'
	gaugeEmpty  = '░'
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

var sparklineBlockRunes = []rune(sparklineBlocks)

// RenderGauge draws a bracketed bar for a 0-100 percentage followed by the
// rounded value, e.g. "[████████░░░░]  67%". The bar is colored by the
// warning and critical levels; a zero level is disabled.
func RenderGauge(percent float64, width, warning, critical int) string {
	if width <= 0 {
		return ""
	}

	percent = clampPercent(percent)
	filled := int((percent / 100.0) * float64(width))

	var sb strings.Builder
	sb.Grow(width*3 + 2)
	sb.WriteRune('[')
	sb.WriteString(strings.Repeat(string(gaugeFilled), filled))
	sb.WriteString(strings.Repeat(string(gaugeEmpty), width-filled))
	sb.WriteRune(']')

	style := lipgloss.NewStyle().Foreground(ThresholdColor(percent, warning, critical))
	return style.Render(sb.String()) + fmt.Sprintf(" %3.0f%%", percent)
}

// RenderSparkline draws the most recent width values as block characters
// scaled between 0 and 100. The line takes the color of its last value.
func RenderSparkline(data []float64, width, warning, critical int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	levels := len(sparklineBlockRunes)
	var sb strings.Builder
	sb.Grow(len(data) * 3)
	for _, v := range data {
		level := int(clampPercent(v) / 100.0 * float64(levels-1))
		sb.WriteRune(sparklineBlockRunes[level])
	}

	last := data[len(data)-1]
	style := lipgloss.NewStyle().Foreground(ThresholdColor(last, warning, critical))
	return style.Render(sb.String())
}

// ThresholdColor maps a percentage to success, warning or error color.
func ThresholdColor(percent float64, warning, critical int) lipgloss.Color {
	switch {
	case critical > 0 && percent >= float64(critical):
		return ColorError
	case warning > 0 && percent >= float64(warning):
		return ColorWarning
	default:
		return ColorSuccess
	}
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
