package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille character rendering for high-resolution terminal charts.
//
// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// Unicode braille starts at U+2800 (empty) and uses bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8

const brailleBase = '⠀'

// brailleDots maps row/column to the bit offset for braille pattern
// [row][col] where row is 0-3 (top to bottom) and col is 0-1 (left to right)
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// axisWidth is the column reserved for y-axis labels, including the tick.
const axisWidth = 6

// Chart is a single-series time chart. It keeps the last projection it was
// given and renders it on demand.
type Chart struct {
	Title   string
	Metric  Metric
	Percent bool // fixed 0-100 scale; otherwise auto-scaled from 0
	Color   lipgloss.Color

	labels  []string
	values  []float64
	redraws int
}

// NewChart creates an empty chart.
func NewChart(title string, metric Metric, percent bool, color lipgloss.Color) *Chart {
	return &Chart{
		Title:   title,
		Metric:  metric,
		Percent: percent,
		Color:   color,
	}
}

// Redraw replaces the chart's labels and values. Both slices are copied.
func (c *Chart) Redraw(labels []string, values []float64) {
	c.labels = append([]string(nil), labels...)
	c.values = append([]float64(nil), values...)
	c.redraws++
}

// Labels returns the current x-axis labels.
func (c *Chart) Labels() []string { return c.labels }

// Values returns the current plotted values.
func (c *Chart) Values() []float64 { return c.values }

// Redraws returns how many times the chart has been redrawn.
func (c *Chart) Redraws() int { return c.redraws }

// bounds returns the y-axis range for the current values.
func (c *Chart) bounds() (minVal, maxVal float64) {
	if c.Percent {
		return 0, 100
	}
	for _, v := range c.values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal <= 0 {
		maxVal = 1
	}
	return 0, maxVal
}

func (c *Chart) formatValue(v float64) string {
	if c.Percent {
		return fmt.Sprintf("%.1f%%", v)
	}
	return fmt.Sprintf("%.2f", v)
}

func (c *Chart) formatAxis(v float64) string {
	if c.Percent {
		return fmt.Sprintf("%3.0f", v)
	}
	return fmt.Sprintf("%4.1f", v)
}

// Render draws the chart inside a section box of the given size.
func (c *Chart) Render(width, height int) string {
	if width < 20 {
		width = 20
	}
	if height < 5 {
		height = 5
	}

	value := MutedStyle.Render("--")
	if n := len(c.values); n > 0 {
		value = lipgloss.NewStyle().Foreground(c.Color).Bold(true).Render(c.formatValue(c.values[n-1]))
	}

	innerWidth := width - 4
	plotWidth := innerWidth - axisWidth
	plotRows := height - 3 // header, time labels, footer

	lines := make([]string, 0, height)
	lines = append(lines, SectionHeader(c.Title, value, width))

	if len(c.values) == 0 {
		for i := 0; i < plotRows+1; i++ {
			content := ""
			if i == plotRows/2 {
				content = lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, MutedStyle.Render("waiting for data"))
			}
			lines = append(lines, SectionContentLine(content, width))
		}
		lines = append(lines, SectionFooter(width))
		return strings.Join(lines, "\n")
	}

	minVal, maxVal := c.bounds()
	plot := renderBrailleLine(c.values, plotWidth, plotRows, minVal, maxVal)

	axisStyle := MutedStyle
	lineStyle := lipgloss.NewStyle().Foreground(c.Color)
	for i, row := range plot {
		axis := strings.Repeat(" ", axisWidth-1) + "│"
		switch i {
		case 0:
			axis = c.formatAxis(maxVal) + " ┤"
		case plotRows - 1:
			axis = c.formatAxis(minVal) + " ┤"
		}
		axis = fmt.Sprintf("%*s", axisWidth, axis)
		lines = append(lines, SectionContentLine(axisStyle.Render(axis)+lineStyle.Render(row), width))
	}

	lines = append(lines, SectionContentLine(strings.Repeat(" ", axisWidth)+c.timeAxis(plotWidth), width))
	lines = append(lines, SectionFooter(width))

	return strings.Join(lines, "\n")
}

// timeAxis places the first and last labels under the plot.
func (c *Chart) timeAxis(width int) string {
	if len(c.labels) == 0 {
		return ""
	}
	first := c.labels[0]
	last := c.labels[len(c.labels)-1]
	if len(c.labels) == 1 || lipgloss.Width(first)+lipgloss.Width(last)+1 > width {
		return MutedStyle.Render(fmt.Sprintf("%*s", width, last))
	}
	gap := width - lipgloss.Width(first) - lipgloss.Width(last)
	return MutedStyle.Render(first + strings.Repeat(" ", gap) + last)
}

// renderBrailleLine plots data as a connected line using braille characters.
// Each character holds two samples horizontally and four levels vertically.
// Data narrower than the plot is right-aligned; wider data is downsampled.
func renderBrailleLine(data []float64, width, height int, minVal, maxVal float64) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	totalDots := height * 4
	targetPoints := width * 2

	resampled := data
	if len(data) > targetPoints {
		resampled = resampleData(data, targetPoints)
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	// Right-align data when we have less than full width
	horizOffset := targetPoints - len(resampled)
	if horizOffset < 0 {
		horizOffset = 0
	}

	set := func(x, level int) {
		charCol := x / 2
		if charCol >= width {
			return
		}
		row := height - 1 - level/4
		if row < 0 {
			return
		}
		subRow := 3 - level%4
		grid[row][charCol] |= rune(1 << brailleDots[subRow][x%2])
	}

	prev := -1
	for i, val := range resampled {
		if val > maxVal {
			val = maxVal
		}
		level := clampInt(int(normalizeValue(val, minVal, maxVal)*float64(totalDots-1)+0.5), totalDots-1)
		x := i + horizOffset

		// Fill the vertical gap to the previous sample so the line stays connected.
		lo, hi := level, level
		if prev >= 0 {
			if prev < lo {
				lo = prev + 1
			}
			if prev > hi {
				hi = prev - 1
			}
		}
		for l := lo; l <= hi; l++ {
			set(x, l)
		}
		prev = level
	}

	lines := make([]string, height)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}

// normalizeValue converts a value to 0-1 range given min/max bounds.
func normalizeValue(val, minVal, maxVal float64) float64 {
	if maxVal > minVal {
		return (val - minVal) / (maxVal - minVal)
	}
	return 0.5
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// resampleData shrinks data to targetSize using the max of each bucket so
// spikes survive downsampling.
func resampleData(data []float64, targetSize int) []float64 {
	if len(data) == 0 || targetSize <= 0 {
		return nil
	}
	if len(data) <= targetSize {
		return data
	}

	result := make([]float64, targetSize)
	bucketSize := float64(len(data)) / float64(targetSize)
	for i := 0; i < targetSize; i++ {
		start := int(float64(i) * bucketSize)
		end := int(float64(i+1) * bucketSize)
		if end > len(data) {
			end = len(data)
		}
		if start >= end {
			start = end - 1
		}

		maxVal := data[start]
		for j := start + 1; j < end; j++ {
			if data[j] > maxVal {
				maxVal = data[j]
			}
		}
		result[i] = maxVal
	}
	return result
}
