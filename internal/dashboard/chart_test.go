package dashboard

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChart_RedrawCopiesInputs(t *testing.T) {
	c := NewChart("CPU", MetricCPU, true, ColorCPU)
	labels := []string{"a", "b"}
	values := []float64{1, 2}

	c.Redraw(labels, values)
	labels[0] = "x"
	values[0] = 9

	assert.Equal(t, []string{"a", "b"}, c.Labels())
	assert.Equal(t, []float64{1, 2}, c.Values())
	assert.Equal(t, 1, c.Redraws())

	c.Redraw(nil, nil)
	assert.Empty(t, c.Values())
	assert.Equal(t, 2, c.Redraws())
}

func TestChart_Bounds(t *testing.T) {
	pct := NewChart("CPU", MetricCPU, true, ColorCPU)
	pct.Redraw([]string{"a"}, []float64{250})
	lo, hi := pct.bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 100.0, hi)

	load := NewChart("Load", MetricLoad, false, ColorLoad)
	load.Redraw([]string{"a", "b"}, []float64{0.5, 3.2})
	lo, hi = load.bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 3.2, hi)

	load.Redraw([]string{"a"}, []float64{0})
	_, hi = load.bounds()
	assert.Equal(t, 1.0, hi)
}

func TestChart_RenderEmpty(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	c := NewChart("CPU", MetricCPU, true, ColorCPU)
	out := c.Render(40, 8)

	assert.Contains(t, out, "CPU")
	assert.Contains(t, out, "waiting for data")
	assert.Contains(t, out, "--")
	assert.Equal(t, 8, lipgloss.Height(out))
}

func TestChart_RenderWithData(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	c := NewChart("Load (1m)", MetricLoad, false, ColorLoad)
	c.Redraw([]string{"10:00:00", "10:00:01", "10:00:02"}, []float64{0.5, 1, 2})
	out := c.Render(50, 9)

	assert.Contains(t, out, "Load (1m)")
	assert.Contains(t, out, "2.00")
	assert.Contains(t, out, "10:00:00")
	assert.Contains(t, out, "10:00:02")
	assert.NotContains(t, out, "10:00:01")
	assert.Equal(t, 9, lipgloss.Height(out))

	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 50, lipgloss.Width(line), "line %q", line)
	}
}

func TestChart_TimeAxisNarrow(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	c := NewChart("CPU", MetricCPU, true, ColorCPU)
	c.Redraw([]string{"10:00:00", "10:00:05"}, []float64{1, 2})

	assert.Equal(t, "    10:00:05", c.timeAxis(12))
	assert.Equal(t, "10:00:00    10:00:05", c.timeAxis(20))
}

func TestRenderBrailleLine_ConnectsPoints(t *testing.T) {
	lines := renderBrailleLine([]float64{0, 100}, 1, 1, 0, 100)
	require.Len(t, lines, 1)
	// Left column: bottom dot. Right column: the three dots above it.
	assert.Equal(t, "⡸", lines[0])
}

func TestRenderBrailleLine_RightAligns(t *testing.T) {
	lines := renderBrailleLine([]float64{50, 50}, 4, 2, 0, 100)
	require.Len(t, lines, 2)

	for _, line := range lines {
		runes := []rune(line)
		require.Len(t, runes, 4)
		for _, r := range runes[:3] {
			assert.Equal(t, brailleBase, r)
		}
	}

	lastCol := []rune(lines[0])[3] | []rune(lines[1])[3]
	assert.NotEqual(t, brailleBase, lastCol)
}

func TestRenderBrailleLine_ClampsAboveMax(t *testing.T) {
	lines := renderBrailleLine([]float64{500}, 1, 1, 0, 100)
	require.Len(t, lines, 1)
	// Single point in the right sub-column at the top level.
	assert.Equal(t, "⠈", lines[0])
}

func TestResampleData(t *testing.T) {
	assert.Nil(t, resampleData(nil, 4))
	assert.Equal(t, []float64{1, 2}, resampleData([]float64{1, 2}, 4))
	assert.Equal(t, []float64{5, 9}, resampleData([]float64{1, 5, 9, 3}, 2))
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, 0.5, normalizeValue(50, 0, 100))
	assert.Equal(t, 0.5, normalizeValue(3, 3, 3))
	assert.Equal(t, 0, clampInt(-2, 5))
	assert.Equal(t, 5, clampInt(9, 5))
}
