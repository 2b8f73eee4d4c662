package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abimaelmartell/moni-dash/internal/config"
	"github.com/abimaelmartell/moni-dash/internal/format"
)

// Layout defaults used before the first WindowSizeMsg.
const (
	defaultWidth  = 100
	defaultHeight = 40
)

// BreakpointWide is the width at which the three charts sit side by side.
const BreakpointWide = 96

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if m.modal.Visible() {
		return m.renderInfoOverlay()
	}

	width, height := m.size()

	header := m.renderHeader()
	readouts := m.renderReadouts(width)
	charts := m.renderCharts(width, height)
	footer := m.renderFooter()

	used := lipgloss.Height(header) + lipgloss.Height(readouts) + lipgloss.Height(charts) + lipgloss.Height(footer)
	tableHeight := height - used
	if tableHeight < 6 {
		tableHeight = 6
	}
	table := m.table.View(width, tableHeight)

	return lipgloss.JoinVertical(lipgloss.Left, header, readouts, charts, table, footer)
}

func (m Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// renderHeader renders the dashboard header with the host and last update.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("moni-dash")

	host := m.info.Hostname
	updated := "waiting for data"
	if m.loaded {
		updated = "updated " + format.TimeLabel(m.lastUpdate.Unix(), m.loc)
	}

	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(" | " + host + " | " + m.endpoint + " | every " + m.poller.Interval().String() + " | " + updated)

	return HeaderStyle.Render(title + stats)
}

// renderReadouts renders the summary cards, or the loading line before the
// first sample arrives.
func (m Model) renderReadouts(width int) string {
	if !m.loaded {
		line := lipgloss.PlaceHorizontal(width, lipgloss.Center, MutedStyle.Render("Loading metrics..."))
		return "\n" + line + "\n"
	}

	r := m.readouts
	cards := []string{
		readoutCard("CPU", r.CPU, "", r.CPUPercent, m.thresholds.CPU),
		readoutCard("Memory", r.Memory, r.MemoryDetail, r.MemoryPercent, m.thresholds.Memory),
		readoutCard("Disk", r.Disk, r.DiskDetail, r.DiskPercent, m.thresholds.Disk),
		readoutCard("Load", r.Load, "1m / 5m / 15m", -1, config.ThresholdValues{}),
	}

	cardWidth := width/len(cards) - 2
	if cardWidth < 18 {
		cardWidth = 18
	}
	for i, c := range cards {
		cards[i] = CardStyle.Width(cardWidth).Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// readoutCard renders one card body. A negative percent leaves the value
// uncolored.
func readoutCard(label, value, detail string, percent float64, t config.ThresholdValues) string {
	valueStyle := ValueStyle
	if percent >= 0 {
		valueStyle = MetricStyleWithThresholds(percent, t)
	}
	lines := []string{LabelStyle.Render(label), valueStyle.Render(value)}
	lines = append(lines, MutedStyle.Render(detail))
	return strings.Join(lines, "\n")
}

// renderCharts lays the three charts out side by side on wide terminals and
// stacked otherwise.
func (m Model) renderCharts(width, height int) string {
	chartHeight := height / 4
	if chartHeight < 7 {
		chartHeight = 7
	}

	if width >= BreakpointWide {
		chartWidth := width / len(m.charts)
		rendered := make([]string, len(m.charts))
		for i, c := range m.charts {
			rendered[i] = c.Render(chartWidth, chartHeight)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}

	rendered := make([]string, len(m.charts))
	for i, c := range m.charts {
		rendered[i] = c.Render(width, chartHeight-2)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"r refresh",
		"s sort by " + m.sortKey.Next().String(),
		"i info",
		"? help",
	}

	return FooterStyle.Render(strings.Join(hints, " | "))
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
