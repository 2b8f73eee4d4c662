package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpBinding represents a single keyboard shortcut entry.
type HelpBinding struct {
	Key  string
	Desc string
}

// helpBindings defines all keyboard shortcuts shown in the help overlay.
var helpBindings = []HelpBinding{
	{Key: "q / Ctrl+C", Desc: "Quit"},
	{Key: "r", Desc: "Poll now"},
	{Key: "s", Desc: "Toggle process sort"},
	{Key: "c", Desc: "Sort processes by CPU"},
	{Key: "m", Desc: "Sort processes by memory"},
	{Key: "i", Desc: "Show / hide host info"},
	{Key: "Esc", Desc: "Close overlay"},
	{Key: "?", Desc: "Toggle this help"},
}

// Overlay styles
var (
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Background(ColorSurfaceBg).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true).
				MarginBottom(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Width(14)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	infoLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Width(17)
)

// placeOverlay centers box over the whole terminal.
func (m Model) placeOverlay(box string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(ColorDarkBg),
	)
}

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
func (m Model) renderHelpOverlay() string {
	var lines []string
	lines = append(lines, overlayTitleStyle.Render("Keyboard Shortcuts"))

	for _, binding := range helpBindings {
		line := helpKeyStyle.Render(binding.Key) + helpDescStyle.Render(binding.Desc)
		lines = append(lines, line)
	}

	lines = append(lines, "")
	lines = append(lines, LabelStyle.Render("Press ? to close"))

	return m.placeOverlay(overlayBoxStyle.Render(strings.Join(lines, "\n")))
}

// renderInfoBox renders the host info panel box without positioning it.
func (m Model) renderInfoBox() string {
	var lines []string
	lines = append(lines, overlayTitleStyle.Render("Host Info"))

	for _, f := range m.info.Fields() {
		lines = append(lines, infoLabelStyle.Render(f.Label)+ValueStyle.Render(f.Value))
	}

	lines = append(lines, "")
	hint := "Press i or Esc to close"
	if m.modal.State() == ModalClosing {
		hint = "Closing..."
	}
	lines = append(lines, LabelStyle.Render(hint))

	box := overlayBoxStyle
	if m.modal.State() != ModalOpen {
		// Dim the border while the overlay is fading in or out.
		box = box.BorderForeground(ColorBorder)
	}
	return box.Render(strings.Join(lines, "\n"))
}

// renderInfoOverlay renders the host info panel centered on screen.
func (m Model) renderInfoOverlay() string {
	return m.placeOverlay(m.renderInfoBox())
}
