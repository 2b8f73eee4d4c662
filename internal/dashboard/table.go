package dashboard

import (
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abimaelmartell/moni-dash/internal/api"
	"github.com/abimaelmartell/moni-dash/internal/format"
	"github.com/abimaelmartell/moni-dash/internal/ui"
)

// Column titles for the process table.
const (
	ColumnPID     = "PID"
	ColumnCPU     = "CPU"
	ColumnMemory  = "Memory"
	ColumnCommand = "Command"
)

// Headers returns the column titles for key. The sort column always sits
// second, right after PID.
func Headers(key api.SortKey) []string {
	if key == api.SortByMemory {
		return []string{ColumnPID, ColumnMemory, ColumnCPU, ColumnCommand}
	}
	return []string{ColumnPID, ColumnCPU, ColumnMemory, ColumnCommand}
}

// Cells returns the rendered cells of p in the column order for key.
func Cells(p api.ProcessEntry, key api.SortKey) []string {
	pid := strconv.FormatInt(int64(p.PID), 10)
	cpu := format.FormatCPUCell(p.CPU)
	mem := format.FormatMemoryMB(p.Memory)
	if key == api.SortByMemory {
		return []string{pid, mem, cpu, p.Command}
	}
	return []string{pid, cpu, mem, p.Command}
}

// ProcessTable shows the server-ranked process list. Rows are displayed in
// the order the server returned them.
type ProcessTable struct {
	key     api.SortKey
	rows    [][]string
	loading bool
	spinner spinner.Model
	table   table.Model
}

// NewProcessTable creates an empty table in the loading state.
func NewProcessTable(key api.SortKey) *ProcessTable {
	sp := spinner.New()
	sp.Spinner = ui.SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	t := &ProcessTable{
		key:     key,
		loading: true,
		spinner: sp,
	}
	t.table = ui.NewTable(t.columns(80), nil)
	return t
}

// Key returns the sort key the headers currently reflect.
func (t *ProcessTable) Key() api.SortKey { return t.key }

// Loading reports whether the loading indicator is showing.
func (t *ProcessTable) Loading() bool { return t.loading }

// Headers returns the current column titles.
func (t *ProcessTable) Headers() []string { return Headers(t.key) }

// Rows returns the rendered rows in display order.
func (t *ProcessTable) Rows() [][]string { return t.rows }

// FixHeaders swaps the CPU and Memory columns to match key.
func (t *ProcessTable) FixHeaders(key api.SortKey) {
	t.key = key
}

// Clear drops all rows and shows the loading indicator until the next
// successful render.
func (t *ProcessTable) Clear() {
	t.rows = nil
	t.loading = true
}

// Render replaces every row with procs, in the order given.
func (t *ProcessTable) Render(procs []api.ProcessEntry, key api.SortKey) {
	t.key = key
	rows := make([][]string, len(procs))
	for i, p := range procs {
		rows[i] = Cells(p, key)
	}
	t.rows = rows
	t.loading = false
}

// Tick starts the loading spinner.
func (t *ProcessTable) Tick() tea.Cmd {
	return t.spinner.Tick
}

// Update advances the loading spinner.
func (t *ProcessTable) Update(msg spinner.TickMsg) tea.Cmd {
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return cmd
}

// columns sizes the columns for the given inner width. Command takes
// whatever is left.
func (t *ProcessTable) columns(width int) []ui.TableColumn {
	titles := t.Headers()
	fixed := []int{8, 10, 10}
	used := 0
	for _, w := range fixed {
		used += w
	}
	cmdWidth := width - used - 2*len(titles)
	if cmdWidth < 10 {
		cmdWidth = 10
	}
	return []ui.TableColumn{
		{Title: titles[0], Width: fixed[0]},
		{Title: titles[1], Width: fixed[1]},
		{Title: titles[2], Width: fixed[2]},
		{Title: titles[3], Width: cmdWidth},
	}
}

// View renders the table inside a section box.
func (t *ProcessTable) View(width, height int) string {
	if width < 30 {
		width = 30
	}
	if height < 5 {
		height = 5
	}
	innerWidth := width - 4

	value := MutedStyle.Render("sorted by " + t.key.String())
	lines := []string{SectionHeader("Top Processes", value, width)}
	bodyRows := height - 2

	if t.loading {
		for i := 0; i < bodyRows; i++ {
			content := ""
			if i == bodyRows/2 {
				content = lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center,
					t.spinner.View()+MutedStyle.Render(" Loading processes..."))
			}
			lines = append(lines, SectionContentLine(content, width))
		}
		lines = append(lines, SectionFooter(width))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([]table.Row, len(t.rows))
	for i, r := range t.rows {
		rows[i] = table.Row(r)
	}
	cols := t.columns(innerWidth)
	tcols := make([]table.Column, len(cols))
	for i, c := range cols {
		tcols[i] = table.Column{Title: c.Title, Width: c.Width}
	}
	// Columns before rows so the row cells line up with the new headers.
	t.table.SetColumns(tcols)
	t.table.SetRows(rows)
	t.table.SetHeight(bodyRows - 1)
	t.table.SetWidth(innerWidth)

	rendered := lipgloss.NewStyle().MaxHeight(bodyRows).Render(t.table.View())
	contentLines := splitLines(rendered)
	for i := 0; i < bodyRows; i++ {
		content := ""
		if i < len(contentLines) {
			content = contentLines[i]
		}
		lines = append(lines, SectionContentLine(content, width))
	}
	lines = append(lines, SectionFooter(width))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
