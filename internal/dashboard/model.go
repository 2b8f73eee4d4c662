package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abimaelmartell/moni-dash/internal/api"
	"github.com/abimaelmartell/moni-dash/internal/config"
	"github.com/abimaelmartell/moni-dash/internal/errors"
	"github.com/abimaelmartell/moni-dash/internal/format"
	"github.com/abimaelmartell/moni-dash/internal/logger"
	"github.com/abimaelmartell/moni-dash/internal/prefs"
)

// Options configures a dashboard Model.
type Options struct {
	Fetcher  api.Fetcher
	Prefs    prefs.Store
	Endpoint string

	// Interval is the cadence used until /info reports one.
	Interval time.Duration
	// Strict drops responses superseded by a later poll.
	Strict bool
	// RefreshOnSort polls right away when the sort key changes.
	RefreshOnSort bool

	Location        *time.Location
	ModalTransition time.Duration
	Thresholds      config.Thresholds
	Logger          logger.Logger
}

// Readouts are the summary values taken from the newest sample.
type Readouts struct {
	CPU          string
	Memory       string
	MemoryDetail string
	Disk         string
	DiskDetail   string
	Load         string

	CPUPercent    float64
	MemoryPercent float64
	DiskPercent   float64
}

// NewReadouts computes the summary values for s.
func NewReadouts(s api.MetricSample) Readouts {
	memPct := format.Ratio(s.MemUsed, s.MemTotal)
	diskPct := format.Ratio(s.DiskUsed, s.DiskTotal)
	return Readouts{
		CPU:           format.FormatPercent(s.CPUPercent),
		Memory:        format.FormatPercent(memPct),
		MemoryDetail:  format.FormatUsage(s.MemUsed, s.MemTotal),
		Disk:          format.FormatPercent(diskPct),
		DiskDetail:    format.FormatUsage(s.DiskUsed, s.DiskTotal),
		Load:          format.FormatLoad(s.LoadAvg.Load1, s.LoadAvg.Load5, s.LoadAvg.Load15),
		CPUPercent:    s.CPUPercent,
		MemoryPercent: memPct,
		DiskPercent:   diskPct,
	}
}

// Model is the Bubble Tea model for the dashboard. All display state is
// owned here and only changes inside Update.
type Model struct {
	fetcher  api.Fetcher
	prefs    prefs.Store
	endpoint string
	log      logger.Logger

	poller        *Poller
	series        *Series
	charts        []*Chart
	table         *ProcessTable
	info          *InfoPanel
	modal         *Modal
	thresholds    config.Thresholds
	loc           *time.Location
	refreshOnSort bool

	sortKey    api.SortKey
	readouts   Readouts
	loaded     bool
	lastUpdate time.Time

	width    int
	height   int
	showHelp bool
	quitting bool
}

// NewModel creates a dashboard model. The stored sort key is read from
// opts.Prefs; an unreadable store falls back to the default key.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}
	store := opts.Prefs
	if store == nil {
		store = prefs.NewMemoryStore()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	key, err := prefs.LoadSortKey(store)
	if err != nil {
		log.Warn("reading sort preference: %s", errors.Summarize(err))
	}

	return Model{
		fetcher:  opts.Fetcher,
		prefs:    store,
		endpoint: opts.Endpoint,
		log:      log,
		poller:   NewPoller(opts.Fetcher, opts.Interval, opts.Strict, log),
		series:   NewSeries(loc),
		charts: []*Chart{
			NewChart("CPU", MetricCPU, true, ColorCPU),
			NewChart("Memory", MetricMemory, true, ColorMemory),
			NewChart("Load (1m)", MetricLoad, false, ColorLoad),
		},
		table:         NewProcessTable(key),
		info:          NewInfoPanel(),
		modal:         NewModal(opts.ModalTransition),
		thresholds:    opts.Thresholds,
		loc:           loc,
		refreshOnSort: opts.RefreshOnSort,
		sortKey:       key,
	}
}

// SortKey returns the active sort key.
func (m Model) SortKey() api.SortKey { return m.sortKey }

// Readouts returns the current summary values.
func (m Model) Readouts() Readouts { return m.readouts }

// Loaded reports whether a metrics response has been applied.
func (m Model) Loaded() bool { return m.loaded }

// Series returns the sample window.
func (m Model) Series() *Series { return m.series }

// Charts returns the CPU, memory and load charts in that order.
func (m Model) Charts() []*Chart { return m.charts }

// Table returns the process table.
func (m Model) Table() *ProcessTable { return m.table }

// Info returns the info panel.
func (m Model) Info() *InfoPanel { return m.info }

// Modal returns the info overlay state machine.
func (m Model) Modal() *Modal { return m.modal }

// Poller returns the metrics poller.
func (m Model) Poller() *Poller { return m.poller }

// Init arms the poll timer, polls once immediately and requests host info.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.poller.Start(0),
		m.poller.Fetch(m.sortKey),
		fetchInfoCmd(m.fetcher),
		m.table.Tick(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case pollTickMsg:
		return m, m.poller.HandleTick(msg, m.sortKey)

	case metricsMsg:
		if m.poller.Accept(msg) {
			m.applyMetrics(msg)
		}

	case infoMsg:
		return m, m.applyInfo(msg)

	case spinner.TickMsg:
		if m.table.Loading() {
			return m, m.table.Update(msg)
		}

	case modalFrameMsg:
		m.modal.handleFrame(msg)

	case modalClosedMsg:
		m.modal.handleClosed(msg)
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// applyMetrics updates every surface from one accepted response. Processes
// ranked by a key other than the current one are left out of the table.
func (m *Model) applyMetrics(msg metricsMsg) {
	resp := msg.resp
	m.series.Replace(resp.DataPoints)
	for _, c := range m.charts {
		c.Redraw(m.series.Projection(c.Metric))
	}

	if last, ok := m.series.Last(); ok {
		m.readouts = NewReadouts(last)
		m.lastUpdate = time.Unix(last.Timestamp, 0)
	}

	if msg.key == m.sortKey {
		m.table.Render(resp.TopProcesses, m.sortKey)
	} else {
		m.log.Debug("skipping processes ranked by %s, table is sorted by %s", msg.key, m.sortKey)
	}
	m.loaded = true
}

// applyInfo fills the info panel and re-arms the poller at the server's
// cadence. On failure the panel keeps its placeholders and the poller keeps
// its current cadence.
func (m *Model) applyInfo(msg infoMsg) tea.Cmd {
	if msg.err != nil {
		m.log.Warn("info fetch failed: %s", errors.Summarize(msg.err))
		return nil
	}
	if msg.info == nil {
		return nil
	}

	cadence, ok := m.info.Apply(msg.info)
	if !ok {
		m.log.Debug("server reported no update interval, keeping %s", m.poller.Interval())
		return nil
	}
	m.log.Info("polling every %s", cadence)
	return m.poller.Start(cadence)
}

// SetSortKey switches the process ranking. The key is persisted first,
// then the table is cleared and its headers swapped. New rows arrive with
// the next poll, or immediately when refresh-on-sort is enabled.
func (m *Model) SetSortKey(key api.SortKey) tea.Cmd {
	if key == m.sortKey {
		return nil
	}

	if err := prefs.SaveSortKey(m.prefs, key); err != nil {
		m.log.Warn("saving sort preference: %s", errors.Summarize(err))
	}

	m.sortKey = key
	m.table.Clear()
	m.table.FixHeaders(key)

	cmds := []tea.Cmd{m.table.Tick()}
	if m.refreshOnSort {
		cmds = append(cmds, m.poller.Fetch(key))
	}
	return tea.Batch(cmds...)
}

// handleMouse closes the info overlay on a left click outside its box.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.modal.Visible() || m.showHelp {
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	box := m.renderInfoBox()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	left := (m.width - w) / 2
	top := (m.height - h) / 2
	inside := msg.X >= left && msg.X < left+w && msg.Y >= top && msg.Y < top+h
	if inside {
		return nil
	}
	return m.modal.Close()
}
