package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abimaelmartell/moni-dash/internal/api"
	"github.com/abimaelmartell/moni-dash/internal/errors"
	"github.com/abimaelmartell/moni-dash/internal/logger"
)

// DefaultInterval is the poll cadence used until the server reports one.
const DefaultInterval = time.Second

// pollTickMsg fires the poller. Ticks from a stopped or restarted timer
// carry an old generation and are ignored.
type pollTickMsg struct {
	gen int
}

// metricsMsg carries the outcome of one /metrics request.
type metricsMsg struct {
	seq  int
	key  api.SortKey
	resp *api.MetricsResponse
	err  error
}

// Poller drives the periodic /metrics fetch. The timer never waits on a
// request: every tick re-arms the timer and starts a fetch, so fetches may
// overlap when the server is slower than the interval.
//
// By default results are applied in the order they arrive, which means a
// slow response can overwrite a newer one. In strict mode each new fetch
// cancels the previous one and any result older than the latest issued
// fetch is dropped.
type Poller struct {
	fetcher  api.Fetcher
	interval time.Duration
	strict   bool
	log      logger.Logger

	gen     int
	running bool

	issued  int
	applied int
	cancel  context.CancelFunc
}

// NewPoller creates a stopped poller.
func NewPoller(fetcher api.Fetcher, interval time.Duration, strict bool, log logger.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Poller{
		fetcher:  fetcher,
		interval: interval,
		strict:   strict,
		log:      log,
	}
}

// Interval returns the current cadence.
func (p *Poller) Interval() time.Duration { return p.interval }

// Running reports whether a timer is armed.
func (p *Poller) Running() bool { return p.running }

// Issued returns how many fetches have been started.
func (p *Poller) Issued() int { return p.issued }

// Start (re)arms the timer at interval. Any previously armed timer is
// invalidated, so there is at most one live timer.
func (p *Poller) Start(interval time.Duration) tea.Cmd {
	if interval > 0 {
		p.interval = interval
	}
	p.gen++
	p.running = true
	p.log.Debug("poller started at %s", p.interval)
	return p.schedule()
}

// Stop invalidates the armed timer and cancels an in-flight strict fetch.
func (p *Poller) Stop() {
	p.gen++
	p.running = false
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Poller) schedule() tea.Cmd {
	gen := p.gen
	return tea.Tick(p.interval, func(time.Time) tea.Msg {
		return pollTickMsg{gen: gen}
	})
}

// HandleTick re-arms the timer and starts a fetch for key. Stale ticks
// return nil.
func (p *Poller) HandleTick(msg pollTickMsg, key api.SortKey) tea.Cmd {
	if !p.running || msg.gen != p.gen {
		return nil
	}
	return tea.Batch(p.schedule(), p.Fetch(key))
}

// Fetch starts one /metrics request outside the timer.
func (p *Poller) Fetch(key api.SortKey) tea.Cmd {
	p.issued++
	seq := p.issued

	ctx := context.Background()
	if p.strict {
		if p.cancel != nil {
			p.cancel()
		}
		ctx, p.cancel = context.WithCancel(ctx)
	}

	fetcher := p.fetcher
	return func() tea.Msg {
		resp, err := fetcher.FetchMetrics(ctx, key)
		return metricsMsg{seq: seq, key: key, resp: resp, err: err}
	}
}

// Accept reports whether msg should be applied to the surfaces. Failed
// fetches are logged and rejected; in strict mode so are superseded ones.
func (p *Poller) Accept(msg metricsMsg) bool {
	if p.strict && msg.seq < p.issued {
		p.log.Debug("dropping superseded poll %d (latest %d)", msg.seq, p.issued)
		return false
	}
	if msg.err != nil {
		p.log.Warn("poll %d failed: %s", msg.seq, errors.Summarize(msg.err))
		return false
	}
	if msg.resp == nil || len(msg.resp.DataPoints) == 0 {
		p.log.Warn("poll %d returned no data points", msg.seq)
		return false
	}
	p.applied = msg.seq
	return true
}
