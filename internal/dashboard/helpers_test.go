package dashboard

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abimaelmartell/moni-dash/internal/api"
	"github.com/abimaelmartell/moni-dash/internal/errors"
)

// fakeFetcher answers from canned values and records every metrics call.
type fakeFetcher struct {
	mu sync.Mutex

	metrics    *api.MetricsResponse
	metricsErr error
	info       *api.HostInfo
	infoErr    error

	// metricsFn overrides metrics/metricsErr when set.
	metricsFn func(ctx context.Context, key api.SortKey) (*api.MetricsResponse, error)

	keys []api.SortKey
}

func (f *fakeFetcher) FetchMetrics(ctx context.Context, key api.SortKey) (*api.MetricsResponse, error) {
	f.mu.Lock()
	f.keys = append(f.keys, key)
	fn := f.metricsFn
	resp, err := f.metrics, f.metricsErr
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, key)
	}
	return resp, err
}

func (f *fakeFetcher) FetchInfo(ctx context.Context) (*api.HostInfo, error) {
	return f.info, f.infoErr
}

func (f *fakeFetcher) calls() []api.SortKey {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.SortKey(nil), f.keys...)
}

// sample builds a sample at ts with the given CPU percentage.
func sample(ts int64, cpu float64) api.MetricSample {
	return api.MetricSample{
		Timestamp:  ts,
		CPUPercent: cpu,
		MemPercent: 50,
		MemUsed:    512 * 1024 * 1024,
		MemTotal:   1024 * 1024 * 1024,
		DiskUsed:   25 * 1024 * 1024 * 1024,
		DiskTotal:  100 * 1024 * 1024 * 1024,
		LoadAvg:    api.LoadAvg{Load1: 0.5, Load5: 0.3, Load15: 0.1},
	}
}

// response builds a metrics response whose newest sample has the given CPU.
func response(cpu float64, procs ...api.ProcessEntry) *api.MetricsResponse {
	return &api.MetricsResponse{
		DataPoints:   []api.MetricSample{sample(1700000000, 1), sample(1700000001, cpu)},
		TopProcesses: procs,
	}
}

var statusErr = errors.New(errors.ErrStatus, "/metrics returned 500", "")

// update runs msg through the model and returns the concrete result.
func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// fetchMsg runs a fetch command synchronously.
func fetchMsg(cmd tea.Cmd) metricsMsg {
	return cmd().(metricsMsg)
}
