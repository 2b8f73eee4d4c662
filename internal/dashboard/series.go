package dashboard

import (
	"time"

	"github.com/abimaelmartell/moni-dash/internal/api"
	"github.com/abimaelmartell/moni-dash/internal/format"
)

// Metric names a chartable projection of the sample window.
type Metric string

const (
	MetricCPU    Metric = "cpu"
	MetricMemory Metric = "memory"
	MetricLoad   Metric = "load"
)

// Series holds the most recent window of samples returned by the server.
// The server already bounds and orders the window, so it is replaced
// wholesale on every successful poll and never merged or re-sorted.
type Series struct {
	samples []api.MetricSample
	loc     *time.Location
}

// NewSeries creates an empty series whose time labels are rendered in loc.
func NewSeries(loc *time.Location) *Series {
	if loc == nil {
		loc = time.Local
	}
	return &Series{loc: loc}
}

// Replace swaps in a new window. The caller's slice is copied.
func (s *Series) Replace(samples []api.MetricSample) {
	s.samples = append(make([]api.MetricSample, 0, len(samples)), samples...)
}

// Len returns the number of samples in the window.
func (s *Series) Len() int {
	return len(s.samples)
}

// Last returns the newest sample.
func (s *Series) Last() (api.MetricSample, bool) {
	if len(s.samples) == 0 {
		return api.MetricSample{}, false
	}
	return s.samples[len(s.samples)-1], true
}

// Projection returns index-aligned time labels and values for metric.
func (s *Series) Projection(metric Metric) (labels []string, values []float64) {
	labels = make([]string, len(s.samples))
	values = make([]float64, len(s.samples))

	for i, sample := range s.samples {
		labels[i] = format.TimeLabel(sample.Timestamp, s.loc)
		switch metric {
		case MetricCPU:
			values[i] = sample.CPUPercent
		case MetricMemory:
			values[i] = sample.MemPercent
		case MetricLoad:
			values[i] = sample.LoadAvg.Load1
		}
	}

	return labels, values
}
