// Package demo serves synthetic moni /metrics and /info responses so the
// dashboard can be tried without a real server.
package demo

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/abimaelmartell/moni-dash/internal/api"
)

const (
	gib = 1024 * 1024 * 1024
	mib = 1024 * 1024

	defaultHistory   = 60
	defaultProcLimit = 10
)

// Options configures a Source.
type Options struct {
	// Interval is how often a sample is recorded. Reported to clients as
	// update_interval.
	Interval time.Duration
	// History caps the number of retained samples.
	History int
	// ProcLimit caps the number of processes in each response.
	ProcLimit int
	Hostname  string
	Seed      int64
}

// Source produces a random-walk series of host metrics and a fake process
// table. It is safe for concurrent use.
type Source struct {
	mu      sync.Mutex
	rng     *rand.Rand
	opts    Options
	start   time.Time
	now     func() time.Time
	samples []api.MetricSample
	procs   []api.ProcessEntry

	cpu, mem, disk, load float64
}

var demoCommands = []string{
	"postgres", "nginx", "redis-server", "node", "java", "containerd",
	"dockerd", "sshd", "systemd", "prometheus", "grafana-server", "etcd",
	"kubelet", "rsyslogd", "cron",
}

// NewSource creates a source with one sample already recorded.
func NewSource(opts Options) *Source {
	return newSource(opts, time.Now)
}

func newSource(opts Options, now func() time.Time) *Source {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.History <= 0 {
		opts.History = defaultHistory
	}
	if opts.ProcLimit <= 0 {
		opts.ProcLimit = defaultProcLimit
	}
	if opts.Hostname == "" {
		opts.Hostname = "demo-host"
	}

	s := &Source{
		rng:  rand.New(rand.NewSource(opts.Seed)),
		opts: opts,
		now:  now,
		cpu:  25,
		mem:  45,
		disk: 60,
		load: 0.8,
	}
	s.start = s.now()

	for i, name := range demoCommands {
		s.procs = append(s.procs, api.ProcessEntry{
			PID:     int32(100 + i*37),
			CPU:     s.rng.Float64() * 10,
			Memory:  uint64(20+s.rng.Intn(500)) * mib,
			Command: name,
		})
	}

	s.Step()
	return s
}

// Interval returns the sampling cadence.
func (s *Source) Interval() time.Duration {
	return s.opts.Interval
}

// Step records one new sample and perturbs the process table.
func (s *Source) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cpu = walk(s.rng, s.cpu, 8, 1, 99)
	s.mem = walk(s.rng, s.mem, 2, 5, 95)
	s.disk = walk(s.rng, s.disk, 0.2, 1, 99)
	s.load = walk(s.rng, s.load, 0.3, 0, 16)

	const memTotal, diskTotal = 16 * gib, 500 * gib
	memUsed := uint64(s.mem / 100 * memTotal)
	diskUsed := uint64(s.disk / 100 * diskTotal)

	sample := api.MetricSample{
		Timestamp:   s.now().Unix(),
		CPUPercent:  round2(s.cpu),
		MemPercent:  round2(s.mem),
		MemUsed:     memUsed,
		MemTotal:    memTotal,
		DiskUsed:    diskUsed,
		DiskTotal:   diskTotal,
		DiskPercent: round2(s.disk),
		LoadAvg: api.LoadAvg{
			Load1:  round2(s.load),
			Load5:  round2(s.load * 0.9),
			Load15: round2(s.load * 0.8),
		},
	}

	s.samples = append(s.samples, sample)
	if len(s.samples) > s.opts.History {
		s.samples = s.samples[len(s.samples)-s.opts.History:]
	}

	for i := range s.procs {
		p := &s.procs[i]
		p.CPU = round2(walk(s.rng, p.CPU, 3, 0, 100))
		delta := (s.rng.Float64() - 0.5) * 20 * mib
		p.Memory = uint64(math.Max(float64(mib), float64(p.Memory)+delta))
	}
}

// Run records a sample every interval until ctx is done.
func (s *Source) Run(ctx context.Context) {
	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step()
		}
	}
}

// Metrics returns the retained samples oldest first and the top processes
// ranked by key.
func (s *Source) Metrics(key api.SortKey) api.MetricsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	points := make([]api.MetricSample, len(s.samples))
	copy(points, s.samples)

	procs := make([]api.ProcessEntry, len(s.procs))
	copy(procs, s.procs)
	if key == api.SortByMemory {
		sort.SliceStable(procs, func(i, j int) bool { return procs[i].Memory > procs[j].Memory })
	} else {
		sort.SliceStable(procs, func(i, j int) bool { return procs[i].CPU > procs[j].CPU })
	}
	if len(procs) > s.opts.ProcLimit {
		procs = procs[:s.opts.ProcLimit]
	}

	return api.MetricsResponse{DataPoints: points, TopProcesses: procs}
}

// Info describes the fake host, using the newest sample for usage figures.
func (s *Source) Info() api.HostInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := api.HostInfo{
		Hostname:        s.opts.Hostname,
		IP:              "192.0.2.10",
		Uptime:          s.now().Sub(s.start).Truncate(time.Second).String(),
		OS:              "linux",
		Platform:        "ubuntu",
		PlatformVersion: "22.04",
		KernelVersion:   "5.15.0-demo",
		CPUModel:        "Demo CPU @ 3.00GHz",
		CPUCores:        8,
		UpdateInterval:  s.opts.Interval.Milliseconds(),
		Interface:       "eth0",
	}
	if n := len(s.samples); n > 0 {
		last := s.samples[n-1]
		info.UsedMemory, info.TotalMemory = last.MemUsed, last.MemTotal
		info.UsedDisk, info.TotalDisk = last.DiskUsed, last.DiskTotal
	}
	return info
}

// walk moves v by a random step of at most ±step, kept within [lo, hi].
func walk(rng *rand.Rand, v, step, lo, hi float64) float64 {
	v += (rng.Float64()*2 - 1) * step
	return math.Min(hi, math.Max(lo, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
