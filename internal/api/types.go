// Package api holds the moni wire types and the HTTP client used to poll a
// moni server's /metrics and /info endpoints.
package api

// SortKey is the process-ranking criterion sent to and honored by the server.
type SortKey string

const (
	SortByCPU    SortKey = "cpu"
	SortByMemory SortKey = "memory"
)

// DefaultSortKey is used when no preference has been stored.
const DefaultSortKey = SortByCPU

// ParseSortKey converts a stored or user-supplied string into a SortKey.
// Anything other than "memory" resolves to cpu.
func ParseSortKey(s string) SortKey {
	if SortKey(s) == SortByMemory {
		return SortByMemory
	}
	return SortByCPU
}

// Valid reports whether k is one of the keys the server accepts.
func (k SortKey) Valid() bool {
	return k == SortByCPU || k == SortByMemory
}

// Next toggles between the two sort keys.
func (k SortKey) Next() SortKey {
	if k == SortByMemory {
		return SortByCPU
	}
	return SortByMemory
}

// String returns the wire form of the key.
func (k SortKey) String() string {
	return string(k)
}

// LoadAvg holds the 1, 5 and 15 minute load averages.
type LoadAvg struct {
	Load1  float64 `json:"load1"`
	Load5  float64 `json:"load5"`
	Load15 float64 `json:"load15"`
}

// MetricSample is one timestamped snapshot of system metrics.
type MetricSample struct {
	Timestamp   int64   `json:"timestamp"`
	CPUPercent  float64 `json:"cpu_percent"`
	MemPercent  float64 `json:"mem_percent"`
	MemUsed     uint64  `json:"mem_used"`
	MemTotal    uint64  `json:"mem_total"`
	DiskUsed    uint64  `json:"disk_used"`
	DiskTotal   uint64  `json:"disk_total"`
	DiskPercent float64 `json:"disk_percent"`
	LoadAvg     LoadAvg `json:"load_avg"`
}

// ProcessEntry is one row of the server-ranked process list.
type ProcessEntry struct {
	PID     int32   `json:"pid"`
	CPU     float64 `json:"cpu"`
	Memory  uint64  `json:"memory"`
	Command string  `json:"command"`
}

// MetricsResponse is the body of GET /metrics.
type MetricsResponse struct {
	DataPoints   []MetricSample `json:"data_points"`
	TopProcesses []ProcessEntry `json:"top_processes"`
}

// HostInfo is the body of GET /info.
type HostInfo struct {
	Hostname        string `json:"hostname"`
	IP              string `json:"ip"`
	Uptime          string `json:"uptime"`
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	KernelVersion   string `json:"kernel_version"`
	CPUModel        string `json:"cpu_model"`
	CPUCores        int    `json:"cpu_cores"`
	UsedMemory      uint64 `json:"used_memory"`
	TotalMemory     uint64 `json:"total_memory"`
	UsedDisk        uint64 `json:"used_disk"`
	TotalDisk       uint64 `json:"total_disk"`
	UpdateInterval  int64  `json:"update_interval"`
	Interface       string `json:"interface"`
}
