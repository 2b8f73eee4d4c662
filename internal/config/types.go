package config

import "time"

// Ordering values control what happens when poll responses overlap.
const (
	// OrderingLastApplied applies every response in arrival order.
	OrderingLastApplied = "last-applied"
	// OrderingLastIssued cancels the previous in-flight poll when a new one
	// starts and drops any response older than the most recently issued poll.
	OrderingLastIssued = "last-issued"
)

// MinInterval is the fastest poll cadence accepted from config or flags.
const MinInterval = 100 * time.Millisecond

// Config represents the moni-dash config.yaml file.
type Config struct {
	// Endpoint is the base URL of the moni server.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// Interval is the poll cadence used until the server reports its own.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// RequestTimeout bounds each HTTP request. Zero leaves it to the transport.
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`

	// Ordering is "last-applied" (default) or "last-issued".
	Ordering string `yaml:"ordering" mapstructure:"ordering"`

	// RefreshOnSort polls immediately after the sort key changes instead of
	// waiting for the next tick.
	RefreshOnSort bool `yaml:"refresh_on_sort" mapstructure:"refresh_on_sort"`

	// Location is the IANA zone used for chart time labels ("Local", "UTC", "Europe/Berlin").
	Location string `yaml:"location" mapstructure:"location"`

	// PrefsPath is where the sort key preference is stored.
	PrefsPath string `yaml:"prefs_path" mapstructure:"prefs_path"`

	// LogFile receives structured logs while the dashboard owns the terminal.
	LogFile string `yaml:"log_file" mapstructure:"log_file"`

	// ModalTransition is how long the info overlay takes to close.
	ModalTransition time.Duration `yaml:"modal_transition" mapstructure:"modal_transition"`

	SSH        SSHConfig  `yaml:"ssh" mapstructure:"ssh"`
	Thresholds Thresholds `yaml:"thresholds" mapstructure:"thresholds"`
}

// SSHConfig routes HTTP requests through an SSH connection. The endpoint
// address is then dialed from the remote host, so a moni server bound to the
// remote loopback interface is reachable.
type SSHConfig struct {
	// Host is a hostname, user@hostname, or an alias from ~/.ssh/config.
	// Empty disables the tunnel.
	Host string `yaml:"host" mapstructure:"host"`

	// Timeout bounds the SSH handshake.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Thresholds holds the percentage levels at which summary readouts change color.
type Thresholds struct {
	CPU    ThresholdValues `yaml:"cpu" mapstructure:"cpu"`
	Memory ThresholdValues `yaml:"memory" mapstructure:"memory"`
	Disk   ThresholdValues `yaml:"disk" mapstructure:"disk"`
}

// ThresholdValues holds warning and critical percentages for one metric.
type ThresholdValues struct {
	Warning  int `yaml:"warning" mapstructure:"warning"`
	Critical int `yaml:"critical" mapstructure:"critical"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:        "http://localhost:8080",
		Interval:        time.Second,
		RequestTimeout:  0,
		Ordering:        OrderingLastApplied,
		RefreshOnSort:   true,
		Location:        "Local",
		PrefsPath:       defaultPrefsPath(),
		LogFile:         defaultLogFile(),
		ModalTransition: 200 * time.Millisecond,
		SSH: SSHConfig{
			Timeout: 10 * time.Second,
		},
		Thresholds: Thresholds{
			CPU:    ThresholdValues{Warning: 70, Critical: 90},
			Memory: ThresholdValues{Warning: 70, Critical: 90},
			Disk:   ThresholdValues{Warning: 80, Critical: 95},
		},
	}
}

// Loc resolves Location. Validate guarantees it loads.
func (c *Config) Loc() *time.Location {
	if c.Location == "" || c.Location == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return time.Local
	}
	return loc
}

// StrictOrdering reports whether superseded poll responses should be dropped.
func (c *Config) StrictOrdering() bool {
	return c.Ordering == OrderingLastIssued
}
