package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abimaelmartell/moni-dash/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "nil config",
			mutate:  nil,
			wantErr: "Config is nil",
		},
		{
			name:    "empty endpoint",
			mutate:  func(c *Config) { c.Endpoint = "" },
			wantErr: "endpoint is empty",
		},
		{
			name:    "non-http scheme",
			mutate:  func(c *Config) { c.Endpoint = "ftp://host:21" },
			wantErr: "must use http or https",
		},
		{
			name:    "missing scheme",
			mutate:  func(c *Config) { c.Endpoint = "localhost:8080" },
			wantErr: "must use http or https",
		},
		{
			name:    "no host",
			mutate:  func(c *Config) { c.Endpoint = "http://" },
			wantErr: "has no host",
		},
		{
			name:   "https endpoint",
			mutate: func(c *Config) { c.Endpoint = "https://moni.example.com" },
		},
		{
			name:    "interval too fast",
			mutate:  func(c *Config) { c.Interval = 50 * time.Millisecond },
			wantErr: "too fast",
		},
		{
			name:   "minimum interval accepted",
			mutate: func(c *Config) { c.Interval = MinInterval },
		},
		{
			name:    "negative request timeout",
			mutate:  func(c *Config) { c.RequestTimeout = -time.Second },
			wantErr: "request_timeout can't be negative",
		},
		{
			name:    "negative modal transition",
			mutate:  func(c *Config) { c.ModalTransition = -time.Millisecond },
			wantErr: "modal_transition can't be negative",
		},
		{
			name:    "unknown ordering",
			mutate:  func(c *Config) { c.Ordering = "newest" },
			wantErr: "ordering 'newest' isn't recognized",
		},
		{
			name:   "strict ordering",
			mutate: func(c *Config) { c.Ordering = OrderingLastIssued },
		},
		{
			name:    "bad location",
			mutate:  func(c *Config) { c.Location = "Mars/Olympus" },
			wantErr: "isn't a known time zone",
		},
		{
			name:   "utc location",
			mutate: func(c *Config) { c.Location = "UTC" },
		},
		{
			name:    "threshold out of range",
			mutate:  func(c *Config) { c.Thresholds.CPU.Critical = 120 },
			wantErr: "thresholds.cpu.critical needs to be 0-100",
		},
		{
			name: "warning above critical",
			mutate: func(c *Config) {
				c.Thresholds.Memory = ThresholdValues{Warning: 95, Critical: 90}
			},
			wantErr: "thresholds.memory.warning (95%) is higher than critical (90%)",
		},
		{
			name:   "zero thresholds disable coloring",
			mutate: func(c *Config) { c.Thresholds.Disk = ThresholdValues{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg *Config
			if tt.mutate != nil {
				cfg = DefaultConfig()
				tt.mutate(cfg)
			}

			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
