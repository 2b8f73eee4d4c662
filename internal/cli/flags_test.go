package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abimaelmartell/moni-dash/internal/config"
	"github.com/abimaelmartell/moni-dash/internal/errors"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{name: "empty string returns zero", value: "", want: 0},
		{name: "valid seconds", value: "5s", want: 5 * time.Second},
		{name: "valid milliseconds", value: "500ms", want: 500 * time.Millisecond},
		{name: "compound", value: "1m30s", want: 90 * time.Second},
		{name: "missing unit", value: "5", wantErr: true},
		{name: "garbage", value: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDuration("interval", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				assert.Contains(t, err.Error(), "--interval")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyDashFlags_IgnoresCommandsWithoutFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "sort"}
	cfg := config.DefaultConfig()

	require.NoError(t, applyDashFlags(cmd, cfg))
	assert.Equal(t, config.DefaultConfig().Interval, cfg.Interval)
	assert.True(t, cfg.RefreshOnSort)
}

func TestApplyDashFlags_OnlyChangedFlags(t *testing.T) {
	saved := dashFlags
	t.Cleanup(func() { dashFlags = saved })

	cmd := &cobra.Command{Use: "moni-dash"}
	addDashFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--ordering", "last-issued"}))

	cfg := config.DefaultConfig()
	require.NoError(t, applyDashFlags(cmd, cfg))

	assert.Equal(t, config.OrderingLastIssued, cfg.Ordering)
	assert.Equal(t, time.Second, cfg.Interval)
	assert.True(t, cfg.RefreshOnSort)
}
