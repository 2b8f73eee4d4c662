package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abimaelmartell/moni-dash/internal/errors"
)

// isolate points every XDG lookup at a temp dir so tests never read the
// developer's real config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	dir := isolate(t)
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:8080", cfg.Endpoint)
	assert.Equal(t, time.Second, cfg.Interval)
	assert.Zero(t, cfg.RequestTimeout)
	assert.Equal(t, OrderingLastApplied, cfg.Ordering)
	assert.True(t, cfg.RefreshOnSort)
	assert.Equal(t, "Local", cfg.Location)
	assert.Equal(t, filepath.Join(dir, "config", "moni-dash", "prefs.yaml"), cfg.PrefsPath)
	assert.Equal(t, filepath.Join(dir, "state", "moni-dash", "moni-dash.log"), cfg.LogFile)
	assert.Equal(t, 200*time.Millisecond, cfg.ModalTransition)
	assert.Empty(t, cfg.SSH.Host)
	assert.Equal(t, 70, cfg.Thresholds.CPU.Warning)
	assert.Equal(t, 90, cfg.Thresholds.CPU.Critical)
	assert.Equal(t, 95, cfg.Thresholds.Disk.Critical)

	require.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
endpoint: https://metrics.internal:9000
interval: 2s
request_timeout: 750ms
ordering: last-issued
refresh_on_sort: false
location: UTC
prefs_path: ~/moni/prefs.yaml
ssh:
  host: deploy@web-1
thresholds:
  cpu:
    warning: 50
    critical: 80
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://metrics.internal:9000", cfg.Endpoint)
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
	assert.True(t, cfg.StrictOrdering())
	assert.False(t, cfg.RefreshOnSort)
	assert.Equal(t, time.UTC, cfg.Loc())
	assert.Equal(t, filepath.Join(dir, "moni", "prefs.yaml"), cfg.PrefsPath)
	assert.Equal(t, "deploy@web-1", cfg.SSH.Host)
	assert.Equal(t, 10*time.Second, cfg.SSH.Timeout, "unset nested keys keep defaults")
	assert.Equal(t, 50, cfg.Thresholds.CPU.Warning)
	assert.Equal(t, 70, cfg.Thresholds.Memory.Warning)
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Endpoint, cfg.Endpoint)
	assert.Equal(t, time.Second, cfg.Interval)
}

func TestLoad_DefaultPathIsRead(t *testing.T) {
	dir := isolate(t)
	cfgDir := filepath.Join(dir, "config", "moni-dash")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	writeConfig(t, cfgDir, "endpoint: http://10.0.0.2:8080\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.2:8080", cfg.Endpoint)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "Config file not found")
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "endpoint: [oops\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "endpoint: http://file:8080\ninterval: 2s\n")

	t.Setenv("MONI_DASH_ENDPOINT", "http://env:8080")
	t.Setenv("MONI_DASH_INTERVAL", "500ms")
	t.Setenv("MONI_DASH_REFRESH_ON_SORT", "false")
	t.Setenv("MONI_DASH_SSH_HOST", "bastion")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env:8080", cfg.Endpoint)
	assert.Equal(t, 500*time.Millisecond, cfg.Interval)
	assert.False(t, cfg.RefreshOnSort)
	assert.Equal(t, "bastion", cfg.SSH.Host)
}

func TestExpandPath(t *testing.T) {
	dir := isolate(t)
	t.Setenv("USER", "ops")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, dir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(dir, "a", "b"), ExpandPath("~/a/b"))
	assert.Equal(t, dir+"/logs/ops.log", ExpandPath("${HOME}/logs/${USER}.log"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}

func TestStateDirFallback(t *testing.T) {
	dir := isolate(t)
	t.Setenv("XDG_STATE_HOME", "")

	assert.Equal(t, filepath.Join(dir, ".local", "state", "moni-dash"), StateDir())
}
