package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abimaelmartell/moni-dash/internal/api"
)

func testInfo() *api.HostInfo {
	return &api.HostInfo{
		Hostname:        "web-1",
		IP:              "10.0.0.5",
		Uptime:          "72h3m1s",
		OS:              "linux",
		Platform:        "ubuntu",
		PlatformVersion: "22.04",
		KernelVersion:   "5.15.0",
		CPUModel:        "AMD EPYC",
		CPUCores:        8,
		UsedMemory:      2048,
		TotalMemory:     4096,
		UsedDisk:        512,
		TotalDisk:       1024,
		UpdateInterval:  1500,
		Interface:       "eth0",
	}
}

func TestInfoPanel_Placeholders(t *testing.T) {
	p := NewInfoPanel()

	assert.False(t, p.Loaded())
	for _, f := range p.Fields() {
		assert.Equal(t, "-", f.Value, f.Label)
	}
}

func TestInfoPanel_Apply(t *testing.T) {
	p := NewInfoPanel()

	cadence, ok := p.Apply(testInfo())

	assert.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, cadence)
	assert.True(t, p.Loaded())
	assert.Equal(t, "web-1", p.Hostname)
	assert.Equal(t, "10.0.0.5", p.IP)
	assert.Equal(t, "72h3m1s", p.Uptime)
	assert.Equal(t, "Ubuntu 22.04 (kernel 5.15.0)", p.OS)
	assert.Equal(t, "AMD EPYC (8 cores)", p.CPU)
	assert.Equal(t, "2.00 KB / 4.00 KB", p.Memory)
	assert.Equal(t, "512 B / 1.00 KB", p.Disk)
	assert.Equal(t, "1.5s", p.UpdateInterval)
	assert.Equal(t, "eth0", p.Interface)
}

func TestInfoPanel_NonPositiveInterval(t *testing.T) {
	for _, ms := range []int64{0, -1000} {
		info := testInfo()
		info.UpdateInterval = ms

		p := NewInfoPanel()
		cadence, ok := p.Apply(info)

		assert.False(t, ok)
		assert.Zero(t, cadence)
		assert.Equal(t, "web-1", p.Hostname)
	}
}

func TestInfoPanel_FieldOrder(t *testing.T) {
	var labels []string
	for _, f := range NewInfoPanel().Fields() {
		labels = append(labels, f.Label)
	}
	assert.Equal(t, []string{
		"Hostname", "IP", "Uptime", "OS", "CPU", "Memory", "Disk", "Update interval", "Interface",
	}, labels)
}

func TestFetchInfoCmd(t *testing.T) {
	f := &fakeFetcher{info: testInfo()}

	msg := fetchInfoCmd(f)().(infoMsg)

	assert.NoError(t, msg.err)
	assert.Equal(t, "web-1", msg.info.Hostname)
}
