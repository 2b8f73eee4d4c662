package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abimaelmartell/moni-dash/internal/api"
	"github.com/abimaelmartell/moni-dash/internal/format"
)

// placeholder is shown for fields that have not been fetched yet.
const placeholder = "-"

// infoMsg carries the outcome of the startup /info request.
type infoMsg struct {
	info *api.HostInfo
	err  error
}

// fetchInfoCmd requests host info once.
func fetchInfoCmd(fetcher api.Fetcher) tea.Cmd {
	return func() tea.Msg {
		info, err := fetcher.FetchInfo(context.Background())
		return infoMsg{info: info, err: err}
	}
}

// InfoField is one labelled line of the info panel.
type InfoField struct {
	Label string
	Value string
}

// InfoPanel holds the rendered host description shown in the info overlay.
type InfoPanel struct {
	Hostname       string
	IP             string
	Uptime         string
	OS             string
	CPU            string
	Memory         string
	Disk           string
	UpdateInterval string
	Interface      string

	loaded bool
}

// NewInfoPanel returns a panel with every field set to the placeholder.
func NewInfoPanel() *InfoPanel {
	return &InfoPanel{
		Hostname:       placeholder,
		IP:             placeholder,
		Uptime:         placeholder,
		OS:             placeholder,
		CPU:            placeholder,
		Memory:         placeholder,
		Disk:           placeholder,
		UpdateInterval: placeholder,
		Interface:      placeholder,
	}
}

// Loaded reports whether info has been applied at least once.
func (p *InfoPanel) Loaded() bool { return p.loaded }

// Apply fills every field from info and returns the poll cadence the
// server asked for. ok is false when the server reported no usable
// interval, in which case the current cadence should be kept.
func (p *InfoPanel) Apply(info *api.HostInfo) (cadence time.Duration, ok bool) {
	p.Hostname = info.Hostname
	p.IP = info.IP
	p.Uptime = info.Uptime
	p.OS = format.FormatOS(info.OS, info.Platform, info.PlatformVersion, info.KernelVersion)
	p.CPU = format.FormatCPUModel(info.CPUModel, info.CPUCores)
	p.Memory = format.FormatCapacity(info.UsedMemory, info.TotalMemory)
	p.Disk = format.FormatCapacity(info.UsedDisk, info.TotalDisk)
	p.UpdateInterval = format.FormatInterval(info.UpdateInterval)
	p.Interface = info.Interface
	p.loaded = true

	if info.UpdateInterval <= 0 {
		return 0, false
	}
	return time.Duration(info.UpdateInterval) * time.Millisecond, true
}

// Fields returns the panel contents in display order.
func (p *InfoPanel) Fields() []InfoField {
	return []InfoField{
		{Label: "Hostname", Value: p.Hostname},
		{Label: "IP", Value: p.IP},
		{Label: "Uptime", Value: p.Uptime},
		{Label: "OS", Value: p.OS},
		{Label: "CPU", Value: p.CPU},
		{Label: "Memory", Value: p.Memory},
		{Label: "Disk", Value: p.Disk},
		{Label: "Update interval", Value: p.UpdateInterval},
		{Label: "Interface", Value: p.Interface},
	}
}
