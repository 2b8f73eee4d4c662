package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/abimaelmartell/moni-dash/internal/api"
	"github.com/abimaelmartell/moni-dash/internal/config"
	"github.com/abimaelmartell/moni-dash/internal/dashboard"
	"github.com/abimaelmartell/moni-dash/internal/errors"
	"github.com/abimaelmartell/moni-dash/internal/logger"
	"github.com/abimaelmartell/moni-dash/internal/prefs"
	"github.com/abimaelmartell/moni-dash/internal/ui"
)

var (
	infoJSON bool
	infoSort string
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print a one-shot snapshot of the host",
	Long: `Fetch host details, the latest metrics and the top processes once and
print them. Use --json for machine-readable output.

Examples:
  moni-dash info
  moni-dash info --sort memory
  moni-dash info --json | jq .data.latest.cpu_percent`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := infoCommand(cmd, os.Stdout)
		if err != nil && infoJSON {
			WriteJSONFromError(os.Stdout, err)
			return errSilent
		}
		return err
	},
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output in JSON format")
	infoCmd.Flags().StringVar(&infoSort, "sort", "", "rank processes by cpu or memory (default: saved preference)")
}

// SnapshotOutput is the JSON payload of the info command.
type SnapshotOutput struct {
	Endpoint     string             `json:"endpoint"`
	SortKey      string             `json:"sort_key"`
	Host         *api.HostInfo      `json:"host,omitempty"`
	Latest       api.MetricSample   `json:"latest"`
	History      []api.MetricSample `json:"history"`
	TopProcesses []api.ProcessEntry `json:"top_processes"`
}

func infoCommand(cmd *cobra.Command, w io.Writer) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	key, err := resolveSortKey(infoSort, prefs.NewFileStore(cfg.PrefsPath))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	client, cleanup, err := newFetcher(ctx, cfg, infoJSON)
	if err != nil {
		return err
	}
	defer cleanup()

	snap, err := takeSnapshot(ctx, client, key, logger.Default())
	if err != nil {
		return err
	}
	snap.Endpoint = cfg.Endpoint

	if infoJSON {
		return WriteJSONSuccess(w, snap)
	}
	renderSnapshot(w, snap, cfg)
	return nil
}

// resolveSortKey picks the explicit flag value when given, otherwise the
// saved preference.
func resolveSortKey(flag string, store prefs.Store) (api.SortKey, error) {
	if flag != "" {
		key := api.SortKey(strings.ToLower(flag))
		if !key.Valid() {
			return "", errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' isn't a sort key", flag),
				"Use cpu or memory.")
		}
		return key, nil
	}

	key, err := prefs.LoadSortKey(store)
	if err != nil {
		logger.Default().Warn("reading sort preference: %v", err)
	}
	return key, nil
}

// takeSnapshot fetches metrics and host info once. A host info failure is
// logged and leaves Host nil; a metrics failure is returned.
func takeSnapshot(ctx context.Context, f api.Fetcher, key api.SortKey, log logger.Logger) (*SnapshotOutput, error) {
	resp, err := f.FetchMetrics(ctx, key)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.DataPoints) == 0 {
		return nil, errors.New(errors.ErrPayload,
			"The server returned no data points",
			"The server may have just started. Try again in a few seconds.")
	}

	snap := &SnapshotOutput{
		SortKey:      key.String(),
		Latest:       resp.DataPoints[len(resp.DataPoints)-1],
		History:      resp.DataPoints,
		TopProcesses: resp.TopProcesses,
	}
	if snap.TopProcesses == nil {
		snap.TopProcesses = []api.ProcessEntry{}
	}

	info, err := f.FetchInfo(ctx)
	if err != nil {
		log.Warn("fetching host info: %v", err)
	} else {
		snap.Host = info
	}
	return snap, nil
}

var (
	snapTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.ColorInfo)
	snapLabelStyle = lipgloss.NewStyle().Foreground(ui.ColorMuted).Width(17)
)

const snapBarWidth = 20

// renderSnapshot writes the human-readable snapshot.
func renderSnapshot(w io.Writer, snap *SnapshotOutput, cfg *config.Config) {
	if snap.Host != nil {
		panel := dashboard.NewInfoPanel()
		panel.Apply(snap.Host)
		fmt.Fprintln(w, snapTitleStyle.Render("Host"))
		for _, f := range panel.Fields() {
			fmt.Fprintf(w, "  %s%s\n", snapLabelStyle.Render(f.Label), f.Value)
		}
		fmt.Fprintln(w)
	}

	r := dashboard.NewReadouts(snap.Latest)
	cpuHistory := make([]float64, len(snap.History))
	for i, s := range snap.History {
		cpuHistory[i] = s.CPUPercent
	}

	fmt.Fprintln(w, snapTitleStyle.Render("Now"))
	fmt.Fprintf(w, "  %s%s  %s\n", snapLabelStyle.Render("CPU"),
		ui.RenderGauge(r.CPUPercent, snapBarWidth, cfg.Thresholds.CPU.Warning, cfg.Thresholds.CPU.Critical),
		ui.RenderSparkline(cpuHistory, 30, cfg.Thresholds.CPU.Warning, cfg.Thresholds.CPU.Critical))
	fmt.Fprintf(w, "  %s%s  %s\n", snapLabelStyle.Render("Memory"),
		ui.RenderGauge(r.MemoryPercent, snapBarWidth, cfg.Thresholds.Memory.Warning, cfg.Thresholds.Memory.Critical),
		r.MemoryDetail)
	fmt.Fprintf(w, "  %s%s  %s\n", snapLabelStyle.Render("Disk"),
		ui.RenderGauge(r.DiskPercent, snapBarWidth, cfg.Thresholds.Disk.Warning, cfg.Thresholds.Disk.Critical),
		r.DiskDetail)
	fmt.Fprintf(w, "  %s%s\n", snapLabelStyle.Render("Load"), r.Load)
	fmt.Fprintln(w)

	key := api.ParseSortKey(snap.SortKey)
	fmt.Fprintln(w, snapTitleStyle.Render(fmt.Sprintf("Top processes (sorted by %s)", key)))
	if len(snap.TopProcesses) == 0 {
		fmt.Fprintln(w, "  none reported")
		return
	}

	titles := dashboard.Headers(key)
	cols := []ui.TableColumn{
		{Title: titles[0], Width: 8},
		{Title: titles[1], Width: 10},
		{Title: titles[2], Width: 10},
		{Title: titles[3], Width: 40},
	}
	rows := make([][]string, len(snap.TopProcesses))
	for i, p := range snap.TopProcesses {
		rows[i] = dashboard.Cells(p, key)
	}
	fmt.Fprintln(w, ui.RenderSimpleTable(cols, rows))
}
