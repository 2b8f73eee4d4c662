package cli

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abimaelmartell/moni-dash/internal/dashboard"
	"github.com/abimaelmartell/moni-dash/internal/errors"
	"github.com/abimaelmartell/moni-dash/internal/logger"
	"github.com/abimaelmartell/moni-dash/internal/prefs"
)

// dashCommand starts the TUI dashboard.
func dashCommand(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrConfig,
			"The dashboard needs an interactive terminal",
			"Use 'moni-dash info' for a one-shot snapshot, or 'moni-dash info --json' for scripts.")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Bubble Tea owns stdout from here on, so logs go to a file.
	log, closer, err := logger.NewFileLogger(cfg.LogFile, "dashboard")
	if err != nil {
		log = logger.Noop()
	} else {
		defer closer.Close()
	}
	logger.SetDefault(log)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	client, cleanup, err := newFetcher(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer cleanup()

	log.Info("starting dashboard for %s", cfg.Endpoint)

	model := dashboard.NewModel(dashboard.Options{
		Fetcher:         client,
		Prefs:           prefs.NewFileStore(cfg.PrefsPath),
		Endpoint:        cfg.Endpoint,
		Interval:        cfg.Interval,
		Strict:          cfg.StrictOrdering(),
		RefreshOnSort:   cfg.RefreshOnSort,
		Location:        cfg.Loc(),
		ModalTransition: cfg.ModalTransition,
		Thresholds:      cfg.Thresholds,
		Logger:          log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
