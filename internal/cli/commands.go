package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abimaelmartell/moni-dash/internal/demo"
	"github.com/abimaelmartell/moni-dash/internal/errors"
	"github.com/abimaelmartell/moni-dash/internal/logger"
)

// Command-specific flags
var (
	demoAddrFlag     string
	demoIntervalFlag string
	demoHistoryFlag  int
	demoHostFlag     string
)

// demoCmd serves synthetic metrics for trying the dashboard
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Serve synthetic metrics to point the dashboard at",
	Long: `Start a local server that answers /metrics and /info with generated
data in the moni wire format. Stop it with Ctrl+C.

Examples:
  moni-dash demo
  moni-dash demo --addr 127.0.0.1:9090 --interval 500ms
  moni-dash --endpoint http://127.0.0.1:9090`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return demoCommand(cmd.Context())
	},
}

func demoCommand(ctx context.Context) error {
	interval, err := parseDuration("interval", demoIntervalFlag)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(os.Stderr, "demo")
	src := demo.NewSource(demo.Options{
		Interval: interval,
		History:  demoHistoryFlag,
		Hostname: demoHostFlag,
		Seed:     time.Now().UnixNano(),
	})
	return demo.Serve(ctx, demoAddrFlag, src, log)
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for moni-dash.

Examples:
  # Bash
  moni-dash completion bash > /etc/bash_completion.d/moni-dash

  # Zsh
  moni-dash completion zsh > "${fpath[1]}/_moni-dash"

  # Fish
  moni-dash completion fish > ~/.config/fish/completions/moni-dash.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// demo command flags
	demoCmd.Flags().StringVar(&demoAddrFlag, "addr", "127.0.0.1:8080", "listen address")
	demoCmd.Flags().StringVar(&demoIntervalFlag, "interval", "1s", "sampling interval reported as update_interval")
	demoCmd.Flags().IntVar(&demoHistoryFlag, "history", 60, "number of samples kept")
	demoCmd.Flags().StringVar(&demoHostFlag, "hostname", "demo-host", "hostname reported by /info")

	// Register all commands
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(completionCmd)
}
