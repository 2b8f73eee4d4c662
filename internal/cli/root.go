package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/abimaelmartell/moni-dash/internal/config"
	"github.com/abimaelmartell/moni-dash/internal/errors"
	"github.com/abimaelmartell/moni-dash/internal/logger"
)

// Global flags
var (
	cfgFile      string
	endpointFlag string
	sshFlag      string
	timeoutFlag  string
	noColor      bool
	verbose      bool
)

// rootCmd runs the dashboard when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "moni-dash",
	Short: "Terminal dashboard for a moni metrics server",
	Long: `moni-dash polls a moni server and shows CPU, memory and load charts,
summary readouts and the top processes in your terminal.

Running moni-dash without a subcommand starts the dashboard.

Examples:
  moni-dash
  moni-dash --endpoint http://10.0.0.5:8080
  moni-dash --ssh web-1 --endpoint http://127.0.0.1:8080
  moni-dash info --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor || os.Getenv("NO_COLOR") != "" {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		if verbose {
			os.Setenv(logger.DebugEnv, "1")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashCommand(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/moni-dash/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&endpointFlag, "endpoint", "e", "", "moni server base URL")
	rootCmd.PersistentFlags().StringVar(&sshFlag, "ssh", "", "reach the endpoint through this SSH host")
	rootCmd.PersistentFlags().StringVar(&timeoutFlag, "timeout", "", "per-request timeout (e.g., 2s, 500ms)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")

	addDashFlags(rootCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// errSilent signals failure after the command already reported it.
var errSilent = stderrors.New("error already reported")

// printError writes err to stderr. Structured errors carry their own
// formatting; cobra's usage errors get a pointer to --help.
func printError(err error) {
	if err == errSilent {
		return
	}

	var dashErr *errors.Error
	if stderrors.As(err, &dashErr) {
		fmt.Fprintln(os.Stderr, dashErr.Error())
		return
	}

	if isUnknownCommandError(err) {
		name := extractUnknownCommand(err)
		if name != "" {
			fmt.Fprintf(os.Stderr, "✗ Unknown command '%s'\n\n  Run 'moni-dash --help' to see available commands\n", name)
			return
		}
	}

	fmt.Fprintf(os.Stderr, "✗ %s\n", err)
}

// isUnknownCommandError reports whether err came from cobra rejecting a
// command or flag.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the quoted command name out of cobra's
// `unknown command "foo" for "moni-dash"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// loadConfig reads the config file, applies global flag overrides and
// validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = endpointFlag
	}
	if flags.Changed("ssh") {
		cfg.SSH.Host = sshFlag
	}
	if flags.Changed("timeout") {
		d, err := parseDuration("timeout", timeoutFlag)
		if err != nil {
			return nil, err
		}
		cfg.RequestTimeout = d
	}
	if err := applyDashFlags(cmd, cfg); err != nil {
		return nil, err
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
