// Package cli implements the moni-dash command-line interface.
//
// The root command runs the dashboard. Subcommands cover the things you
// want without a full-screen UI:
//
//	moni-dash                 - Live dashboard (CPU, memory, load, top processes)
//	moni-dash info [--json]   - One-shot snapshot of the host
//	moni-dash sort [cpu|memory] - Show or change the saved sort key
//	moni-dash demo            - Serve synthetic metrics locally
//	moni-dash version         - Build information
//	moni-dash completion      - Shell completion scripts
//
// # Configuration
//
// Every command resolves its settings the same way in loadConfig: defaults,
// then the config file (--config or $XDG_CONFIG_HOME/moni-dash/config.yaml),
// then MONI_DASH_* environment variables, then flags. The merged config is
// validated before anything touches the network.
//
// # SSH
//
// With --ssh (or ssh.host in the config) requests are carried over an SSH
// connection and the endpoint is dialed from the remote side, so a server
// bound to the remote loopback interface is reachable.
//
// # Output
//
// While the dashboard owns the terminal, logs go to the configured log file.
// Errors returned from commands are printed once by Execute; info --json
// writes failures into the JSON envelope instead.
package cli
