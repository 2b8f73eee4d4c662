// Package dashboard implements the moni-dash terminal dashboard.
//
// The dashboard polls a moni server's /metrics endpoint on a timer and shows
// the returned sample window as three charts (CPU, memory, 1 minute load),
// a row of summary readouts taken from the newest sample, and the server's
// top process list. Host details from /info are shown in an overlay.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds all display state (sort key, series, charts, table, overlay)
//   - Update: Processes messages (keystrokes, poll ticks, fetch results)
//   - View: Renders the current state to a string for display
//
// HTTP requests run as tea.Cmd goroutines that only return messages, so every
// surface is mutated from Update and needs no locking.
//
// # Key Components
//
//	Poller       - Owns the poll timer and issues /metrics fetches
//	Series       - The latest sample window, replaced on every success
//	Chart        - Braille line chart over one projection of the series
//	ProcessTable - Server-ranked process rows with sort-aware headers
//	InfoPanel    - Host description fields filled once from /info
//	Modal        - Open/close state machine for the info overlay
//
// # Message Flow
//
//  1. Init arms the timer, polls once and requests /info
//  2. pollTickMsg re-arms the timer and starts a fetch without waiting on it
//  3. metricsMsg is checked by the Poller and applied to every surface
//  4. infoMsg fills the info panel and re-arms the timer at the server cadence
//
// A failed poll (transport error, non-2xx status, malformed or empty body) is
// logged and leaves every surface exactly as it was.
//
// # Overlapping Polls
//
// The timer never waits on a request, so a slow server can have several
// fetches in flight. By default results are applied in arrival order and a
// late response can replace a newer one. With strict ordering each fetch
// cancels its predecessor and results older than the latest issued fetch are
// dropped.
package dashboard
