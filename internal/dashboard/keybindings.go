package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abimaelmartell/moni-dash/internal/api"
)

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyRefresh    = "r"
	KeyToggleSort = "s"
	KeySortCPU    = "c"
	KeySortMemory = "m"
	KeyInfo       = "i"
	KeyClose      = "esc"
	KeyToggleHelp = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Quit works from anywhere
	if key == KeyQuit || key == KeyQuitAlt {
		m.quitting = true
		m.poller.Stop()
		return true, tea.Quit
	}

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyClose {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyClose:
		// Closing an already closed overlay is a no-op.
		return true, m.modal.Close()

	case KeyInfo:
		return true, m.modal.Toggle()

	case KeyRefresh:
		return true, m.poller.Fetch(m.sortKey)

	case KeyToggleSort:
		return true, m.SetSortKey(m.sortKey.Next())

	case KeySortCPU:
		return true, m.SetSortKey(api.SortByCPU)

	case KeySortMemory:
		return true, m.SetSortKey(api.SortByMemory)
	}

	return false, nil
}
