package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ModalState is the visibility state of the info overlay.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpening
	ModalOpen
	ModalClosing
)

func (s ModalState) String() string {
	switch s {
	case ModalOpening:
		return "opening"
	case ModalOpen:
		return "open"
	case ModalClosing:
		return "closing"
	default:
		return "closed"
	}
}

// modalFrame is the delay between making the overlay visible and marking it
// fully open, roughly one frame.
const modalFrame = 16 * time.Millisecond

// modalFrameMsg completes an open.
type modalFrameMsg struct {
	gen int
}

// modalClosedMsg completes a close once the transition has elapsed.
type modalClosedMsg struct {
	gen int
}

// Modal is the info overlay state machine. Open and Close are idempotent,
// and each transition is tagged with a generation so a late completion
// from an interrupted transition is ignored.
type Modal struct {
	state      ModalState
	gen        int
	transition time.Duration
}

// NewModal creates a closed modal whose close transition lasts transition.
func NewModal(transition time.Duration) *Modal {
	return &Modal{transition: transition}
}

// State returns the current state.
func (m *Modal) State() ModalState { return m.state }

// Visible reports whether the overlay should be drawn.
func (m *Modal) Visible() bool { return m.state != ModalClosed }

// Open makes the overlay visible. It does nothing if the overlay is
// already opening or open.
func (m *Modal) Open() tea.Cmd {
	if m.state == ModalOpening || m.state == ModalOpen {
		return nil
	}
	m.state = ModalOpening
	m.gen++
	gen := m.gen
	return tea.Tick(modalFrame, func(time.Time) tea.Msg {
		return modalFrameMsg{gen: gen}
	})
}

// Close starts hiding the overlay. It does nothing if the overlay is
// already closed or closing.
func (m *Modal) Close() tea.Cmd {
	if m.state == ModalClosed || m.state == ModalClosing {
		return nil
	}
	m.state = ModalClosing
	m.gen++
	gen := m.gen
	if m.transition <= 0 {
		return func() tea.Msg { return modalClosedMsg{gen: gen} }
	}
	return tea.Tick(m.transition, func(time.Time) tea.Msg {
		return modalClosedMsg{gen: gen}
	})
}

// Toggle opens a hidden overlay and closes a visible one.
func (m *Modal) Toggle() tea.Cmd {
	if m.state == ModalOpen || m.state == ModalOpening {
		return m.Close()
	}
	return m.Open()
}

// handleFrame completes an open started by the matching generation.
func (m *Modal) handleFrame(msg modalFrameMsg) {
	if msg.gen == m.gen && m.state == ModalOpening {
		m.state = ModalOpen
	}
}

// handleClosed completes a close started by the matching generation.
func (m *Modal) handleClosed(msg modalClosedMsg) {
	if msg.gen == m.gen && m.state == ModalClosing {
		m.state = ModalClosed
	}
}
