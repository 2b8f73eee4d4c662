package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModalState_String(t *testing.T) {
	tests := []struct {
		state  ModalState
		expect string
	}{
		{ModalClosed, "closed"},
		{ModalOpening, "opening"},
		{ModalOpen, "open"},
		{ModalClosing, "closing"},
		{ModalState(99), "closed"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.state.String())
		})
	}
}

func TestModal_OpenThenFrame(t *testing.T) {
	m := NewModal(time.Millisecond)

	require.NotNil(t, m.Open())
	assert.Equal(t, ModalOpening, m.State())
	assert.True(t, m.Visible())

	m.handleFrame(modalFrameMsg{gen: m.gen})
	assert.Equal(t, ModalOpen, m.State())
}

func TestModal_OpenIsIdempotent(t *testing.T) {
	m := NewModal(time.Millisecond)
	m.Open()
	gen := m.gen

	assert.Nil(t, m.Open())
	assert.Equal(t, gen, m.gen)

	m.handleFrame(modalFrameMsg{gen: gen})
	assert.Nil(t, m.Open())
	assert.Equal(t, ModalOpen, m.State())
}

func TestModal_CloseFromClosedIsNoop(t *testing.T) {
	m := NewModal(time.Millisecond)

	assert.Nil(t, m.Close())
	assert.Equal(t, ModalClosed, m.State())
	assert.False(t, m.Visible())
}

func TestModal_CloseAfterTransition(t *testing.T) {
	m := NewModal(time.Millisecond)
	m.Open()
	m.handleFrame(modalFrameMsg{gen: m.gen})

	require.NotNil(t, m.Close())
	assert.Equal(t, ModalClosing, m.State())
	assert.True(t, m.Visible())

	// Closing twice does not restart the transition.
	gen := m.gen
	assert.Nil(t, m.Close())
	assert.Equal(t, gen, m.gen)

	m.handleClosed(modalClosedMsg{gen: gen})
	assert.Equal(t, ModalClosed, m.State())
}

func TestModal_CloseWhileOpening(t *testing.T) {
	m := NewModal(time.Millisecond)
	m.Open()
	openGen := m.gen

	require.NotNil(t, m.Close())
	assert.Equal(t, ModalClosing, m.State())

	// The frame from the interrupted open must not reopen it.
	m.handleFrame(modalFrameMsg{gen: openGen})
	assert.Equal(t, ModalClosing, m.State())

	m.handleClosed(modalClosedMsg{gen: m.gen})
	assert.Equal(t, ModalClosed, m.State())
}

func TestModal_OpenWhileClosing(t *testing.T) {
	m := NewModal(time.Millisecond)
	m.Open()
	m.handleFrame(modalFrameMsg{gen: m.gen})
	m.Close()
	closeGen := m.gen

	require.NotNil(t, m.Open())
	assert.Equal(t, ModalOpening, m.State())

	// The pending close completion is stale.
	m.handleClosed(modalClosedMsg{gen: closeGen})
	assert.Equal(t, ModalOpening, m.State())

	m.handleFrame(modalFrameMsg{gen: m.gen})
	assert.Equal(t, ModalOpen, m.State())
}

func TestModal_ZeroTransitionClosesImmediately(t *testing.T) {
	m := NewModal(0)
	m.Open()
	m.handleFrame(modalFrameMsg{gen: m.gen})

	cmd := m.Close()
	require.NotNil(t, cmd)
	msg, ok := cmd().(modalClosedMsg)
	require.True(t, ok)

	m.handleClosed(msg)
	assert.Equal(t, ModalClosed, m.State())
}

func TestModal_Toggle(t *testing.T) {
	m := NewModal(time.Millisecond)

	m.Toggle()
	assert.Equal(t, ModalOpening, m.State())

	m.Toggle()
	assert.Equal(t, ModalClosing, m.State())

	m.Toggle()
	assert.Equal(t, ModalOpening, m.State())
}
