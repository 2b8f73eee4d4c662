package ui

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSpinner returns a spinner writing into a buffer and a reader for it.
func captureSpinner(label string) (*Spinner, func() string) {
	var buf strings.Builder
	var mu sync.Mutex

	s := NewSpinner(label)
	s.SetOutput(func(str string) {
		mu.Lock()
		buf.WriteString(str)
		mu.Unlock()
	})
	return s, func() string {
		mu.Lock()
		defer mu.Unlock()
		return buf.String()
	}
}

func TestNewSpinner(t *testing.T) {
	s := NewSpinner("Connecting to web-1")
	assert.Equal(t, "Connecting to web-1", s.Label())
	assert.Equal(t, SpinnerPending, s.State())
}

func TestSpinnerStartStop(t *testing.T) {
	s, output := captureSpinner("Test")

	s.Start()
	assert.Equal(t, SpinnerInProgress, s.State())
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	// Stop leaves the state alone.
	assert.Equal(t, SpinnerInProgress, s.State())
	assert.Contains(t, output(), "Test...")
}

func TestSpinnerSuccess(t *testing.T) {
	s, output := captureSpinner("Connecting")

	s.Start()
	time.Sleep(20 * time.Millisecond)
	s.Success()

	assert.Equal(t, SpinnerSuccess, s.State())
	assert.Contains(t, output(), SymbolSuccess)
	assert.True(t, strings.HasSuffix(output(), "\n"))
}

func TestSpinnerFail(t *testing.T) {
	s, output := captureSpinner("Connecting")

	s.Start()
	time.Sleep(20 * time.Millisecond)
	s.Fail()

	assert.Equal(t, SpinnerFailed, s.State())
	assert.Contains(t, output(), SymbolFail)
}

func TestSpinnerElapsed(t *testing.T) {
	s, _ := captureSpinner("Test")
	assert.Equal(t, time.Duration(0), s.Elapsed())

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	assert.Greater(t, s.Elapsed(), time.Duration(0))
}

func TestSpinnerDoubleStartStop(t *testing.T) {
	s, _ := captureSpinner("Test")

	s.Start()
	s.Start()
	assert.Equal(t, SpinnerInProgress, s.State())

	s.Stop()
	s.Stop()
	assert.Equal(t, SpinnerInProgress, s.State())
}

func TestSpinnerFrames(t *testing.T) {
	assert.Equal(t, []string{"◐", "◓", "◑", "◒"}, SpinnerFrames.Frames)
	assert.Equal(t, time.Second/10, SpinnerFrames.FPS)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{0, "0.00s"},
		{50 * time.Millisecond, "0.05s"},
		{100 * time.Millisecond, "0.1s"},
		{1 * time.Second, "1.0s"},
		{1500 * time.Millisecond, "1.5s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.duration))
		})
	}
}

func TestSpinnerConcurrentAccess(t *testing.T) {
	s, _ := captureSpinner("Test")
	s.Start()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.State()
			_ = s.Label()
			_ = s.Elapsed()
		}()
	}

	wg.Wait()
	s.Success()

	require.Equal(t, SpinnerSuccess, s.State())
}
