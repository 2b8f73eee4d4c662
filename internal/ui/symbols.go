package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Finished successfully
	SymbolFail    = "✗" // Failed
	SymbolPending = "○" // Not started
)
