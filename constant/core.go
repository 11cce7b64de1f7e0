package constant

import "time"

// Tick loop timing
const (
	// TickRate is the default host loop cadence in Hz
	TickRate = 60

	// MaxTickRate bounds configured cadence
	MaxTickRate = 1000

	// InputPollTimeout is the bounded wait of one input worker poll
	InputPollTimeout = 500 * time.Millisecond

	// InputPollSlice is the longest single blocking read inside one poll, so resize
	// notifications are not starved by an idle stdin
	InputPollSlice = 50 * time.Millisecond

	// EscapeTimeout separates a standalone ESC from the start of an escape sequence
	EscapeTimeout = 50 * time.Millisecond
)

// Grid content
const (
	// BlankGlyph marks an unpainted cell
	BlankGlyph = ' '

	// PlaceholderGlyph replaces glyphs that do not occupy exactly one cell
	PlaceholderGlyph = '?'
)

// Terminal fallbacks
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)
