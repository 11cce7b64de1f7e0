package terminal

import (
	"errors"
	"time"
)

// ErrNotTerminal is returned when stdin is not a terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Init enables raw input mode
	Init() error
	// Fini restores the saved input mode
	Fini() error

	// Size returns the current terminal dimensions
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read waits at most timeout for input; returns nil data on timeout
	// Any error is fatal to the reader
	Read(timeout time.Duration) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
