package core

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/glyphcast/terminal"
)

// osExit is replaced in tests
var osExit = os.Exit

// Exit is the last-resort process-exit hook: runs every pending callback, then exits
func (s *Shutdown) Exit(code int) {
	s.InvokeAll(TriggerProcessExit)
	osExit(code)
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func (s *Shutdown) HandleCrash(r any) {
	if r == nil {
		return
	}

	// Registered cleanup first; escape sequences alone don't restore termios
	s.InvokeAll(TriggerPanic)
	terminal.EmergencyReset(os.Stdout)

	os.Stdout.Sync()
	os.Stderr.Sync()

	// \r\n in case raw mode survived the cleanup
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	osExit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func (s *Shutdown) Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.HandleCrash(r)
			}
		}()
		fn()
	}()
}
