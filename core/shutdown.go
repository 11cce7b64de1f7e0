package core

import (
	"log"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
)

// Shutdown triggers, passed to InvokeAll for diagnostics
const (
	TriggerExitRequest = "exit-request"
	TriggerSignal      = "signal"
	TriggerProcessExit = "process-exit"
	TriggerPanic       = "panic"
)

// Shutdown is the process-wide cleanup registry
// Callbacks registered before an InvokeAll run exactly once; callbacks registered
// afterwards are picked up by the next InvokeAll round
type Shutdown struct {
	mu        sync.Mutex
	callbacks []func()

	// Set from the signal watcher only, observed once per tick by the host loop
	terminate atomic.Bool
}

// NewShutdown creates an empty registry
func NewShutdown() *Shutdown {
	return &Shutdown{}
}

// Register appends a cleanup callback
func (s *Shutdown) Register(cb func()) {
	if cb == nil {
		return
	}
	s.mu.Lock()
	s.callbacks = append(s.callbacks, cb)
	s.mu.Unlock()
}

// Pending returns the number of callbacks not yet invoked
func (s *Shutdown) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.callbacks)
}

// InvokeAll drains the registry and runs each callback in registration order on the calling goroutine
// The lock is released before invocation so callbacks may Register
// A panicking callback is logged and does not prevent the rest from running
func (s *Shutdown) InvokeAll(trigger string) int {
	s.mu.Lock()
	cbs := s.callbacks
	s.callbacks = nil
	s.mu.Unlock()

	if len(cbs) == 0 {
		return 0
	}

	log.Printf("shutdown: invoking %d callbacks (%s)", len(cbs), trigger)
	for _, cb := range cbs {
		invokeSafe(cb)
	}
	return len(cbs)
}

func invokeSafe(cb func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("shutdown: callback panicked: %v", r)
		}
	}()
	cb()
}

// RequestTerminate raises the terminate flag
func (s *Shutdown) RequestTerminate() {
	s.terminate.Store(true)
}

// Terminated reports whether a terminate signal has been observed
func (s *Shutdown) Terminated() bool {
	return s.terminate.Load()
}

// WatchSignals raises the terminate flag when any of sigs arrives
// The watcher only sets the flag; callbacks run later on the host loop
// Returned function stops watching
func (s *Shutdown) WatchSignals(sigs ...os.Signal) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	doneCh := make(chan struct{})
	signal.Notify(sigCh, sigs...)

	go func() {
		for {
			select {
			case <-doneCh:
				return
			case <-sigCh:
				s.RequestTerminate()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(doneCh)
		})
	}
}
