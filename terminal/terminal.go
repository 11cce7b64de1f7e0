package terminal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lixenwraith/glyphcast/constant"
)

// Terminal provides low-level terminal access
type Terminal interface {
	// Init enters raw mode and the alternate screen, hides the cursor, disables auto-wrap
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini() error

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Output returns the glyph sink for this terminal
	Output() *Output

	// PollEvent waits at most timeout for one event
	// Returns false on timeout; a non-nil error means input is unusable
	PollEvent(timeout time.Duration) (Event, bool, error)
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend Backend
	output  *Output
	parser  *parser

	// pending holds parsed events not yet returned; only touched by the polling goroutine
	pending []Event

	// resizeCh holds at most the latest resize
	resizeCh chan Event

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal on stdin/stdout
func New() Terminal {
	return newTerminal(newBackend())
}

func newTerminal(b Backend) *termImpl {
	return &termImpl{
		backend:  b,
		output:   NewOutput(b),
		parser:   newParser(),
		resizeCh: make(chan Event, 1),
	}
}

func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.backend.SetResizeHandler(t.postResize)

	// Auto-wrap off keeps a write to the bottom-right cell from scrolling
	err := t.output.writeRaw(csiAltScreenEnter, csiCursorHide, csiAutoWrapOff, csiClear)
	if err != nil {
		// Leave raw mode rather than strand the terminal half-initialized
		return errors.Join(fmt.Errorf("enter alternate screen: %w", err), t.backend.Fini())
	}

	t.initialized = true
	return nil
}

func (t *termImpl) Fini() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	t.finalized = true

	// Auto-wrap is re-enabled after leaving the alternate screen so the main buffer gets it
	var errs []error
	if err := t.output.close(csiSyncEnd, csiCursorShow, csiAltScreenExit, csiAutoWrapOn, csiSGR0); err != nil {
		errs = append(errs, fmt.Errorf("leave alternate screen: %w", err))
	}
	if err := t.backend.Fini(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (t *termImpl) Size() (int, int) {
	return t.backend.Size()
}

func (t *termImpl) Output() *Output {
	return t.output
}

// postResize replaces any unconsumed resize so only the latest size is pending
func (t *termImpl) postResize(w, h int) {
	ev := Event{Type: EventResize, Width: w, Height: h}
	for {
		select {
		case t.resizeCh <- ev:
			return
		default:
		}
		select {
		case <-t.resizeCh:
		default:
		}
	}
}

// PollEvent reads in short slices so a pending resize is noticed without waiting out the full timeout
func (t *termImpl) PollEvent(timeout time.Duration) (Event, bool, error) {
	deadline := time.Now().Add(timeout)

	for {
		if len(t.pending) > 0 {
			ev := t.pending[0]
			t.pending = t.pending[1:]
			return ev, true, nil
		}

		select {
		case ev := <-t.resizeCh:
			return ev, true, nil
		default:
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return Event{}, false, nil
		}
		slice := min(remaining, constant.InputPollSlice)
		if t.parser.pendingEscape() {
			slice = min(slice, constant.EscapeTimeout)
		}

		data, err := t.backend.Read(slice)
		if err != nil {
			return Event{}, false, err
		}

		if len(data) == 0 {
			t.pending = append(t.pending[:0], t.parser.flushEscape()...)
			continue
		}

		t.pending = append(t.pending[:0], t.parser.feed(data)...)
	}
}
