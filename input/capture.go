package input

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/glyphcast/terminal"
)

// Source is a blocking event source with a bounded wait
// PollEvent returns false on timeout; any error ends capture
type Source interface {
	PollEvent(timeout time.Duration) (terminal.Event, bool, error)
}

// State distinguishes the synthesized halves of a keystroke
type State uint8

const (
	Pressed State = iota
	Released
)

func (s State) String() string {
	if s == Released {
		return "released"
	}
	return "pressed"
}

// Event is a logical key event delivered to the tick loop
type Event struct {
	Code      KeyCode
	Rune      rune // Raw rune, 0 for non-rune keys
	Modifiers terminal.Modifier
	State     State
}

// Resize is the latest terminal size observed since the previous drain
type Resize struct {
	Width  int
	Height int
}

// Capture polls a Source on a background goroutine and buffers what it reads
// Keys queue in arrival order; resizes coalesce to the most recent
type Capture struct {
	source  Source
	timeout time.Duration

	mu        sync.Mutex
	keys      []terminal.Event
	resize    Resize
	hasResize bool

	started atomic.Bool
}

// NewCapture creates a capture over source; timeout bounds each poll
func NewCapture(source Source, timeout time.Duration) *Capture {
	return &Capture{
		source:  source,
		timeout: timeout,
	}
}

// Start launches the worker through spawn, or a bare goroutine when spawn is nil
// Only the first call starts anything. The worker stops when ctx is done,
// checked after every bounded poll, or on the first source error
func (c *Capture) Start(ctx context.Context, spawn func(func())) bool {
	if !c.started.CompareAndSwap(false, true) {
		return false
	}
	if spawn == nil {
		go c.run(ctx)
	} else {
		spawn(func() { c.run(ctx) })
	}
	return true
}

func (c *Capture) run(ctx context.Context) {
	for ctx.Err() == nil {
		ev, ok, err := c.source.PollEvent(c.timeout)
		if err != nil {
			// Nothing restarts the worker; the loop keeps running without input
			log.Printf("input: capture stopped: %v", err)
			return
		}
		if !ok {
			continue
		}

		c.mu.Lock()
		switch ev.Type {
		case terminal.EventKey:
			c.keys = append(c.keys, ev)
		case terminal.EventResize:
			c.resize = Resize{Width: ev.Width, Height: ev.Height}
			c.hasResize = true
		}
		c.mu.Unlock()
	}
}

// Drain takes everything buffered since the last call without blocking
// Each key yields a Pressed event immediately followed by a Released event
func (c *Capture) Drain() ([]Event, *Resize) {
	c.mu.Lock()
	keys := c.keys
	c.keys = nil
	var resize *Resize
	if c.hasResize {
		r := c.resize
		resize = &r
		c.hasResize = false
	}
	c.mu.Unlock()

	if len(keys) == 0 {
		return nil, resize
	}

	events := make([]Event, 0, len(keys)*2)
	for _, k := range keys {
		code, mods := Translate(k)
		ev := Event{Code: code, Modifiers: mods, State: Pressed}
		if k.Key == terminal.KeyRune {
			ev.Rune = k.Rune
		}
		events = append(events, ev)
		ev.State = Released
		events = append(events, ev)
	}
	return events, resize
}
