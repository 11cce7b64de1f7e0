// Package tcell adapts a tcell screen to the glyph sink and event source used by the engine.
// Cell diffing still happens in render.Flush; tcell only receives the changed cells.
package tcell

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyphcast/constant"
	"github.com/lixenwraith/glyphcast/terminal"
)

// ErrClosed is returned by PollEvent once the screen has been finalized
var ErrClosed = errors.New("tcell screen closed")

// Screen drives a tcell.Screen
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	style  tcell.Style

	col int
	row int

	started bool
	closed  bool
}

// NewScreen creates a Screen on the controlling terminal
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return Wrap(s), nil
}

// Wrap uses an existing, not yet initialized tcell screen (e.g. a simulation screen)
func Wrap(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
		style:  tcell.StyleDefault,
	}
}

// Init enters raw mode and starts the event pump
func (s *Screen) Init() error {
	if s.started {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()
	s.started = true

	// PollEvent blocks without a deadline; the pump turns it into a channel so polls can time out
	go func() {
		defer close(s.events)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return // Fini
			}
			select {
			case s.events <- ev:
			case <-s.quit:
				return
			}
		}
	}()
	return nil
}

// Fini restores the terminal; the event pump exits with it
func (s *Screen) Fini() error {
	if !s.started || s.closed {
		return nil
	}
	s.closed = true
	close(s.quit)
	s.screen.Fini()
	return nil
}

func (s *Screen) Size() (int, int) {
	w, h := s.screen.Size()
	if w <= 0 || h <= 0 {
		return constant.FallbackWidth, constant.FallbackHeight
	}
	return w, h
}

// PollEvent waits at most timeout for a key or resize event
func (s *Screen) PollEvent(timeout time.Duration) (terminal.Event, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return terminal.Event{}, false, ErrClosed
			}
			if tev, ok := convertEvent(ev); ok {
				return tev, true, nil
			}
		case <-timer.C:
			return terminal.Event{}, false, nil
		}
	}
}

// Sink

func (s *Screen) BeginUpdate() {}

// EndUpdate presents everything written since BeginUpdate
func (s *Screen) EndUpdate() error {
	s.screen.Show()
	return nil
}

func (s *Screen) ClearScreen() {
	s.screen.Clear()
	s.col, s.row = 0, 0
}

func (s *Screen) MoveTo(col, row int) {
	s.col, s.row = col, row
}

func (s *Screen) WriteGlyph(r rune) {
	if r == 0 {
		r = constant.BlankGlyph
	}
	s.screen.SetContent(s.col, s.row, r, nil, s.style)
	s.col++
}
