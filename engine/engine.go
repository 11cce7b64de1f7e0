// Package engine runs the host tick loop: drain input, update the scene, composite, flush.
package engine

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/glyphcast/camera"
	"github.com/lixenwraith/glyphcast/constant"
	"github.com/lixenwraith/glyphcast/core"
	"github.com/lixenwraith/glyphcast/input"
	"github.com/lixenwraith/glyphcast/render"
	"github.com/lixenwraith/glyphcast/scene"
	"github.com/lixenwraith/glyphcast/status"
	"github.com/lixenwraith/glyphcast/terminal"
)

// Drainer yields the input buffered since the previous tick
type Drainer interface {
	Drain() ([]input.Event, *input.Resize)
}

// Sizer reports the live terminal size
type Sizer interface {
	Size() (width, height int)
}

// Options wires an Engine; every field except TickInterval and Stats is required
type Options struct {
	Shutdown *core.Shutdown
	Input    Drainer
	Sink     render.Sink
	Screen   Sizer
	Camera   *camera.Camera
	Scene    *scene.Scene

	// Stats receives per-tick counters; nil allocates a private registry
	Stats *status.Registry

	// TickInterval paces Run; Tick ignores it
	TickInterval time.Duration
}

// Engine owns per-tick state and drives it from a single goroutine
type Engine struct {
	shutdown *core.Shutdown
	input    Drainer
	sink     render.Sink
	screen   Sizer
	cam      *camera.Camera
	scene    *scene.Scene

	frames     *render.Frames
	compositor *render.Compositor
	interval   time.Duration

	ticks uint64

	stats     *status.Registry
	statTicks *atomic.Int64
	statKeys  *atomic.Int64
	statSizes *atomic.Int64
	statPaint *atomic.Int64
	statCells *atomic.Int64
	statFlush *status.Gauge
}

// New sizes the frames to the current screen
func New(o Options) *Engine {
	w, h := o.Screen.Size()
	stats := o.Stats
	if stats == nil {
		stats = status.NewRegistry()
	}
	return &Engine{
		shutdown:   o.Shutdown,
		input:      o.Input,
		sink:       o.Sink,
		screen:     o.Screen,
		cam:        o.Camera,
		scene:      o.Scene,
		frames:     render.NewFrames(w, h),
		compositor: render.NewCompositor(),
		interval:   o.TickInterval,
		stats:      stats,
		statTicks:  stats.Counter(status.Ticks),
		statKeys:   stats.Counter(status.KeyEvents),
		statSizes:  stats.Counter(status.Resizes),
		statPaint:  stats.Counter(status.Repaints),
		statCells:  stats.Counter(status.CellsWritten),
		statFlush:  stats.Gauge(status.PeakFlushMs),
	}
}

// Frames exposes the grid pair for inspection
func (e *Engine) Frames() *render.Frames {
	return e.frames
}

// Ticks returns the number of completed ticks
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Stats returns the registry the engine writes to
func (e *Engine) Stats() *status.Registry {
	return e.stats
}

// Tick runs one frame. exit reports that shutdown callbacks have run and the loop must stop
func (e *Engine) Tick() (exit bool, err error) {
	if e.shutdown.Terminated() {
		e.shutdown.InvokeAll(core.TriggerSignal)
		return true, nil
	}

	events, resize := e.input.Drain()

	if resize != nil {
		e.statSizes.Add(1)
		e.applyResize(resize.Width, resize.Height)
	}

	e.statKeys.Add(int64(len(events)))
	for _, ev := range events {
		if isExitKey(ev) {
			log.Printf("engine: exit requested")
			e.shutdown.InvokeAll(core.TriggerExitRequest)
			return true, nil
		}
		e.scene.HandleKey(ev, e.cam)
	}

	if e.scene.Dirty() || e.frames.Repaint {
		e.compositor.Composite(e.scene.Rects(), e.cam, e.frames.Virtual)
		e.scene.ClearDirty()
	}

	gw, gh := e.frames.Size()
	if tw, th := e.screen.Size(); tw != gw || th != gh {
		log.Printf("engine: grid %dx%d does not match terminal %dx%d", gw, gh, tw, th)
	}

	if err := e.flush(); err != nil {
		return false, fmt.Errorf("flush: %w", err)
	}
	e.ticks++
	e.statTicks.Add(1)
	return false, nil
}

// flush wraps Frames.Flush with cell and timing counters
func (e *Engine) flush() error {
	repaint := e.frames.Repaint
	cells := e.frames.Virtual.Len()
	if !repaint {
		if cells = e.frames.Virtual.Distance(e.frames.Physical); cells == 0 {
			return nil
		}
	}

	start := time.Now()
	if err := e.frames.Flush(e.sink); err != nil {
		return err
	}
	if repaint {
		e.statPaint.Add(1)
	}
	e.statCells.Add(int64(cells))
	e.statFlush.Max(float64(time.Since(start).Microseconds()) / 1000)
	return nil
}

// applyResize resizes both grids together and refits the camera
func (e *Engine) applyResize(width, height int) {
	e.frames.Resize(width, height)
	if e.cam.HandleResize(width, height) {
		e.scene.CenterFrame(e.cam)
	}
	e.scene.MarkDirty()
}

// isExitKey matches Escape, Q in either case, and Ctrl+C
func isExitKey(ev input.Event) bool {
	if ev.State != input.Pressed {
		return false
	}
	switch ev.Code {
	case input.KeyEscape, input.KeyQ:
		return true
	case input.KeyC:
		return ev.Modifiers&terminal.ModCtrl != 0
	}
	return false
}

// Run ticks at the configured interval until exit, a flush error, or ctx is done
func (e *Engine) Run(ctx context.Context) error {
	interval := e.interval
	if interval <= 0 {
		interval = time.Second / constant.TickRate
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		exit, err := e.Tick()
		if err != nil {
			return err
		}
		if exit {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
