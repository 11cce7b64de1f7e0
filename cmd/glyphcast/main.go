package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/lixenwraith/glyphcast/camera"
	"github.com/lixenwraith/glyphcast/config"
	"github.com/lixenwraith/glyphcast/core"
	tcelldev "github.com/lixenwraith/glyphcast/device/tcell"
	"github.com/lixenwraith/glyphcast/engine"
	"github.com/lixenwraith/glyphcast/input"
	"github.com/lixenwraith/glyphcast/render"
	"github.com/lixenwraith/glyphcast/scene"
	"github.com/lixenwraith/glyphcast/status"
	"github.com/lixenwraith/glyphcast/terminal"
	"github.com/lixenwraith/glyphcast/vmath"
)

// device is the terminal surface: lifecycle, size, and a bounded-wait event source
type device interface {
	Init() error
	Fini() error
	Size() (width, height int)
	PollEvent(timeout time.Duration) (terminal.Event, bool, error)
}

func main() {
	shutdown := core.NewShutdown()

	// Panic Recovery: restore the terminal even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			shutdown.HandleCrash(r)
		}
	}()
	// Covers every return path that did not already drain the registry
	defer shutdown.InvokeAll(core.TriggerProcessExit)

	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Resolve(flag.CommandLine, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "glyphcast: %v\n", err)
		shutdown.Exit(2)
	}

	if logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, shutdown); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("glyphcast: %v", err)
		// Restore the terminal before printing so the message lands on the main screen
		shutdown.InvokeAll(core.TriggerExitRequest)
		fmt.Fprintf(os.Stderr, "glyphcast: %v\n", err)
		shutdown.Exit(1)
	}
}

func run(cfg config.Config, shutdown *core.Shutdown) error {
	cam := camera.New(
		vmath.Vec2{X: cfg.Camera.Width, Y: cfg.Camera.Height},
		vmath.Vec3{X: cfg.Camera.X, Y: cfg.Camera.Y},
	)
	cam.SetSettings(cfg.CameraSettings())

	// Scene errors are reported before the terminal leaves cooked mode
	var sc *scene.Scene
	var frame bool
	if cfg.Scene != "" {
		var err error
		if sc, frame, err = scene.LoadFile(cfg.Scene); err != nil {
			return err
		}
	}

	dev, sink, err := openDevice(cfg.Backend)
	if err != nil {
		return err
	}
	if err := dev.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	shutdown.Register(func() {
		if err := dev.Fini(); err != nil {
			log.Printf("terminal: restore failed: %v", err)
		}
	})

	stopSignals := shutdown.WatchSignals(syscall.SIGTERM, syscall.SIGHUP, syscall.SIGINT)
	defer stopSignals()

	width, height := dev.Size()
	if !cam.HandleResize(width, height) && cam.Width() == 0 && cam.Height() == 0 {
		cam.SetSize(vmath.Vec2{X: float64(width), Y: float64(height)})
	}

	switch {
	case sc == nil:
		sc = scene.NewDemo(cam)
	case frame:
		sc.AttachFrame(cam)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stats := status.NewRegistry()
	shutdown.Register(func() {
		log.Printf("glyphcast: stats %s", stats.Summary())
	})

	capture := input.NewCapture(dev, cfg.PollTimeout.Duration)
	capture.Start(ctx, shutdown.Go)

	log.Printf("glyphcast: backend=%s size=%dx%d tick=%s rects=%d",
		cfg.Backend, width, height, cfg.TickInterval(), sc.Len())

	eng := engine.New(engine.Options{
		Shutdown:     shutdown,
		Input:        capture,
		Sink:         sink,
		Screen:       dev,
		Camera:       cam,
		Scene:        sc,
		Stats:        stats,
		TickInterval: cfg.TickInterval(),
	})
	return eng.Run(ctx)
}

func openDevice(backend string) (device, render.Sink, error) {
	switch backend {
	case config.BackendTcell:
		s, err := tcelldev.NewScreen()
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		t := terminal.New()
		return t, t.Output(), nil
	}
}
