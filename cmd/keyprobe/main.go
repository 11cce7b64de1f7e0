// keyprobe shows the logical key events glyphcast derives from raw terminal input.
// Each keypress is listed as its pressed/released pair; Ctrl+C quits.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/glyphcast/core"
	"github.com/lixenwraith/glyphcast/input"
	"github.com/lixenwraith/glyphcast/render"
	"github.com/lixenwraith/glyphcast/terminal"
)

const maxLog = 200

func main() {
	term := terminal.New()
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer term.Fini()

	w, h := term.Size()
	frames := render.NewFrames(w, h)
	lines := make([]string, 0, maxLog)

	addLog := func(s string) {
		if len(lines) >= maxLog {
			lines = lines[1:]
		}
		lines = append(lines, s)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	capture := input.NewCapture(term, 100*time.Millisecond)
	capture.Start(ctx, nil)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		events, resize := capture.Drain()
		if resize != nil {
			frames.Resize(resize.Width, resize.Height)
			addLog(fmt.Sprintf("RESIZE %dx%d", resize.Width, resize.Height))
		}
		for _, ev := range events {
			if ev.Code == input.KeyC && ev.Modifiers&terminal.ModCtrl != 0 {
				return
			}
			addLog(formatEvent(ev))
		}

		draw(frames.Virtual, lines)
		if err := frames.Flush(term.Output()); err != nil {
			term.Fini()
			fmt.Fprintf(os.Stderr, "flush failed: %v\n", err)
			os.Exit(1)
		}
	}
}

// draw writes the title row and the newest log lines that fit below it
func draw(g *core.Grid, lines []string) {
	g.Clear()
	writeText(g, 0, 0, "keyprobe - press keys, Ctrl+C to quit")

	rows := g.Height() - 1
	start := 0
	if len(lines) > rows {
		start = len(lines) - rows
	}
	for i, line := range lines[start:] {
		writeText(g, 0, i+1, line)
	}
}

func writeText(g *core.Grid, x, y int, s string) {
	for _, r := range s {
		if !g.Set(x, y, r) {
			return
		}
		x++
	}
}

func formatEvent(ev input.Event) string {
	var mods string
	if ev.Modifiers&terminal.ModShift != 0 {
		mods += "Shift+"
	}
	if ev.Modifiers&terminal.ModAlt != 0 {
		mods += "Alt+"
	}
	if ev.Modifiers&terminal.ModCtrl != 0 {
		mods += "Ctrl+"
	}

	name := ev.Code.String()
	if ev.Rune >= 0x20 && ev.Rune < 0x7f {
		name += fmt.Sprintf(" '%c'", ev.Rune)
	} else if ev.Rune != 0 {
		name += fmt.Sprintf(" U+%04X", ev.Rune)
	}
	return fmt.Sprintf("%-8s %s%s", ev.State, mods, name)
}
