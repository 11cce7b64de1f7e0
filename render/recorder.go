package render

import (
	"fmt"
	"strings"
)

// CommandKind identifies a recorded sink command
type CommandKind uint8

const (
	CmdBegin CommandKind = iota
	CmdEnd
	CmdClear
	CmdMove
	CmdGlyph
)

// Command is one recorded sink call
type Command struct {
	Kind     CommandKind
	Col, Row int
	Glyph    rune
}

func (c Command) String() string {
	switch c.Kind {
	case CmdBegin:
		return "begin"
	case CmdEnd:
		return "end"
	case CmdClear:
		return "clear"
	case CmdMove:
		return fmt.Sprintf("move(%d,%d)", c.Col, c.Row)
	case CmdGlyph:
		return fmt.Sprintf("glyph(%q)", c.Glyph)
	}
	return "unknown"
}

// Recorder is an in-memory Sink that keeps every command and a simulated screen
// Used by tests and headless runs
type Recorder struct {
	Commands []Command
	// Err is returned from EndUpdate when set
	Err error

	screen   map[[2]int]rune
	col, row int
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{screen: make(map[[2]int]rune)}
}

func (r *Recorder) BeginUpdate() {
	r.Commands = append(r.Commands, Command{Kind: CmdBegin})
}

func (r *Recorder) EndUpdate() error {
	r.Commands = append(r.Commands, Command{Kind: CmdEnd})
	return r.Err
}

func (r *Recorder) ClearScreen() {
	r.Commands = append(r.Commands, Command{Kind: CmdClear})
	clear(r.screen)
	r.col, r.row = 0, 0
}

func (r *Recorder) MoveTo(col, row int) {
	r.Commands = append(r.Commands, Command{Kind: CmdMove, Col: col, Row: row})
	r.col, r.row = col, row
}

func (r *Recorder) WriteGlyph(g rune) {
	r.Commands = append(r.Commands, Command{Kind: CmdGlyph, Glyph: g})
	r.screen[[2]int{r.col, r.row}] = g
	r.col++
}

// Reset drops recorded commands, keeping the simulated screen
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Count returns the number of recorded commands of kind k
func (r *Recorder) Count(k CommandKind) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Screen returns the simulated screen as width x height rows; unwritten cells are blank
func (r *Recorder) Screen(width, height int) string {
	var sb strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			g, ok := r.screen[[2]int{x, y}]
			if !ok {
				g = ' '
			}
			sb.WriteRune(g)
		}
	}
	return sb.String()
}
