package render

import (
	"fmt"
	"log"

	"github.com/lixenwraith/glyphcast/core"
)

// Frames is the virtual/physical grid pair and the repaint flag
// Virtual is composited each tick, Physical mirrors what the terminal shows
type Frames struct {
	Virtual  *core.Grid
	Physical *core.Grid
	Repaint  bool
}

// NewFrames creates both grids at the given size with repaint pending
func NewFrames(width, height int) *Frames {
	return &Frames{
		Virtual:  core.NewGrid(width, height),
		Physical: core.NewGrid(width, height),
		Repaint:  true,
	}
}

// Resize is the only sanctioned way to change grid dimensions
// Both grids are blanked and the next flush repaints everything
func (f *Frames) Resize(width, height int) {
	f.Virtual.Resize(width, height)
	f.Physical.Resize(width, height)
	f.Repaint = true
}

// Size returns the shared grid dimensions
func (f *Frames) Size() (int, int) {
	return f.Virtual.Width(), f.Virtual.Height()
}

// Flush reconciles the terminal with the virtual frame
func (f *Frames) Flush(sink Sink) error {
	return Flush(f.Virtual, f.Physical, &f.Repaint, sink)
}

// Flush writes the difference between virtual and physical to sink and updates physical
// A pending repaint rewrites every cell once and clears the flag
// Mismatched dimensions are a programming error and panic
func Flush(virtual, physical *core.Grid, repaint *bool, sink Sink) error {
	if !virtual.SameSize(physical) {
		panic(fmt.Sprintf("render: frame size mismatch virtual %dx%d physical %dx%d",
			virtual.Width(), virtual.Height(), physical.Width(), physical.Height()))
	}

	if *repaint {
		if err := paintAll(virtual, sink); err != nil {
			return err
		}
		physical.CopyFrom(virtual)
		*repaint = false
		return nil
	}

	if virtual.Equal(physical) {
		return nil
	}

	width := virtual.Width()
	vc, pc := virtual.Cells(), physical.Cells()

	sink.BeginUpdate()
	for i, r := range vc {
		if r == pc[i] {
			continue
		}
		sink.MoveTo(i%width, i/width)
		sink.WriteGlyph(r)
		pc[i] = r
	}
	return sink.EndUpdate()
}

// paintAll clears the screen and writes the whole frame row by row
// Rows are positioned explicitly since auto-wrap is disabled on the terminal
func paintAll(virtual *core.Grid, sink Sink) error {
	log.Printf("render: full repaint %dx%d", virtual.Width(), virtual.Height())

	width := virtual.Width()
	cells := virtual.Cells()

	sink.BeginUpdate()
	sink.ClearScreen()
	for y := 0; y < virtual.Height(); y++ {
		sink.MoveTo(0, y)
		for _, r := range cells[y*width : (y+1)*width] {
			sink.WriteGlyph(r)
		}
	}
	return sink.EndUpdate()
}
