package core

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/glyphcast/constant"
)

// Grid is a fixed-size row-major glyph buffer
// Invariant: len(cells) == width*height
type Grid struct {
	cells  []rune
	width  int
	height int
}

// NewGrid creates a blank grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize adjusts dimensions and blanks every cell, reallocates only if capacity insufficient
func (g *Grid) Resize(width, height int) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("grid: negative size %dx%d", width, height))
	}
	size := width * height
	if cap(g.cells) < size {
		g.cells = make([]rune, size)
	} else {
		g.cells = g.cells[:size]
	}
	g.width = width
	g.height = height
	g.Clear()
}

// Clear resets all cells to the blank glyph using exponential copy
func (g *Grid) Clear() {
	if len(g.cells) == 0 {
		return
	}
	g.cells[0] = constant.BlankGlyph
	for filled := 1; filled < len(g.cells); filled *= 2 {
		copy(g.cells[filled:], g.cells[:filled])
	}
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// Len returns the cell count
func (g *Grid) Len() int {
	return len(g.cells)
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the glyph at (x, y)
func (g *Grid) Get(x, y int) (rune, bool) {
	if !g.inBounds(x, y) {
		return 0, false
	}
	return g.cells[y*g.width+x], true
}

// Set writes a glyph at (x, y), returns false when out of bounds
func (g *Grid) Set(x, y int, r rune) bool {
	if !g.inBounds(x, y) {
		return false
	}
	g.cells[y*g.width+x] = AdmitGlyph(r)
	return true
}

// PaintIfBlank writes r at (x, y) only when the cell still holds the blank glyph
func (g *Grid) PaintIfBlank(x, y int, r rune) bool {
	if !g.inBounds(x, y) {
		return false
	}
	idx := y*g.width + x
	if g.cells[idx] != constant.BlankGlyph {
		return false
	}
	g.cells[idx] = AdmitGlyph(r)
	return true
}

// At returns the glyph at a row-major index
func (g *Grid) At(i int) rune {
	return g.cells[i]
}

// Cells exposes the backing slice; callers must not retain it across Resize
func (g *Grid) Cells() []rune {
	return g.cells
}

// SameSize reports identical dimensions
func (g *Grid) SameSize(o *Grid) bool {
	return g.width == o.width && g.height == o.height
}

// Equal reports identical dimensions and content
func (g *Grid) Equal(o *Grid) bool {
	if !g.SameSize(o) {
		return false
	}
	for i, r := range g.cells {
		if o.cells[i] != r {
			return false
		}
	}
	return true
}

// Distance counts positions whose glyphs differ; grids must be the same size
func (g *Grid) Distance(o *Grid) int {
	n := 0
	for i, r := range g.cells {
		if o.cells[i] != r {
			n++
		}
	}
	return n
}

// CopyFrom makes g an exact copy of src
func (g *Grid) CopyFrom(src *Grid) {
	if !g.SameSize(src) {
		g.Resize(src.width, src.height)
	}
	copy(g.cells, src.cells)
}

// String renders rows separated by newlines, used for debugging and tests
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(g.cells[y*g.width : (y+1)*g.width]))
	}
	return sb.String()
}

// AdmitGlyph returns r if it occupies exactly one terminal cell, otherwise the placeholder
// Wide, zero-width and control runes would desynchronize the cursor from the grid
func AdmitGlyph(r rune) rune {
	if r < 0x20 || r == 0x7f {
		return constant.PlaceholderGlyph
	}
	if r < 0x80 {
		return r
	}
	if runewidth.RuneWidth(r) != 1 {
		return constant.PlaceholderGlyph
	}
	return r
}
