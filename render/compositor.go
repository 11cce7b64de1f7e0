package render

import (
	"log"
	"slices"

	"github.com/lixenwraith/glyphcast/camera"
	"github.com/lixenwraith/glyphcast/core"
	"github.com/lixenwraith/glyphcast/vmath"
)

// Compositor rasterizes rectangles through a camera into a grid
// The sort buffer is reused across frames; the input slice is never reordered
type Compositor struct {
	sorted []Rect
}

// NewCompositor creates a compositor with an empty sort cache
func NewCompositor() *Compositor {
	return &Compositor{}
}

// Composite clears grid and paints rects nearest-first
// Each cell takes the glyph of the first rectangle to reach it, so painting in
// descending Z order yields occlusion without per-cell depth
// Equal Z keeps input order, no further tie-break is promised
func (c *Compositor) Composite(rects []Rect, cam *camera.Camera, grid *core.Grid) {
	width, height := grid.Width(), grid.Height()

	if cam.Settings().Autoresize {
		cam.SetSize(vmath.Vec2{X: float64(width), Y: float64(height)})
	}

	grid.Clear()

	if cam.ExceedsGrid(width, height) {
		log.Printf("render: camera %vx%v larger than grid %dx%d, output clipped",
			cam.Width(), cam.Height(), width, height)
	}

	c.sorted = append(c.sorted[:0], rects...)
	slices.SortStableFunc(c.sorted, func(a, b Rect) int {
		switch {
		case a.Z > b.Z:
			return -1
		case a.Z < b.Z:
			return 1
		}
		return 0
	})

	for i := range c.sorted {
		r := &c.sorted[i]
		cells, ok := cam.Project(r.Bounds(), width, height)
		if !ok {
			continue
		}
		for y := cells.MinY; y < cells.MaxY; y++ {
			for x := cells.MinX; x < cells.MaxX; x++ {
				grid.PaintIfBlank(x, y, r.Glyph)
			}
		}
	}
}

// Composite is a convenience wrapper for one-off rendering with a fresh sort buffer
func Composite(rects []Rect, cam *camera.Camera, grid *core.Grid) {
	NewCompositor().Composite(rects, cam, grid)
}
