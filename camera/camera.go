// Package camera holds the single 2D viewport and projects world rectangles onto a cell grid.
package camera

import (
	"log"
	"math"

	"github.com/lixenwraith/glyphcast/core"
	"github.com/lixenwraith/glyphcast/vmath"
)

// Settings are the camera mode flags
type Settings struct {
	// Stretch scales the viewport onto the grid instead of mapping one world unit per cell
	Stretch bool
	// Autoresize keeps the viewport size glued to the terminal size
	Autoresize bool
}

// DefaultSettings returns tile mode with autoresize on
func DefaultSettings() Settings {
	return Settings{Stretch: false, Autoresize: true}
}

// Camera is a world-space viewport centered on its position
type Camera struct {
	size     vmath.Vec2
	pos      vmath.Vec3
	settings Settings
}

// New creates a camera with the given viewport size and position and default settings
func New(size vmath.Vec2, pos vmath.Vec3) *Camera {
	c := &Camera{pos: pos, settings: DefaultSettings()}
	c.SetSize(size)
	return c
}

func (c *Camera) Size() vmath.Vec2 {
	return c.size
}

func (c *Camera) Width() float64 {
	return c.size.X
}

func (c *Camera) Height() float64 {
	return c.size.Y
}

// SetSize sets the viewport size; negative or NaN components clamp to zero
func (c *Camera) SetSize(size vmath.Vec2) {
	c.size = vmath.Vec2{X: nonNegative(size.X), Y: nonNegative(size.Y)}
}

func (c *Camera) Pos() vmath.Vec3 {
	return c.pos
}

func (c *Camera) SetPos(pos vmath.Vec3) {
	c.pos = pos
}

// MoveBy pans the camera
func (c *Camera) MoveBy(delta vmath.Vec3) {
	c.pos = vmath.V3Add(c.pos, delta)
}

func (c *Camera) Settings() Settings {
	return c.settings
}

func (c *Camera) SetSettings(s Settings) {
	c.settings = s
}

func (c *Camera) SetStretch(stretch bool) {
	c.settings.Stretch = stretch
}

func (c *Camera) SetAutoresize(autoresize bool) {
	c.settings.Autoresize = autoresize
}

// Viewport returns the world-space rectangle the camera sees
func (c *Camera) Viewport() vmath.Rect {
	return vmath.RectFromCenterSize(c.pos.XY(), c.size)
}

// HandleResize applies a terminal resize when autoresize is on
// Returns true if the viewport size changed
func (c *Camera) HandleResize(width, height int) bool {
	if !c.settings.Autoresize {
		return false
	}
	update := vmath.Vec2{X: float64(width), Y: float64(height)}
	if update == c.size {
		return false
	}
	c.SetSize(update)
	return true
}

// ExceedsGrid reports a viewport larger than the grid it renders onto
func (c *Camera) ExceedsGrid(width, height int) bool {
	return c.size.X > float64(width) || c.size.Y > float64(height)
}

// Project maps a world rectangle through the camera using its stretch setting
func (c *Camera) Project(world vmath.Rect, width, height int) (core.CellRange, bool) {
	return Project(world, c.Viewport(), width, height, c.settings.Stretch)
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// Project maps the part of world visible through viewport onto a width x height grid
// Returns false when nothing is visible; never panics on degenerate geometry
func Project(world, viewport vmath.Rect, width, height int, stretch bool) (core.CellRange, bool) {
	if width <= 0 || height <= 0 {
		return core.CellRange{}, false
	}
	if !finiteRect(world) || !finiteRect(viewport) {
		return core.CellRange{}, false
	}

	// Checked ahead of the overlap test, which a zero-size viewport always fails
	if size := viewport.Size(); stretch && (size.X <= 0 || size.Y <= 0) {
		log.Printf("camera: stretch projection skipped, zero-size viewport %vx%v", size.X, size.Y)
		return core.CellRange{}, false
	}

	overlap := viewport.Intersect(world)
	if overlap.Empty() {
		return core.CellRange{}, false
	}

	var r core.CellRange
	if stretch {
		normMin := vmath.NormalizePoint(overlap.Min, viewport.Min, viewport.Max)
		normMax := vmath.NormalizePoint(overlap.Max, viewport.Min, viewport.Max)
		r.MinX, r.MinY = vmath.NormalizedToCell(normMin, width, height)
		r.MaxX, r.MaxY = vmath.NormalizedToCell(normMax, width, height)
	} else {
		tileMin := vmath.V2Sub(overlap.Min, viewport.Min)
		tileMax := vmath.V2Sub(overlap.Max, viewport.Min)
		r.MinX, r.MinY = int(tileMin.X), int(tileMin.Y)
		r.MaxX, r.MaxY = int(tileMax.X), int(tileMax.Y)
	}

	r.MinX, r.MaxX = clamp(r.MinX, 0, width), clamp(r.MaxX, 0, width)
	r.MinY, r.MaxY = clamp(r.MinY, 0, height), clamp(r.MaxY, 0, height)
	if r.Empty() {
		return core.CellRange{}, false
	}
	return r, true
}

// finiteRect rejects NaN/Inf corners, whose integer conversion is undefined
func finiteRect(r vmath.Rect) bool {
	for _, v := range [4]float64{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
