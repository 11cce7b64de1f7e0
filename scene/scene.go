// Package scene owns the rectangle set fed to the compositor each tick.
package scene

import (
	"github.com/lixenwraith/glyphcast/camera"
	"github.com/lixenwraith/glyphcast/constant"
	"github.com/lixenwraith/glyphcast/input"
	"github.com/lixenwraith/glyphcast/render"
	"github.com/lixenwraith/glyphcast/vmath"
)

// Side identifies a camera-frame wall
type Side uint8

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// Scene is an ordered rectangle set with change tracking
// Dirty starts true so the first tick composites
type Scene struct {
	rects []render.Rect

	// walls holds rect indices per Side when a camera frame is attached
	walls    [4]int
	hasFrame bool

	dirty bool
}

// New creates a scene holding rects in the given order
func New(rects ...render.Rect) *Scene {
	s := &Scene{dirty: true}
	s.rects = append(s.rects, rects...)
	return s
}

// NewDemo builds the demo: one 'a' rectangle at the origin framed by the camera walls
func NewDemo(cam *camera.Camera) *Scene {
	s := New(render.Rect{
		Glyph: 'a',
		Pos:   vmath.Vec2{X: 0, Y: 0},
		Size:  vmath.Vec2{X: 2, Y: 1},
		Z:     constant.DemoGlyphDepth,
	})
	s.AttachFrame(cam)
	return s
}

// Rects returns the current rectangles; the slice is owned by the scene
func (s *Scene) Rects() []render.Rect {
	return s.rects
}

func (s *Scene) Len() int {
	return len(s.rects)
}

// Add appends a rectangle
func (s *Scene) Add(r render.Rect) {
	s.rects = append(s.rects, r)
	s.dirty = true
}

func (s *Scene) Dirty() bool {
	return s.dirty
}

func (s *Scene) MarkDirty() {
	s.dirty = true
}

func (s *Scene) ClearDirty() {
	s.dirty = false
}

// AttachFrame adds four walls tracing the camera viewport edges
func (s *Scene) AttachFrame(cam *camera.Camera) {
	if s.hasFrame {
		s.CenterFrame(cam)
		return
	}
	glyphs := [4]rune{
		SideLeft:   '|',
		SideRight:  '|',
		SideTop:    '-',
		SideBottom: '-',
	}
	for side, g := range glyphs {
		s.walls[side] = len(s.rects)
		s.rects = append(s.rects, render.Rect{Glyph: g, Z: constant.DemoWallDepth})
	}
	s.hasFrame = true
	s.CenterFrame(cam)
}

// HasFrame reports whether camera walls are attached
func (s *Scene) HasFrame() bool {
	return s.hasFrame
}

// Wall returns the wall rectangle for side
func (s *Scene) Wall(side Side) (render.Rect, bool) {
	if !s.hasFrame {
		return render.Rect{}, false
	}
	return s.rects[s.walls[side]], true
}

// CenterFrame re-places the walls on the camera's current viewport
// Left and top sit one unit inside the viewport edge
func (s *Scene) CenterFrame(cam *camera.Camera) {
	if !s.hasFrame {
		return
	}
	size := cam.Size()
	pos := cam.Pos()

	for side, idx := range s.walls {
		r := &s.rects[idx]
		switch Side(side) {
		case SideLeft:
			r.Pos = vmath.Vec2{X: -size.X/2 + 1 + pos.X, Y: pos.Y}
			r.Size = vmath.Vec2{X: 1, Y: size.Y}
		case SideRight:
			r.Pos = vmath.Vec2{X: size.X/2 + pos.X, Y: pos.Y}
			r.Size = vmath.Vec2{X: 1, Y: size.Y}
		case SideTop:
			r.Pos = vmath.Vec2{X: pos.X, Y: -size.Y/2 + 1 + pos.Y}
			r.Size = vmath.Vec2{X: size.X, Y: 1}
		case SideBottom:
			r.Pos = vmath.Vec2{X: pos.X, Y: size.Y/2 + pos.Y}
			r.Size = vmath.Vec2{X: size.X, Y: 1}
		}
	}
	s.dirty = true
}

// panStep maps pan keys to a one-unit camera move; screen up is -Y
var panStep = map[input.KeyCode]vmath.Vec3{
	input.KeyW:     {X: 0, Y: -1},
	input.KeyUp:    {X: 0, Y: -1},
	input.KeyS:     {X: 0, Y: 1},
	input.KeyDown:  {X: 0, Y: 1},
	input.KeyA:     {X: -1, Y: 0},
	input.KeyLeft:  {X: -1, Y: 0},
	input.KeyD:     {X: 1, Y: 0},
	input.KeyRight: {X: 1, Y: 0},
}

// HandleKey pans the camera on pressed pan keys and reports whether anything moved
func (s *Scene) HandleKey(ev input.Event, cam *camera.Camera) bool {
	if ev.State != input.Pressed {
		return false
	}
	step, ok := panStep[ev.Code]
	if !ok {
		return false
	}
	cam.MoveBy(step)
	s.CenterFrame(cam)
	s.dirty = true
	return true
}
