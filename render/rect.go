package render

import "github.com/lixenwraith/glyphcast/vmath"

// Rect is a glyph-painted world rectangle owned by the scene
// Pos is the rectangle center; Size components must be non-negative
type Rect struct {
	Glyph rune
	Pos   vmath.Vec2
	Size  vmath.Vec2
	// Z orders rectangles: larger is nearer and wins the cell
	Z float64
}

// Bounds returns the world-space extent of the rectangle
func (r Rect) Bounds() vmath.Rect {
	return vmath.RectFromCenterSize(r.Pos, r.Size)
}
