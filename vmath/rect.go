package vmath

import "math"

// Rect is an axis-aligned rectangle stored as min/max corners
type Rect struct {
	Min, Max Vec2
}

// RectFromCenterSize builds a rectangle centered on center with the given size
func RectFromCenterSize(center, size Vec2) Rect {
	half := V2Scale(size, 0.5)
	return Rect{Min: V2Sub(center, half), Max: V2Add(center, half)}
}

// Size returns the extent of the rectangle, negative if inverted
func (r Rect) Size() Vec2 {
	return V2Sub(r.Max, r.Min)
}

// Empty reports zero or negative area on either axis
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Intersect returns the overlap of two rectangles; result may be Empty
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Min: Vec2{math.Max(r.Min.X, o.Min.X), math.Max(r.Min.Y, o.Min.Y)},
		Max: Vec2{math.Min(r.Max.X, o.Max.X), math.Min(r.Max.Y, o.Max.Y)},
	}
}

// NormalizePoint maps point into [0,1] relative to the span [min,max]
// Caller guards zero-width spans
func NormalizePoint(point, min, max Vec2) Vec2 {
	return V2Div(V2Sub(point, min), V2Sub(max, min))
}

// NormalizedToCell scales a normalized point onto a width x height grid, truncating toward zero
func NormalizedToCell(point Vec2, width, height int) (int, int) {
	return int(point.X * float64(width)), int(point.Y * float64(height))
}
