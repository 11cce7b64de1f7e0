package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectFromCenterSize(t *testing.T) {
	r := RectFromCenterSize(Vec2{0, 0}, Vec2{10, 4})
	assert.Equal(t, Vec2{-5, -2}, r.Min)
	assert.Equal(t, Vec2{5, 2}, r.Max)
	assert.Equal(t, Vec2{10, 4}, r.Size())
}

func TestRectIntersect(t *testing.T) {
	a := Rect{Min: Vec2{0, 0}, Max: Vec2{10, 10}}

	overlap := a.Intersect(Rect{Min: Vec2{5, 5}, Max: Vec2{15, 15}})
	assert.Equal(t, Rect{Min: Vec2{5, 5}, Max: Vec2{10, 10}}, overlap)
	assert.False(t, overlap.Empty())

	disjoint := a.Intersect(Rect{Min: Vec2{20, 20}, Max: Vec2{30, 30}})
	assert.True(t, disjoint.Empty())

	touching := a.Intersect(Rect{Min: Vec2{10, 0}, Max: Vec2{12, 10}})
	assert.True(t, touching.Empty(), "shared edge has zero area")
}

func TestNormalizePoint(t *testing.T) {
	min := Vec2{0, 0}
	max := Vec2{10, 10}

	assert.Equal(t, Vec2{0, 0}, NormalizePoint(min, min, max))
	assert.Equal(t, Vec2{1, 1}, NormalizePoint(max, min, max))
	assert.Equal(t, Vec2{0.5, 0.5}, NormalizePoint(Vec2{5, 5}, min, max))
	assert.Equal(t, Vec2{0.5, 0.25}, NormalizePoint(Vec2{5, 5}, min, Vec2{10, 20}))
}

func TestNormalizedToCell(t *testing.T) {
	tests := []struct {
		point         Vec2
		width, height int
		wantX, wantY  int
	}{
		{Vec2{0, 0}, 10, 10, 0, 0},
		{Vec2{1, 1}, 10, 10, 10, 10},
		{Vec2{0.5, 0.5}, 10, 10, 5, 5},
		{Vec2{0.5, 0.5}, 10, 20, 5, 10},
		{Vec2{0.99, 0.99}, 10, 10, 9, 9},
	}
	for _, tt := range tests {
		x, y := NormalizedToCell(tt.point, tt.width, tt.height)
		assert.Equal(t, tt.wantX, x)
		assert.Equal(t, tt.wantY, y)
	}
}
