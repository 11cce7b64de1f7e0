package camera

import (
	"bytes"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/glyphcast/core"
	"github.com/lixenwraith/glyphcast/vmath"
)

func rect(cx, cy, w, h float64) vmath.Rect {
	return vmath.RectFromCenterSize(vmath.Vec2{X: cx, Y: cy}, vmath.Vec2{X: w, Y: h})
}

func TestProjectTileMode(t *testing.T) {
	cam := New(vmath.Vec2{X: 10, Y: 10}, vmath.Vec3{})

	r, ok := cam.Project(rect(0, 0, 2, 1), 10, 10)
	require.True(t, ok)
	assert.Equal(t, core.CellRange{MinX: 4, MinY: 4, MaxX: 6, MaxY: 5}, r)
	assert.Equal(t, 2, r.Count())
}

func TestProjectTileModeClampsToGrid(t *testing.T) {
	// Viewport larger than the grid: cells beyond the grid are dropped
	cam := New(vmath.Vec2{X: 20, Y: 20}, vmath.Vec3{})

	r, ok := cam.Project(rect(0, 0, 20, 20), 10, 5)
	require.True(t, ok)
	assert.Equal(t, core.CellRange{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}, r)
}

func TestProjectStretchFillsGrid(t *testing.T) {
	cam := New(vmath.Vec2{X: 10, Y: 10}, vmath.Vec3{})
	cam.SetStretch(true)

	r, ok := cam.Project(rect(0, 0, 10, 10), 5, 5)
	require.True(t, ok)
	assert.Equal(t, core.CellRange{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}, r)
}

func TestProjectStretchHalf(t *testing.T) {
	// Right half of a 10x10 viewport onto a 4x2 grid
	cam := New(vmath.Vec2{X: 10, Y: 10}, vmath.Vec3{})
	cam.SetStretch(true)

	r, ok := cam.Project(rect(2.5, 0, 5, 10), 4, 2)
	require.True(t, ok)
	assert.Equal(t, core.CellRange{MinX: 2, MinY: 0, MaxX: 4, MaxY: 2}, r)
}

func TestProjectFollowsCameraPosition(t *testing.T) {
	cam := New(vmath.Vec2{X: 10, Y: 10}, vmath.Vec3{})
	cam.MoveBy(vmath.Vec3{X: 1})

	r, ok := cam.Project(rect(0, 0, 2, 1), 10, 10)
	require.True(t, ok)
	assert.Equal(t, core.CellRange{MinX: 3, MinY: 4, MaxX: 5, MaxY: 5}, r, "panning right shifts content left")
}

func TestProjectDegenerate(t *testing.T) {
	cam := New(vmath.Vec2{X: 10, Y: 10}, vmath.Vec3{})

	tests := []struct {
		name  string
		world vmath.Rect
		w, h  int
	}{
		{"outside viewport", rect(100, 100, 2, 2), 10, 10},
		{"zero width", rect(0, 0, 0, 4), 10, 10},
		{"zero height", rect(0, 0, 4, 0), 10, 10},
		{"empty grid", rect(0, 0, 4, 4), 0, 0},
		{"nan", vmath.Rect{Min: vmath.Vec2{X: math.NaN()}, Max: vmath.Vec2{X: 1, Y: 1}}, 10, 10},
		{"sub-cell sliver", rect(0.3, 0, 0.2, 4), 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := cam.Project(tt.world, tt.w, tt.h)
			assert.False(t, ok)
		})
	}
}

func TestProjectZeroViewportStretch(t *testing.T) {
	cam := New(vmath.Vec2{}, vmath.Vec3{})
	cam.SetStretch(true)

	assert.NotPanics(t, func() {
		_, ok := cam.Project(rect(0, 0, 4, 4), 10, 10)
		assert.False(t, ok)
	})

	viewport := vmath.Rect{Min: vmath.Vec2{X: 1, Y: 1}, Max: vmath.Vec2{X: 1, Y: 5}}
	_, ok := Project(rect(0, 0, 10, 10), viewport, 10, 10, true)
	assert.False(t, ok)
}

// captureLog redirects the standard logger into a buffer for the rest of the test
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	out, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
	return &buf
}

func TestProjectZeroViewportStretchLogs(t *testing.T) {
	buf := captureLog(t)
	cam := New(vmath.Vec2{}, vmath.Vec3{})
	cam.SetAutoresize(false)
	cam.SetStretch(true)

	_, ok := cam.Project(rect(0, 0, 4, 4), 10, 10)
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "zero-size viewport")
}

func TestProjectZeroViewportTileIsSilent(t *testing.T) {
	buf := captureLog(t)
	cam := New(vmath.Vec2{}, vmath.Vec3{})

	_, ok := cam.Project(rect(0, 0, 4, 4), 10, 10)
	assert.False(t, ok)
	assert.Empty(t, buf.String())
}

func TestProjectStretchSilentWithViewport(t *testing.T) {
	buf := captureLog(t)
	cam := New(vmath.Vec2{X: 10, Y: 10}, vmath.Vec3{})
	cam.SetStretch(true)

	_, ok := cam.Project(rect(0, 0, 4, 4), 10, 10)
	assert.True(t, ok)
	assert.Empty(t, buf.String())
}

func TestSetSizeClampsNegative(t *testing.T) {
	cam := New(vmath.Vec2{X: -3, Y: 4}, vmath.Vec3{})
	assert.Equal(t, vmath.Vec2{X: 0, Y: 4}, cam.Size())

	cam.SetSize(vmath.Vec2{X: math.NaN(), Y: -1})
	assert.Equal(t, vmath.Vec2{}, cam.Size())
}

func TestHandleResize(t *testing.T) {
	cam := New(vmath.Vec2{X: 10, Y: 10}, vmath.Vec3{})

	assert.True(t, cam.HandleResize(80, 24))
	assert.Equal(t, vmath.Vec2{X: 80, Y: 24}, cam.Size())
	assert.False(t, cam.HandleResize(80, 24), "unchanged size is not a resize")

	cam.SetAutoresize(false)
	assert.False(t, cam.HandleResize(100, 50))
	assert.Equal(t, vmath.Vec2{X: 80, Y: 24}, cam.Size())
}

func TestExceedsGrid(t *testing.T) {
	cam := New(vmath.Vec2{X: 10, Y: 10}, vmath.Vec3{})
	assert.False(t, cam.ExceedsGrid(10, 10))
	assert.True(t, cam.ExceedsGrid(9, 10))
	assert.True(t, cam.ExceedsGrid(10, 9))
}
