package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/glyphcast/camera"
	"github.com/lixenwraith/glyphcast/core"
	"github.com/lixenwraith/glyphcast/input"
	"github.com/lixenwraith/glyphcast/render"
	"github.com/lixenwraith/glyphcast/vmath"
)

func demoCamera() *camera.Camera {
	return camera.New(vmath.Vec2{X: 10, Y: 6}, vmath.Vec3{})
}

func TestNewDemo(t *testing.T) {
	cam := demoCamera()
	s := NewDemo(cam)

	require.Equal(t, 5, s.Len())
	assert.True(t, s.Dirty())
	assert.True(t, s.HasFrame())

	a := s.Rects()[0]
	assert.Equal(t, 'a', a.Glyph)
	assert.Equal(t, vmath.Vec2{X: 2, Y: 1}, a.Size)

	left, ok := s.Wall(SideLeft)
	require.True(t, ok)
	assert.Equal(t, '|', left.Glyph)
	assert.Equal(t, vmath.Vec2{X: -4, Y: 0}, left.Pos)
	assert.Equal(t, vmath.Vec2{X: 1, Y: 6}, left.Size)

	right, _ := s.Wall(SideRight)
	assert.Equal(t, vmath.Vec2{X: 5, Y: 0}, right.Pos)

	top, _ := s.Wall(SideTop)
	assert.Equal(t, '-', top.Glyph)
	assert.Equal(t, vmath.Vec2{X: 0, Y: -2}, top.Pos)
	assert.Equal(t, vmath.Vec2{X: 10, Y: 1}, top.Size)

	bottom, _ := s.Wall(SideBottom)
	assert.Equal(t, vmath.Vec2{X: 0, Y: 3}, bottom.Pos)
	assert.Greater(t, bottom.Z, a.Z)
}

func TestHandleKeyPansCameraAndFrame(t *testing.T) {
	cam := demoCamera()
	s := NewDemo(cam)
	s.ClearDirty()

	moved := s.HandleKey(input.Event{Code: input.KeyD, State: input.Pressed}, cam)
	require.True(t, moved)
	assert.True(t, s.Dirty())
	assert.Equal(t, vmath.Vec3{X: 1}, cam.Pos())

	left, _ := s.Wall(SideLeft)
	assert.Equal(t, vmath.Vec2{X: -3, Y: 0}, left.Pos)

	s.HandleKey(input.Event{Code: input.KeyUp, State: input.Pressed}, cam)
	assert.Equal(t, vmath.Vec3{X: 1, Y: -1}, cam.Pos())
}

func TestHandleKeyIgnoresReleaseAndOtherKeys(t *testing.T) {
	cam := demoCamera()
	s := NewDemo(cam)
	s.ClearDirty()

	assert.False(t, s.HandleKey(input.Event{Code: input.KeyD, State: input.Released}, cam))
	assert.False(t, s.HandleKey(input.Event{Code: input.KeyX, State: input.Pressed}, cam))
	assert.False(t, s.Dirty())
	assert.Equal(t, vmath.Vec3{}, cam.Pos())
}

func TestFrameFollowsResize(t *testing.T) {
	cam := demoCamera()
	s := NewDemo(cam)

	cam.HandleResize(20, 8)
	s.CenterFrame(cam)

	right, _ := s.Wall(SideRight)
	assert.Equal(t, vmath.Vec2{X: 10, Y: 0}, right.Pos)
	assert.Equal(t, vmath.Vec2{X: 1, Y: 8}, right.Size)
}

func TestDemoComposites(t *testing.T) {
	cam := demoCamera()
	cam.SetAutoresize(false)
	s := NewDemo(cam)
	grid := core.NewGrid(10, 6)

	render.Composite(s.Rects(), cam, grid)

	// The 'a' rectangle sits at the center, walls never overwrite it
	assert.Equal(t, 2, countGlyph(grid, 'a'))
	assert.Positive(t, countGlyph(grid, '|'))
	assert.Positive(t, countGlyph(grid, '-'))
}

func countGlyph(g *core.Grid, r rune) int {
	n := 0
	for _, c := range g.Cells() {
		if c == r {
			n++
		}
	}
	return n
}

func TestParseGlyph(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"#", '#', false},
		{"\u00e9", '\u00e9', false},
		{"e\u0301", '\u00e9', false}, // Normalized to one rune
		{"", 0, true},
		{"ab", 0, true},
		{"\u65e5", 0, true},             // Two cells wide
		{"\t", 0, true},                 // Zero width
		{"\U0001F1E9\U0001F1EA", 0, true}, // One grapheme, two runes
		{"x\u20dd", 0, true},            // Combining mark without a composed form
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGlyph(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrGlyph)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	s, frame, err := Parse(`
frame = true

[[rect]]
glyph = "#"
x = 1.0
y = 2.0
w = 3.0
h = 4.0
z = 5.0

[[rect]]
glyph = "."
w = 100.0
h = 100.0
`)
	require.NoError(t, err)
	assert.True(t, frame)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, render.Rect{Glyph: '#', Pos: vmath.Vec2{X: 1, Y: 2}, Size: vmath.Vec2{X: 3, Y: 4}, Z: 5}, s.Rects()[0])
	assert.Equal(t, '.', s.Rects()[1].Glyph)
}

func TestParseRejects(t *testing.T) {
	_, _, err := Parse("[[rect]]\nglyph = \"ab\"\n")
	assert.ErrorIs(t, err, ErrGlyph)

	_, _, err = Parse("[[rect]]\nglyph = \"#\"\nw = -1.0\n")
	assert.ErrorContains(t, err, "negative size")

	_, _, err = Parse("[[rect]]\nglyph = \"#\"\ncolor = \"red\"\n")
	assert.ErrorContains(t, err, "unknown keys")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[rect]]\nglyph = \"*\"\nw = 1.0\nh = 1.0\n"), 0o644))

	s, frame, err := LoadFile(path)
	require.NoError(t, err)
	assert.False(t, frame)
	assert.Equal(t, '*', s.Rects()[0].Glyph)

	_, _, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
