package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridBlank(t *testing.T) {
	g := NewGrid(80, 24)
	require.Equal(t, 80, g.Width())
	require.Equal(t, 24, g.Height())
	require.Equal(t, 80*24, g.Len())

	for i := 0; i < g.Len(); i++ {
		if g.At(i) != ' ' {
			t.Fatalf("cell %d not blank: %q", i, g.At(i))
		}
	}
}

func TestGridResizeKeepsLengthInvariant(t *testing.T) {
	sizes := [][2]int{{10, 10}, {3, 7}, {0, 5}, {5, 0}, {120, 40}, {1, 1}}
	g := NewGrid(4, 4)
	g.Set(1, 1, 'x')
	for _, s := range sizes {
		g.Resize(s[0], s[1])
		assert.Equal(t, s[0]*s[1], g.Len(), "size %v", s)
		for i := 0; i < g.Len(); i++ {
			assert.Equal(t, ' ', g.At(i))
		}
	}
}

func TestGridResizeNegativePanics(t *testing.T) {
	g := NewGrid(2, 2)
	assert.Panics(t, func() { g.Resize(-1, 2) })
}

func TestGridGetSet(t *testing.T) {
	g := NewGrid(10, 5)

	assert.True(t, g.Set(9, 4, 'z'))
	r, ok := g.Get(9, 4)
	assert.True(t, ok)
	assert.Equal(t, 'z', r)
	assert.Equal(t, 'z', g.At(4*10+9))

	assert.False(t, g.Set(-1, 0, 'a'))
	assert.False(t, g.Set(10, 0, 'a'))
	_, ok = g.Get(0, 5)
	assert.False(t, ok)
}

func TestGridPaintIfBlank(t *testing.T) {
	g := NewGrid(3, 1)
	assert.True(t, g.PaintIfBlank(0, 0, 'a'))
	assert.False(t, g.PaintIfBlank(0, 0, 'b'), "painted cell must not be overwritten")
	r, _ := g.Get(0, 0)
	assert.Equal(t, 'a', r)
}

func TestGridEqualAndDistance(t *testing.T) {
	a := NewGrid(4, 2)
	b := NewGrid(4, 2)
	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Distance(b))

	a.Set(0, 0, 'x')
	a.Set(3, 1, 'y')
	assert.False(t, a.Equal(b))
	assert.Equal(t, 2, a.Distance(b))

	b.CopyFrom(a)
	assert.True(t, a.Equal(b))

	c := NewGrid(2, 4)
	assert.False(t, a.Equal(c), "same length, different shape")
}

func TestGridString(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(0, 0, 'a')
	g.Set(2, 1, 'b')
	assert.Equal(t, "a  \n  b", g.String())
}

func TestAdmitGlyph(t *testing.T) {
	tests := []struct {
		in, want rune
	}{
		{'a', 'a'},
		{'#', '#'},
		{'é', 'é'},
		{'─', '─'},
		{'世', '?'},   // double width
		{'\u0301', '?'}, // combining accent, zero width
		{'\t', '?'},
		{0, '?'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AdmitGlyph(tt.in), "rune %U", tt.in)
	}
}

func TestCellRange(t *testing.T) {
	assert.True(t, CellRange{MinX: 2, MaxX: 2, MinY: 0, MaxY: 4}.Empty())
	assert.Equal(t, 0, CellRange{MinX: 3, MaxX: 1, MinY: 0, MaxY: 4}.Count())
	assert.Equal(t, 6, CellRange{MinX: 1, MaxX: 4, MinY: 2, MaxY: 4}.Count())
}
