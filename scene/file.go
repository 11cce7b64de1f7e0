package scene

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/lixenwraith/glyphcast/render"
	"github.com/lixenwraith/glyphcast/vmath"
)

// ErrGlyph reports a glyph that is not one single-width character
var ErrGlyph = errors.New("glyph must be one single-width character")

type fileRect struct {
	Glyph string  `toml:"glyph"`
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	W     float64 `toml:"w"`
	H     float64 `toml:"h"`
	Z     float64 `toml:"z"`
}

type sceneFile struct {
	// Frame attaches camera walls after loading
	Frame bool       `toml:"frame"`
	Rects []fileRect `toml:"rect"`
}

// LoadFile reads a scene from a TOML file
//
//	frame = true
//
//	[[rect]]
//	glyph = "#"
//	x = 0.0
//	y = 0.0
//	w = 4.0
//	h = 2.0
//	z = 5.0
func LoadFile(path string) (*Scene, bool, error) {
	var f sceneFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, false, fmt.Errorf("scene %s: %w", path, err)
	}
	s, err := build(md, &f)
	if err != nil {
		return nil, false, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, f.Frame, nil
}

// Parse decodes a scene from TOML text
func Parse(data string) (*Scene, bool, error) {
	var f sceneFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, false, fmt.Errorf("scene: %w", err)
	}
	s, err := build(md, &f)
	if err != nil {
		return nil, false, fmt.Errorf("scene: %w", err)
	}
	return s, f.Frame, nil
}

func build(md toml.MetaData, f *sceneFile) (*Scene, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	s := New()
	for i, fr := range f.Rects {
		g, err := ParseGlyph(fr.Glyph)
		if err != nil {
			return nil, fmt.Errorf("rect %d: %w", i, err)
		}
		if fr.W < 0 || fr.H < 0 {
			return nil, fmt.Errorf("rect %d: negative size %gx%g", i, fr.W, fr.H)
		}
		s.Add(render.Rect{
			Glyph: g,
			Pos:   vmath.Vec2{X: fr.X, Y: fr.Y},
			Size:  vmath.Vec2{X: fr.W, Y: fr.H},
			Z:     fr.Z,
		})
	}
	return s, nil
}

// ParseGlyph accepts exactly one grapheme that is a single rune one cell wide
// Input is NFC-normalized first, so "e" + combining acute becomes 'é'
func ParseGlyph(s string) (rune, error) {
	s = norm.NFC.String(s)
	if uniseg.GraphemeClusterCount(s) != 1 || utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrGlyph, s)
	}
	if uniseg.StringWidth(s) != 1 {
		return 0, fmt.Errorf("%w: %q is not one cell wide", ErrGlyph, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
