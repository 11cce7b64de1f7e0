package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/glyphcast/terminal"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   terminal.Event
		code KeyCode
		mods terminal.Modifier
	}{
		{"lower letter", keyRune('w'), KeyW, terminal.ModNone},
		{"upper letter", keyRune('Q'), KeyQ, terminal.ModNone},
		{"digit", keyRune('7'), Key7, terminal.ModNone},
		{"space", keyRune(' '), KeySpace, terminal.ModNone},
		{"punctuation", keyRune('|'), KeyUnknown, terminal.ModNone},
		{"non ascii", keyRune('é'), KeyUnknown, terminal.ModNone},
		{"escape", terminal.Event{Key: terminal.KeyEscape}, KeyEscape, terminal.ModNone},
		{"enter", terminal.Event{Key: terminal.KeyEnter}, KeyReturn, terminal.ModNone},
		{"backspace", terminal.Event{Key: terminal.KeyBackspace}, KeyBack, terminal.ModNone},
		{"arrow with ctrl", terminal.Event{Key: terminal.KeyLeft, Modifiers: terminal.ModCtrl}, KeyLeft, terminal.ModCtrl},
		{"f5", terminal.Event{Key: terminal.KeyF5}, KeyF5, terminal.ModNone},
		{"ctrl c", terminal.Event{Key: terminal.KeyCtrlC}, KeyC, terminal.ModCtrl},
		{"alt rune", terminal.Event{Key: terminal.KeyRune, Rune: 'x', Modifiers: terminal.ModAlt}, KeyX, terminal.ModAlt},
		{"unmapped", terminal.Event{Key: terminal.KeyCtrlBackslash}, KeyUnknown, terminal.ModNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, mods := Translate(tt.ev)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.mods, mods)
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pressed", Pressed.String())
	assert.Equal(t, "released", Released.String())
}

func TestKeyCodeString(t *testing.T) {
	assert.Equal(t, "W", KeyW.String())
	assert.Equal(t, "0", Key0.String())
	assert.Equal(t, "F12", KeyF12.String())
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "Unknown", KeyUnknown.String())
	assert.Equal(t, "Unknown", KeyCode(250).String())
}
