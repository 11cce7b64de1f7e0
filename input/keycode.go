package input

import (
	"strconv"

	"github.com/lixenwraith/glyphcast/terminal"
)

// KeyCode is a logical key, independent of case and of the terminal encoding
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeySpace
	KeyEscape
	KeyReturn
	KeyBack
	KeyTab
	KeyBacktab
	KeyDelete
	KeyInsert

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// namedKeys maps non-rune terminal keys to logical keys
var namedKeys = map[terminal.Key]KeyCode{
	terminal.KeyEscape:    KeyEscape,
	terminal.KeyEnter:     KeyReturn,
	terminal.KeyBackspace: KeyBack,
	terminal.KeyTab:       KeyTab,
	terminal.KeyBacktab:   KeyBacktab,
	terminal.KeyDelete:    KeyDelete,
	terminal.KeyInsert:    KeyInsert,

	terminal.KeyUp:       KeyUp,
	terminal.KeyDown:     KeyDown,
	terminal.KeyLeft:     KeyLeft,
	terminal.KeyRight:    KeyRight,
	terminal.KeyHome:     KeyHome,
	terminal.KeyEnd:      KeyEnd,
	terminal.KeyPageUp:   KeyPageUp,
	terminal.KeyPageDown: KeyPageDown,

	terminal.KeyF1:  KeyF1,
	terminal.KeyF2:  KeyF2,
	terminal.KeyF3:  KeyF3,
	terminal.KeyF4:  KeyF4,
	terminal.KeyF5:  KeyF5,
	terminal.KeyF6:  KeyF6,
	terminal.KeyF7:  KeyF7,
	terminal.KeyF8:  KeyF8,
	terminal.KeyF9:  KeyF9,
	terminal.KeyF10: KeyF10,
	terminal.KeyF11: KeyF11,
	terminal.KeyF12: KeyF12,

	terminal.KeyCtrlSpace: KeySpace,
}

// ctrlLetters maps Ctrl+letter keys to the letter, reported with ModCtrl
var ctrlLetters = map[terminal.Key]KeyCode{
	terminal.KeyCtrlA: KeyA,
	terminal.KeyCtrlB: KeyB,
	terminal.KeyCtrlC: KeyC,
	terminal.KeyCtrlD: KeyD,
	terminal.KeyCtrlE: KeyE,
	terminal.KeyCtrlF: KeyF,
	terminal.KeyCtrlG: KeyG,
	terminal.KeyCtrlK: KeyK,
	terminal.KeyCtrlL: KeyL,
	terminal.KeyCtrlN: KeyN,
	terminal.KeyCtrlO: KeyO,
	terminal.KeyCtrlP: KeyP,
	terminal.KeyCtrlQ: KeyQ,
	terminal.KeyCtrlR: KeyR,
	terminal.KeyCtrlS: KeyS,
	terminal.KeyCtrlT: KeyT,
	terminal.KeyCtrlU: KeyU,
	terminal.KeyCtrlV: KeyV,
	terminal.KeyCtrlW: KeyW,
	terminal.KeyCtrlX: KeyX,
	terminal.KeyCtrlY: KeyY,
	terminal.KeyCtrlZ: KeyZ,
}

// runeCode maps printable runes; letters ignore case
func runeCode(r rune) KeyCode {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + KeyCode(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + KeyCode(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + KeyCode(r-'0')
	case r == ' ':
		return KeySpace
	}
	return KeyUnknown
}

// Translate maps a raw terminal key event to its logical key
// Keys with no logical equivalent become KeyUnknown and keep their rune
func Translate(ev terminal.Event) (KeyCode, terminal.Modifier) {
	if ev.Key == terminal.KeyRune {
		return runeCode(ev.Rune), ev.Modifiers
	}
	if code, ok := ctrlLetters[ev.Key]; ok {
		return code, ev.Modifiers | terminal.ModCtrl
	}
	if code, ok := namedKeys[ev.Key]; ok {
		mods := ev.Modifiers
		if ev.Key == terminal.KeyCtrlSpace {
			mods |= terminal.ModCtrl
		}
		return code, mods
	}
	return KeyUnknown, ev.Modifiers
}

var codeNames = map[KeyCode]string{
	KeySpace:    "Space",
	KeyEscape:   "Escape",
	KeyReturn:   "Return",
	KeyBack:     "Back",
	KeyTab:      "Tab",
	KeyBacktab:  "Backtab",
	KeyDelete:   "Delete",
	KeyInsert:   "Insert",
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
}

func (k KeyCode) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := codeNames[k]; ok {
		return name
	}
	return "Unknown"
}
