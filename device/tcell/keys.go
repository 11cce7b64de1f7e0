package tcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyphcast/terminal"
)

// tcell aliases Ctrl+H/I/M/[ to Backspace/Tab/Enter/Escape, so those are listed once
var keyMap = map[tcell.Key]terminal.Key{
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyInsert:     terminal.KeyInsert,

	tcell.KeyUp:    terminal.KeyUp,
	tcell.KeyDown:  terminal.KeyDown,
	tcell.KeyLeft:  terminal.KeyLeft,
	tcell.KeyRight: terminal.KeyRight,
	tcell.KeyHome:  terminal.KeyHome,
	tcell.KeyEnd:   terminal.KeyEnd,
	tcell.KeyPgUp:  terminal.KeyPageUp,
	tcell.KeyPgDn:  terminal.KeyPageDown,

	tcell.KeyF1:  terminal.KeyF1,
	tcell.KeyF2:  terminal.KeyF2,
	tcell.KeyF3:  terminal.KeyF3,
	tcell.KeyF4:  terminal.KeyF4,
	tcell.KeyF5:  terminal.KeyF5,
	tcell.KeyF6:  terminal.KeyF6,
	tcell.KeyF7:  terminal.KeyF7,
	tcell.KeyF8:  terminal.KeyF8,
	tcell.KeyF9:  terminal.KeyF9,
	tcell.KeyF10: terminal.KeyF10,
	tcell.KeyF11: terminal.KeyF11,
	tcell.KeyF12: terminal.KeyF12,

	tcell.KeyCtrlSpace: terminal.KeyCtrlSpace,
	tcell.KeyCtrlA:     terminal.KeyCtrlA,
	tcell.KeyCtrlB:     terminal.KeyCtrlB,
	tcell.KeyCtrlC:     terminal.KeyCtrlC,
	tcell.KeyCtrlD:     terminal.KeyCtrlD,
	tcell.KeyCtrlE:     terminal.KeyCtrlE,
	tcell.KeyCtrlF:     terminal.KeyCtrlF,
	tcell.KeyCtrlG:     terminal.KeyCtrlG,
	tcell.KeyCtrlK:     terminal.KeyCtrlK,
	tcell.KeyCtrlL:     terminal.KeyCtrlL,
	tcell.KeyCtrlN:     terminal.KeyCtrlN,
	tcell.KeyCtrlO:     terminal.KeyCtrlO,
	tcell.KeyCtrlP:     terminal.KeyCtrlP,
	tcell.KeyCtrlQ:     terminal.KeyCtrlQ,
	tcell.KeyCtrlR:     terminal.KeyCtrlR,
	tcell.KeyCtrlS:     terminal.KeyCtrlS,
	tcell.KeyCtrlT:     terminal.KeyCtrlT,
	tcell.KeyCtrlU:     terminal.KeyCtrlU,
	tcell.KeyCtrlV:     terminal.KeyCtrlV,
	tcell.KeyCtrlW:     terminal.KeyCtrlW,
	tcell.KeyCtrlX:     terminal.KeyCtrlX,
	tcell.KeyCtrlY:     terminal.KeyCtrlY,
	tcell.KeyCtrlZ:     terminal.KeyCtrlZ,
}

func convertMods(m tcell.ModMask) terminal.Modifier {
	var mods terminal.Modifier
	if m&tcell.ModShift != 0 {
		mods |= terminal.ModShift
	}
	if m&tcell.ModAlt != 0 {
		mods |= terminal.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mods |= terminal.ModCtrl
	}
	return mods
}

// convertEvent maps key and resize events; anything else is dropped
func convertEvent(ev tcell.Event) (terminal.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return terminal.Event{Type: terminal.EventResize, Width: w, Height: h}, true

	case *tcell.EventKey:
		mods := convertMods(ev.Modifiers())
		if ev.Key() == tcell.KeyRune {
			r := ev.Rune()
			// Some terminals report Ctrl+letter as a rune with the Ctrl modifier
			if mods&terminal.ModCtrl != 0 {
				if k, ok := ctrlLetter(r); ok {
					return terminal.Event{Type: terminal.EventKey, Key: k, Modifiers: mods &^ terminal.ModCtrl}, true
				}
			}
			return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r, Modifiers: mods}, true
		}
		if k, ok := keyMap[ev.Key()]; ok {
			// Ctrl is implied by the key itself for control keys
			if k >= terminal.KeyCtrlA && k <= terminal.KeyCtrlZ || k == terminal.KeyCtrlSpace {
				mods &^= terminal.ModCtrl
			}
			return terminal.Event{Type: terminal.EventKey, Key: k, Modifiers: mods}, true
		}
	}
	return terminal.Event{}, false
}

var ctrlLetters = map[rune]terminal.Key{
	'a': terminal.KeyCtrlA, 'b': terminal.KeyCtrlB, 'c': terminal.KeyCtrlC, 'd': terminal.KeyCtrlD,
	'e': terminal.KeyCtrlE, 'f': terminal.KeyCtrlF, 'g': terminal.KeyCtrlG, 'k': terminal.KeyCtrlK,
	'l': terminal.KeyCtrlL, 'n': terminal.KeyCtrlN, 'o': terminal.KeyCtrlO, 'p': terminal.KeyCtrlP,
	'q': terminal.KeyCtrlQ, 'r': terminal.KeyCtrlR, 's': terminal.KeyCtrlS, 't': terminal.KeyCtrlT,
	'u': terminal.KeyCtrlU, 'v': terminal.KeyCtrlV, 'w': terminal.KeyCtrlW, 'x': terminal.KeyCtrlX,
	'y': terminal.KeyCtrlY, 'z': terminal.KeyCtrlZ,
}

func ctrlLetter(r rune) (terminal.Key, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	k, ok := ctrlLetters[r]
	return k, ok
}
