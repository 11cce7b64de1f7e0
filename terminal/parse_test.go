package terminal

import (
	"testing"
)

func TestParserKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Event
	}{
		{"ascii", "wq", []Event{
			{Type: EventKey, Key: KeyRune, Rune: 'w'},
			{Type: EventKey, Key: KeyRune, Rune: 'q'},
		}},
		{"enter cr", "\r", []Event{{Type: EventKey, Key: KeyEnter}}},
		{"tab", "\t", []Event{{Type: EventKey, Key: KeyTab}}},
		{"del is backspace", "\x7f", []Event{{Type: EventKey, Key: KeyBackspace}}},
		{"ctrl c", "\x03", []Event{{Type: EventKey, Key: KeyCtrlC}}},
		{"arrow up", "\x1b[A", []Event{{Type: EventKey, Key: KeyUp}}},
		{"ctrl right", "\x1b[1;5C", []Event{{Type: EventKey, Key: KeyRight, Modifiers: ModCtrl}}},
		{"ss3 left", "\x1bOD", []Event{{Type: EventKey, Key: KeyLeft}}},
		{"delete", "\x1b[3~", []Event{{Type: EventKey, Key: KeyDelete}}},
		{"f12", "\x1b[24~", []Event{{Type: EventKey, Key: KeyF12}}},
		{"linux console f1", "\x1b[[A", []Event{{Type: EventKey, Key: KeyF1}}},
		{"backtab", "\x1b[Z", []Event{{Type: EventKey, Key: KeyBacktab, Modifiers: ModShift}}},
		{"alt rune", "\x1bx", []Event{{Type: EventKey, Key: KeyRune, Rune: 'x', Modifiers: ModAlt}}},
		{"alt escape", "\x1b\x1b", []Event{{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}}},
		{"utf8", "é", []Event{{Type: EventKey, Key: KeyRune, Rune: 'é'}}},
		{"unknown csi swallowed", "\x1b[99zq", []Event{{Type: EventKey, Key: KeyRune, Rune: 'q'}}},
		{"mixed", "a\x1b[Bb", []Event{
			{Type: EventKey, Key: KeyRune, Rune: 'a'},
			{Type: EventKey, Key: KeyDown},
			{Type: EventKey, Key: KeyRune, Rune: 'b'},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParser()
			got := p.feed([]byte(tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("feed(%q) = %d events %+v, want %d", tt.input, len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
			if len(p.buf) != 0 {
				t.Errorf("leftover buffer %q", p.buf)
			}
		})
	}
}

func TestParserSplitSequence(t *testing.T) {
	p := newParser()

	if got := p.feed([]byte("\x1b[")); len(got) != 0 {
		t.Fatalf("partial CSI produced %+v", got)
	}
	got := p.feed([]byte("D"))
	if len(got) != 1 || got[0].Key != KeyLeft {
		t.Fatalf("completed CSI = %+v, want left", got)
	}

	// Split multibyte rune
	raw := []byte("ü")
	if got := p.feed(raw[:1]); len(got) != 0 {
		t.Fatalf("partial rune produced %+v", got)
	}
	got = p.feed(raw[1:])
	if len(got) != 1 || got[0].Rune != 'ü' {
		t.Fatalf("completed rune = %+v", got)
	}
}

func TestParserLoneEscape(t *testing.T) {
	p := newParser()

	if got := p.feed([]byte{0x1b}); len(got) != 0 {
		t.Fatalf("lone ESC emitted early: %+v", got)
	}
	if !p.pendingEscape() {
		t.Fatal("expected pending escape")
	}

	got := p.flushEscape()
	if len(got) != 1 || got[0].Key != KeyEscape || got[0].Modifiers != ModNone {
		t.Fatalf("flushEscape = %+v", got)
	}
	if got := p.flushEscape(); len(got) != 0 {
		t.Errorf("second flush should be empty, got %+v", got)
	}
}

func TestParserUnfinishedCSIFlushes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Event
	}{
		{"alt bracket", "\x1b[", []Event{
			{Type: EventKey, Key: KeyRune, Rune: '[', Modifiers: ModAlt},
		}},
		{"alt O", "\x1bO", []Event{
			{Type: EventKey, Key: KeyRune, Rune: 'O', Modifiers: ModAlt},
		}},
		{"params kept as runes", "\x1b[1;", []Event{
			{Type: EventKey, Key: KeyRune, Rune: '[', Modifiers: ModAlt},
			{Type: EventKey, Key: KeyRune, Rune: '1'},
			{Type: EventKey, Key: KeyRune, Rune: ';'},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParser()
			if got := p.feed([]byte(tt.input)); len(got) != 0 {
				t.Fatalf("unfinished sequence emitted early: %+v", got)
			}
			if !p.pendingEscape() {
				t.Fatal("expected pending escape")
			}
			got := p.flushEscape()
			if len(got) != len(tt.want) {
				t.Fatalf("flushEscape = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
			if p.pendingEscape() {
				t.Error("buffer still pending after flush")
			}
		})
	}
}

func TestParserKeyAfterFlushedBracket(t *testing.T) {
	p := newParser()
	p.feed([]byte{0x1b, '['})
	p.flushEscape()

	got := p.feed([]byte{'a'})
	if len(got) != 1 || got[0].Key != KeyRune || got[0].Rune != 'a' || got[0].Modifiers != ModNone {
		t.Fatalf("key after flushed ESC [ = %+v, want plain 'a'", got)
	}
}

func TestParserInvalidUTF8Skipped(t *testing.T) {
	p := newParser()
	got := p.feed([]byte{0xff, 'a'})
	if len(got) != 1 || got[0].Rune != 'a' {
		t.Fatalf("got %+v, want single 'a'", got)
	}
}

func TestKeyString(t *testing.T) {
	if KeyEscape.String() != "escape" {
		t.Errorf("KeyEscape.String() = %q", KeyEscape.String())
	}
	if Key(9999).String() != "key(9999)" {
		t.Errorf("unknown key name = %q", Key(9999).String())
	}
}
