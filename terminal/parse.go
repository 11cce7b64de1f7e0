package terminal

import "unicode/utf8"

// parser assembles raw stdin bytes into key events
// The buffer persists across reads so sequences split at a read boundary are completed later
type parser struct {
	buf    []byte
	events []Event
}

func newParser() *parser {
	return &parser{buf: make([]byte, 0, 256)}
}

// feed appends data and returns all complete events, in input order
// The returned slice is reused by the next call
func (p *parser) feed(data []byte) []Event {
	p.events = p.events[:0]
	p.buf = append(p.buf, data...)

	consumed := p.parse(p.buf)
	if consumed >= len(p.buf) {
		p.buf = p.buf[:0]
	} else if consumed > 0 {
		n := copy(p.buf, p.buf[consumed:])
		p.buf = p.buf[:n]
	}
	return p.events
}

// pendingEscape reports whether the buffer holds an unterminated escape sequence
// parse only leaves an ESC at the front when the sequence after it is incomplete
func (p *parser) pendingEscape() bool {
	return len(p.buf) > 0 && p.buf[0] == 0x1b
}

// flushEscape resolves an unterminated escape once input has gone quiet
// A lone ESC is the Escape key; ESC plus the first byte of an unfinished sequence is
// Alt+that byte, and anything after it is parsed as ordinary input
func (p *parser) flushEscape() []Event {
	p.events = p.events[:0]
	if !p.pendingEscape() {
		return nil
	}

	rest := p.buf[1:]
	if len(rest) == 0 {
		p.emit(Event{Type: EventKey, Key: KeyEscape})
	} else {
		p.emit(Event{Type: EventKey, Key: KeyRune, Rune: rune(rest[0]), Modifiers: ModAlt})
		rest = rest[1:]
	}

	consumed := p.parse(rest)
	n := copy(p.buf, rest[consumed:])
	p.buf = p.buf[:n]
	return p.events
}

func (p *parser) emit(ev Event) {
	p.events = append(p.events, ev)
}

// parse consumes as many complete events as possible and returns the byte count consumed
func (p *parser) parse(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		switch {
		case b >= 0x20 && b < 0x7f:
			p.emit(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++

		case b == 0x1b:
			if i+1 >= n {
				return i
			}
			consumed, ev := parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			// Unknown but well-formed sequences are swallowed
			if ev.Key != KeyNone {
				p.emit(ev)
			}
			i += consumed

		case b < 0x20:
			p.emit(Event{Type: EventKey, Key: ctrlKeys[b]})
			i++

		case b == 0x7f:
			p.emit(Event{Type: EventKey, Key: KeyBackspace})
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && size == 1 {
				i++ // Invalid start or continuation byte
				continue
			}
			p.emit(Event{Type: EventKey, Key: KeyRune, Rune: r})
			i += size
		}
	}
	return i
}

// parseEscape returns 0 consumed on an incomplete sequence
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch {
	case data[1] == 0x1b:
		return 2, Event{Type: EventKey, Key: KeyEscape, Modifiers: ModAlt}
	case data[1] == '[':
		return parseCSI(data)
	case data[1] == 'O':
		return parseSS3(data)
	case data[1] < 0x20:
		return 2, Event{Type: EventKey, Key: ctrlKeys[data[1]], Modifiers: ModAlt}
	case data[1] < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}
	}

	// ESC followed by DEL or a non-ASCII byte: report ESC and reparse the rest
	return 1, Event{Type: EventKey, Key: KeyEscape}
}

func isCSIFinal(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~'
}

// parseCSI scans ESC [ params final
func parseCSI(data []byte) (int, Event) {
	const maxLen = 16

	if len(data) < 3 {
		return 0, Event{}
	}

	start := 2
	// Linux console function keys: ESC [ [ A
	if data[2] == '[' {
		if len(data) < 4 {
			return 0, Event{}
		}
		if key, mod, ok := lookupCSI(data[2:4]); ok {
			return 4, Event{Type: EventKey, Key: key, Modifiers: mod}
		}
		return 4, Event{Type: EventKey, Key: KeyNone}
	}

	for end := start; end < len(data) && end < maxLen; end++ {
		b := data[end]
		if isCSIFinal(b) {
			seq := data[start : end+1]
			if key, mod, ok := lookupCSI(seq); ok {
				return end + 1, Event{Type: EventKey, Key: key, Modifiers: mod}
			}
			return end + 1, Event{Type: EventKey, Key: KeyNone}
		}
		if b < 0x20 || b > 0x7e {
			// Malformed: drop the introducer, keep the offending byte
			return end, Event{Type: EventKey, Key: KeyNone}
		}
	}

	if len(data) >= maxLen {
		// Overlong without a final byte, discard what was scanned
		return maxLen, Event{Type: EventKey, Key: KeyNone}
	}
	return 0, Event{}
}

func parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Type: EventKey, Key: key, Modifiers: mod}
	}
	return 3, Event{Type: EventKey, Key: KeyNone}
}
