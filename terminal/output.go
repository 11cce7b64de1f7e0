package terminal

import (
	"bufio"
	"io"
	"sync"

	"github.com/lixenwraith/glyphcast/constant"
)

// Output writes positioned glyphs to the terminal through one buffered writer
// It satisfies render.Sink; nothing reaches the terminal until EndUpdate
// Every call holds mu, so a restore from a crashing goroutine cannot interleave with a frame
// mid-write; once closed, frame writes are dropped so nothing lands on the restored screen
type Output struct {
	mu     sync.Mutex
	dst    io.Writer
	writer *bufio.Writer
	closed bool

	cursorX     int
	cursorY     int
	cursorValid bool
}

// NewOutput wraps w with the render-sized write buffer
func NewOutput(w io.Writer) *Output {
	return &Output{
		dst:    w,
		writer: bufio.NewWriterSize(w, constant.OutputBufferSize),
	}
}

// BeginUpdate opens a synchronized update
func (o *Output) BeginUpdate() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.writer.Write(csiSyncBegin)
}

// EndUpdate closes the synchronized update and flushes
// bufio keeps the first write error, so it surfaces here
func (o *Output) EndUpdate() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil
	}
	o.writer.Write(csiSyncEnd)
	return o.writer.Flush()
}

func (o *Output) ClearScreen() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.writer.Write(csiClear)
	o.cursorX, o.cursorY = 0, 0
	o.cursorValid = true
}

// MoveTo skips the cursor sequence when the cursor is already there
func (o *Output) MoveTo(col, row int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	if o.cursorValid && o.cursorX == col && o.cursorY == row {
		return
	}
	writeCursorPos(o.writer, col, row)
	o.cursorX, o.cursorY = col, row
	o.cursorValid = true
}

func (o *Output) WriteGlyph(r rune) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	switch {
	case r == 0:
		o.writer.WriteByte(constant.BlankGlyph)
	case r < 0x80:
		o.writer.WriteByte(byte(r))
	default:
		o.writer.WriteRune(r)
	}
	// Auto-wrap is off, so the tracked column may run one past the right edge; the
	// next MoveTo to any real column still emits a sequence
	o.cursorX++
}

// writeRaw writes control sequences in stream order with buffered glyphs and flushes
// The cursor position is unknown afterwards, so the next MoveTo always emits
func (o *Output) writeRaw(seqs ...[]byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.writeRawLocked(seqs...)
}

// close writes the restore sequences and drops every later frame write
// Glyphs buffered by an unfinished frame are discarded rather than flushed onto the main screen
func (o *Output) close(seqs ...[]byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.writer.Reset(o.dst)
	o.closed = true
	return o.writeRawLocked(seqs...)
}

func (o *Output) writeRawLocked(seqs ...[]byte) error {
	for _, s := range seqs {
		o.writer.Write(s)
	}
	o.cursorValid = false
	return o.writer.Flush()
}
