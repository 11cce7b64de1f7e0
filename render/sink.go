package render

// Sink receives the terminal commands produced by a flush
// Commands between BeginUpdate and EndUpdate form one atomic visual update;
// EndUpdate pushes buffered output and reports the first write error
type Sink interface {
	BeginUpdate()
	EndUpdate() error
	// ClearScreen erases the screen and homes the cursor
	ClearScreen()
	// MoveTo positions the cursor, zero-based
	MoveTo(col, row int)
	// WriteGlyph writes one glyph at the cursor and advances it
	WriteGlyph(r rune)
}
