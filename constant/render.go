package constant

// OutputBufferSize is the bufio size for terminal output, large enough to hold
// a full repaint of a big terminal in one write
const OutputBufferSize = 131072 // 128KB

// Demo scene depths
const (
	DemoGlyphDepth = 1.0
	DemoWallDepth  = 1000.0
)
