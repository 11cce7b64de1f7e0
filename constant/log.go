package constant

// Debug logging
const (
	LogDir      = "logs"
	LogFileName = "glyphcast.log"
	MaxLogSize  = 10 * 1024 * 1024 // 10MB
)
