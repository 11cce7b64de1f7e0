package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/glyphcast/constant"
)

// setupLogging routes the standard logger to a file under dir when debug is set
// Otherwise logging is discarded: the terminal is in raw mode and owned by the renderer
// An oversized log is renamed with a timestamp before a fresh one is opened
func setupLogging(debug bool, dir string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(dir, constant.LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > constant.MaxLogSize {
		ext := filepath.Ext(constant.LogFileName)
		base := constant.LogFileName[:len(constant.LogFileName)-len(ext)]
		rotated := filepath.Join(dir, fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("=== glyphcast started (pid %d) ===", os.Getpid())
	return f
}
