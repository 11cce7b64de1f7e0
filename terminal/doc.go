// Package terminal provides direct ANSI terminal control for glyph-only rendering.
//
// Features:
//   - Raw input mode, alternate screen, hidden cursor, auto-wrap off while running
//   - Synchronized-update bracketing so a batch of positioned writes lands atomically
//   - Raw stdin parsing into key events with escape sequence handling
//   - SIGWINCH resize detection with coalescing
//   - Emergency restoration for crash paths
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
