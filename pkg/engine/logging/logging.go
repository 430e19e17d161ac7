// Package logging provides per-component loggers with coloured level tags.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gookit/color"
)

var (
	infoStyle  = color.New(color.FgCyan)
	errorStyle = color.New(color.FgRed, color.OpBold)
	debugStyle = color.New(color.FgGray)
)

// Logger writes lines of the form "[COMPONENT] LEVEL message".
type Logger struct {
	std   *log.Logger
	debug bool
}

// New creates a logger for a component writing to w.
func New(w io.Writer, component string) *Logger {
	return &Logger{
		std: log.New(w, fmt.Sprintf("[%s] ", component), log.LstdFlags|log.Lmsgprefix),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, "")
}

// With returns a logger for another component sharing the same output.
func (l *Logger) With(component string) *Logger {
	c := New(l.std.Writer(), component)
	c.debug = l.debug
	return c
}

// SetDebug enables Debug output.
func (l *Logger) SetDebug(on bool) {
	l.debug = on
}

// Info logs an informational line.
func (l *Logger) Info(format string, args ...any) {
	l.std.Printf("%s %s", infoStyle.Sprint("INFO"), fmt.Sprintf(format, args...))
}

// Error logs an error line.
func (l *Logger) Error(format string, args ...any) {
	l.std.Printf("%s %s", errorStyle.Sprint("ERROR"), fmt.Sprintf(format, args...))
}

// Debug logs only when debug output is enabled.
func (l *Logger) Debug(format string, args ...any) {
	if !l.debug {
		return
	}
	l.std.Printf("%s %s", debugStyle.Sprint("DEBUG"), fmt.Sprintf(format, args...))
}

// OpenFile opens path for appending, creating parent directories.
func OpenFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
