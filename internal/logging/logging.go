// Package logging provides a small leveled logger for startup and
// headless diagnostics.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a log level string, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "warn", "WARN", "warning":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes timestamped leveled lines to a single destination.
type Logger struct {
	mu    sync.Mutex
	level Level
	out   io.Writer
}

// New creates a logger writing to stderr.
func New(level Level) *Logger {
	return &Logger{level: level, out: os.Stderr}
}

// SetOutput redirects log output.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

func (l *Logger) write(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	fmt.Fprintf(l.out, "%s [%s] %s\n",
		time.Now().Format("15:04:05.000"), level, fmt.Sprintf(format, args...))
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) { l.write(LevelDebug, format, args...) }

// Info logs an info message.
func (l *Logger) Info(format string, args ...any) { l.write(LevelInfo, format, args...) }

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...any) { l.write(LevelWarn, format, args...) }

// Error logs an error.
func (l *Logger) Error(format string, args ...any) { l.write(LevelError, format, args...) }

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{level: LevelError + 1, out: io.Discard}
}
