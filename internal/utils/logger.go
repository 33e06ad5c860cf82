package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Level orders log severities
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a LOG_LEVEL value to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger provides leveled logging throughout the application.
type Logger struct {
	level Level
	color bool
	out   *log.Logger
	err   *log.Logger
}

// NewLogger creates a Logger writing to stdout/stderr.
// format "text" colours the level tag; anything else prints it plain.
func NewLogger(level, format string) *Logger {
	return newLogger(os.Stdout, os.Stderr, ParseLevel(level), strings.EqualFold(format, "text"))
}

func newLogger(out, errOut io.Writer, level Level, color bool) *Logger {
	return &Logger{
		level: level,
		color: color,
		out:   log.New(out, "", 0),
		err:   log.New(errOut, "", 0),
	}
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) write(lvl Level, tag, colour, format string, args ...any) {
	if l == nil || lvl < l.level {
		return
	}
	dst := l.out
	if lvl == LevelError {
		dst = l.err
	}
	if l.color {
		tag = colour + tag + "\033[0m"
	}
	dst.Printf("[%s] %s %s", l.timestamp(), tag, fmt.Sprintf(format, args...))
}

// Debug logs diagnostic detail, shown only at debug level
func (l *Logger) Debug(format string, args ...any) {
	l.write(LevelDebug, "DEBUG", "\033[36m", format, args...)
}

// Info logs normal operational events
func (l *Logger) Info(format string, args ...any) {
	l.write(LevelInfo, "INFO ", "\033[32m", format, args...)
}

// Warn logs recoverable problems such as ignored settings
func (l *Logger) Warn(format string, args ...any) {
	l.write(LevelWarn, "WARN ", "\033[33m", format, args...)
}

// Error logs failures to stderr
func (l *Logger) Error(format string, args ...any) {
	l.write(LevelError, "ERROR", "\033[31m", format, args...)
}
