// Package logging provides leveled diagnostics on top of the standard logger.
//
// The level comes from the DEBUG (1/true/yes/on) and LOG_LEVEL
// (debug/info/warn/error) environment variables and defaults to warn so the
// command loop stays quiet.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu     sync.RWMutex
	level  = LevelWarn
	logger = log.New(os.Stderr, "", log.LstdFlags)
)

// ParseLevel resolves the level from DEBUG and LOG_LEVEL values.
// DEBUG wins when it is truthy.
func ParseLevel(debug, logLevel string) Level {
	switch strings.ToLower(debug) {
	case "1", "true", "yes", "on":
		return LevelDebug
	}

	switch strings.ToLower(logLevel) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Init sets the level from the environment.
func Init() {
	SetLevel(ParseLevel(os.Getenv("DEBUG"), os.Getenv("LOG_LEVEL")))
}

// SetLevel sets the minimum level that is written.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// GetLevel returns the current level.
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// IsDebugEnabled returns true if debug logging is enabled.
func IsDebugEnabled() bool {
	return GetLevel() <= LevelDebug
}

// SetOutput redirects all log output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Debug logs a debug message.
func Debug(format string, args ...any) { logf(LevelDebug, format, args...) }

// Info logs an info message.
func Info(format string, args ...any) { logf(LevelInfo, format, args...) }

// Warn logs a warning message.
func Warn(format string, args ...any) { logf(LevelWarn, format, args...) }

// Error logs an error message.
func Error(format string, args ...any) { logf(LevelError, format, args...) }

func logf(l Level, format string, args ...any) {
	if GetLevel() > l {
		return
	}
	logger.Printf("["+strings.ToUpper(l.String())+"] "+format, args...)
}

// String returns the string representation of a log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", l)
	}
}
