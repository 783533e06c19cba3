// Package logger provides the leveled logging used throughout the
// exporter. It wraps the standard log package with severity filtering
// and a package-level default instance.
package logger

import (
	"io"
	"log"
	"os"
)

// Level represents the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level.
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

// Logger is a leveled printf-style logger.
type Logger struct {
	logger *log.Logger
	level  Level
}

// Config holds the configuration for a logger.
type Config struct {
	Level  Level
	Output io.Writer
}

// Default is the package-level logger used when no instance is wired
// explicitly.
var Default = New(Config{Level: LevelInfo, Output: os.Stderr})

// New creates a logger writing to the configured output.
func New(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	return &Logger{
		logger: log.New(config.Output, "", log.LstdFlags),
		level:  config.Level,
	}
}

// SetLevel adjusts the minimum severity that gets emitted.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) log(level Level, format string, v ...any) {
	if level < l.level {
		return
	}
	l.logger.Printf("["+level.String()+"] "+format, v...)
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, v ...any) {
	l.log(LevelDebug, format, v...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, v ...any) {
	l.log(LevelInfo, format, v...)
}

// Warn logs a warning.
func (l *Logger) Warn(format string, v ...any) {
	l.log(LevelWarn, format, v...)
}

// Error logs an error.
func (l *Logger) Error(format string, v ...any) {
	l.log(LevelError, format, v...)
}
