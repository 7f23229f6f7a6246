package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to a file
func NewFileLogger(path string, level log.Level) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	cleanup := func() {
		f.Close()
	}

	return NewWithLevel(f, level), cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ParseLevel maps a config level name to a log level
func ParseLevel(name string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// ConversionStarted logs the start of a conversion
func (l *Logger) ConversionStarted(source, direction string) {
	l.Debug("conversion started",
		"source", source,
		"direction", direction)
}

// ConversionCompleted logs a finished conversion
func (l *Logger) ConversionCompleted(source, dest string, blocks int, duration time.Duration) {
	l.Info("conversion completed",
		"source", source,
		"dest", dest,
		"blocks", blocks,
		"duration", duration.Round(time.Millisecond))
}

// DestinationRenamed logs a collision resolved by choosing a new name
func (l *Logger) DestinationRenamed(wanted, chosen string) {
	l.Warn("destination exists, writing to new name",
		"wanted", wanted,
		"dest", chosen)
}

// Overwriting logs a collision resolved by replacing the existing file
func (l *Logger) Overwriting(dest string) {
	l.Warn("overwriting existing file", "dest", dest)
}

// ConversionError logs a conversion error
func (l *Logger) ConversionError(source, dest string, err error) {
	l.Error("conversion failed",
		"source", source,
		"dest", dest,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path, font string, size float64, overwrite string) {
	l.Debug("config loaded",
		"path", path,
		"font", font,
		"size", size,
		"overwrite", overwrite)
}

// PartMissing logs an optional package part that was not found
func (l *Logger) PartMissing(source, part string) {
	l.Debug("optional part missing",
		"source", source,
		"part", part)
}
