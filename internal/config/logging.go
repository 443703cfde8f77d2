package config

import (
	"errors"
	"fmt"
	"strings"
)

// LoggingConfig controls diagnostics on stderr only.
type LoggingConfig struct {
	Format LogFormat
	Level  LogLevel
}

// LogFormat represents the logging output format
type LogFormat string

// LogLevel represents the logging verbosity level
type LogLevel string

// Constants for LogFormat
const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Constants for LogLevel
const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// String returns the string representation of LogFormat
func (f LogFormat) String() string {
	return string(f)
}

// String returns the string representation of LogLevel
func (l LogLevel) String() string {
	return string(l)
}

// IsValid checks if the LogFormat is valid
func (f LogFormat) IsValid() bool {
	switch f {
	case LogFormatText, LogFormatJSON:
		return true
	default:
		return false
	}
}

// IsValid checks if the LogLevel is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelTrace, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true
	default:
		return false
	}
}

// LogFormatFromString converts a string to a LogFormat. Empty means text.
func LogFormatFromString(format string) (LogFormat, error) {
	switch strings.ToLower(format) {
	case "json":
		return LogFormatJSON, nil
	case "text", "txt", "":
		return LogFormatText, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidLogFormat, format)
	}
}

// LogLevelFromString converts a string to a LogLevel. Empty means info.
func LogLevelFromString(level string) (LogLevel, error) {
	switch strings.ToLower(level) {
	case "trace":
		return LogLevelTrace, nil
	case "debug":
		return LogLevelDebug, nil
	case "info", "":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidLogLevel, level)
	}
}

// NewLoggingConfig parses the level and format given on the command line.
func NewLoggingConfig(level, format string) (LoggingConfig, error) {
	lvl, levelErr := LogLevelFromString(level)
	fmtx, formatErr := LogFormatFromString(format)
	if levelErr != nil || formatErr != nil {
		return LoggingConfig{}, errors.Join(levelErr, formatErr)
	}
	return LoggingConfig{Format: fmtx, Level: lvl}, nil
}
