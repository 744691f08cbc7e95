// Package logging provides structured JSON logging for the mood service.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Logger is the structured logging interface used across the service
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})

	// WithComponent returns a logger scoped to a component name
	WithComponent(component string) Logger
}

// Level represents logging levels
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel converts a level name into a Level, defaulting to info
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

// entry is the serialized shape of a single log line
type entry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Component string                 `json:"component,omitempty"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// StructuredLogger writes JSON log lines to stderr
type StructuredLogger struct {
	level     Level
	component string
	useJSON   bool
}

// New creates a structured logger at the given level. Output is JSON unless
// LOG_JSON is explicitly disabled.
func New(level Level) Logger {
	return &StructuredLogger{
		level:   level,
		useJSON: envBool("LOG_JSON", true),
	}
}

// WithComponent returns a copy of the logger scoped to a component name
func (l *StructuredLogger) WithComponent(component string) Logger {
	return &StructuredLogger{
		level:     l.level,
		component: component,
		useJSON:   l.useJSON,
	}
}

// Debug logs a debug message
func (l *StructuredLogger) Debug(msg string, fields ...interface{}) {
	if l.level <= LevelDebug {
		l.write("DEBUG", msg, fields...)
	}
}

// Info logs an info message
func (l *StructuredLogger) Info(msg string, fields ...interface{}) {
	if l.level <= LevelInfo {
		l.write("INFO", msg, fields...)
	}
}

// Warn logs a warning message
func (l *StructuredLogger) Warn(msg string, fields ...interface{}) {
	if l.level <= LevelWarn {
		l.write("WARN", msg, fields...)
	}
}

// Error logs an error message
func (l *StructuredLogger) Error(msg string, fields ...interface{}) {
	if l.level <= LevelError {
		l.write("ERROR", msg, fields...)
	}
}

func (l *StructuredLogger) write(level, msg string, fields ...interface{}) {
	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Message:   msg,
		Component: l.component,
		Fields:    pairFields(fields),
	}

	if l.useJSON {
		if data, err := json.Marshal(e); err == nil {
			fmt.Fprintln(os.Stderr, string(data))
			return
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s", e.Level, e.Message))
	if e.Component != "" {
		sb.WriteString(" component=" + e.Component)
	}
	for k, v := range e.Fields {
		sb.WriteString(fmt.Sprintf(" %s=%v", k, v))
	}
	fmt.Fprintln(os.Stderr, sb.String())
}

// pairFields interprets variadic fields as alternating key/value pairs
func pairFields(fields []interface{}) map[string]interface{} {
	if len(fields) == 0 {
		return nil
	}
	m := make(map[string]interface{}, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		key := fmt.Sprintf("%v", fields[i])
		if i+1 < len(fields) {
			m[key] = fields[i+1]
		} else {
			m[key] = "(missing)"
		}
	}
	return m
}

func envBool(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val == "true" || val == "1"
}
