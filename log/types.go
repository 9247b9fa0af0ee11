// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package log

import "fmt"

// Logger is the structured logger used by the client and the CLI.
type Logger interface {
	// Debug logs low-level detail, such as individual transport failures.
	Debug(msg string, keysAndValues ...any)
	// Info logs routine progress, such as a busy node being retried.
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	// Fatal logs an unrecoverable failure and may terminate the program.
	Fatal(msg string, keysAndValues ...any)
	// WithKV returns a logger that adds the key-value pair to every entry.
	WithKV(key string, value any) Logger
	// WithName returns a logger whose name is extended with name, dot separated.
	WithName(name string) Logger
	Name() string
}

// Level represents the severity level of a log message.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

// ParseLevel converts s into a Level.
func ParseLevel(s string) (Level, error) {
	switch l := Level(s); l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal:
		return l, nil
	default:
		return "", fmt.Errorf("unknown log level %q", s)
	}
}
