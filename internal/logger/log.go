// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps a slog.Logger so that all brolly components share the same handler setup.
type Logger struct {
	*slog.Logger
}

// New returns a text logger writing to stderr. Stdout is reserved for the waybar output.
func New(level slog.Level) *Logger {
	return NewLogger(level, os.Stderr)
}

// NewLogger returns a text logger with the given level writing to output.
func NewLogger(level slog.Level, output io.Writer) *Logger {
	return &Logger{slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))}
}

// Err returns a slog attribute for the given error.
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}
