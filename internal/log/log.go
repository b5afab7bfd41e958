// Package log provides category-scoped structured logging for beats.
//
// Logging is off until Init is called with Enabled set. stdout carries the
// command output contract, so log records go to stderr or to a file.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Category tags a log record with the subsystem that produced it.
type Category string

const (
	CatCLI    Category = "cli"
	CatConfig Category = "config"
	CatBeat   Category = "beat"
	CatRender Category = "render"
	CatTrace  Category = "trace"
)

// Config controls where and how verbosely records are written.
type Config struct {
	Enabled bool
	Level   string // "debug", "info", "warn", "error"; defaults to debug
	File    string // empty means stderr
}

var logger = slog.New(slog.DiscardHandler)

// Init installs the package logger. The returned function closes the log file,
// if one was opened.
func Init(cfg Config) (func() error, error) {
	noop := func() error { return nil }
	if !cfg.Enabled {
		logger = slog.New(slog.DiscardHandler)
		return noop, nil
	}

	var w io.Writer = os.Stderr
	closer := noop
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0750); err != nil {
			return noop, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return noop, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	SetOutput(w, parseLevel(cfg.Level))
	return closer, nil
}

// SetOutput writes text records at or above level to w.
func SetOutput(w io.Writer, level slog.Level) {
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// Debug logs msg at debug level tagged with cat.
func Debug(cat Category, msg string, args ...any) {
	logger.Debug(msg, append([]any{"cat", string(cat)}, args...)...)
}

// Info logs msg at info level tagged with cat.
func Info(cat Category, msg string, args ...any) {
	logger.Info(msg, append([]any{"cat", string(cat)}, args...)...)
}

// Error logs msg at error level tagged with cat.
func Error(cat Category, msg string, args ...any) {
	logger.Error(msg, append([]any{"cat", string(cat)}, args...)...)
}

// ErrorErr logs msg at error level with err attached.
func ErrorErr(cat Category, msg string, err error, args ...any) {
	Error(cat, msg, append([]any{"error", err}, args...)...)
}
