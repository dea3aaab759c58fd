/*
Package logging configures structured logging with file rotation.

Logs go to stderr (text) and, when a directory is configured, to a rotated
JSON file. The interactive browser owns the terminal, so it runs Quiet and
logs to the file only.
*/
package logging

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the log file created inside Config.LogDir.
const FileName = "petitions.log"

// Config holds logging configuration.
type Config struct {
	// LogDir is the directory for log files. If empty, file logging is disabled.
	LogDir string
	// Verbose enables DEBUG-level logging. Default is INFO.
	Verbose bool
	// Quiet disables the stderr handler.
	Quiet bool
}

// Setup creates a logger and a cleanup function that closes the log file.
func Setup(cfg Config) (logger *slog.Logger, cleanup func()) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	if !cfg.Quiet {
		handlers = append(handlers, slog.NewTextHandler(os.Stderr, opts))
	}
	cleanup = func() {}

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0o750); err != nil {
			if len(handlers) > 0 {
				slog.New(handlers[0]).Warn("failed to create log directory, file logging disabled",
					"dir", cfg.LogDir,
					"error", err,
				)
			}
		} else {
			lj := &lumberjack.Logger{
				Filename:   filepath.Join(cfg.LogDir, FileName),
				MaxSize:    5, // MB per file
				MaxBackups: 3,
				MaxAge:     14, // days
				Compress:   true,
			}
			handlers = append(handlers, slog.NewJSONHandler(lj, opts))
			cleanup = func() { _ = lj.Close() }
		}
	}

	switch len(handlers) {
	case 0:
		return slog.New(slog.DiscardHandler), cleanup
	case 1:
		return slog.New(handlers[0]), cleanup
	}
	return slog.New(fanout(handlers)), cleanup
}

// fanout sends each record to every handler enabled for its level. A
// failing handler does not keep the others from writing.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(f, func(h slog.Handler) bool { return h.Enabled(ctx, level) })
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (f fanout) WithGroup(name string) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (f fanout) each(fn func(slog.Handler) slog.Handler) fanout {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = fn(h)
	}
	return out
}
