// Package logging provides the zerolog setup and helpers shared by the CLI
// and the TUI screens.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls how the root logger is built.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Unparseable
	// values fall back to info.
	Level string

	// Format selects "console" (human-readable, default) or "json".
	Format string

	// File, when set, appends logs to the given path instead of stderr so
	// the terminal stays free for the TUI.
	File string
}

// Result is the outcome of building a logger, including the file handle to
// close on shutdown when file output is active.
type Result struct {
	Logger    zerolog.Logger
	UsingFile bool
	FilePath  string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds the root logger from cfg. When cfg.File cannot be opened the
// logger falls back to stderr rather than failing the command; the caller
// can detect the fallback via Result.UsingFile.
func New(cfg Config) Result {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	if cfg.Format == "json" {
		out = os.Stderr
	}

	result := Result{}
	if cfg.File != "" {
		file, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if fileErr == nil {
			out = file
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = file
		}
	}

	result.Logger = zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return result
}

// ComponentLogger returns a child logger tagged with a component name, so
// log lines can be traced back to the subsystem that emitted them.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// WithContext attaches the logger to ctx for retrieval via FromContext.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger attached to ctx, or a disabled logger
// when none was attached.
func FromContext(ctx context.Context) zerolog.Logger {
	return *zerolog.Ctx(ctx)
}
