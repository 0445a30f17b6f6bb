// Package logging builds the slog logger used across droneplan.
//
// The terminal belongs to the map UI, so records go to a size-rotated file
// in the application data directory instead of stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/natefinch/lumberjack"
)

// Options configures the logger.
type Options struct {
	// Path of the log file. Empty discards all records.
	Path string

	// Level is one of debug, info, warn or error.
	Level string

	// Format is text or json.
	Format string
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}

	return lvl, nil
}

// New returns a logger tagged with a fresh session id and the closer for its
// sink.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var sink io.WriteCloser = nopCloser{io.Discard}
	if opts.Path != "" {
		sink = &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		}
	}

	logger, err := newWithWriter(sink, level, opts.Format)
	if err != nil {
		_ = sink.Close()
		return nil, nil, err
	}

	return logger.With("session", uuid.NewString()), sink, nil
}

func newWithWriter(w io.Writer, level slog.Level, format string) (*slog.Logger, error) {
	handlerOpts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", format)
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
