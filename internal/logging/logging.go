// Package logging builds the leveled console logger used across the CLI.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options configures a logger.
type Options struct {
	Level      string // debug, info, warn or error
	Format     string // text, json or logfmt
	Timestamps bool
	Prefix     string
}

// DefaultOptions returns options for human-readable info logging.
func DefaultOptions() Options {
	return Options{
		Level:  "info",
		Format: "text",
		Prefix: "todo",
	}
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level, err := log.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	formatter, err := parseFormatter(opts.Format)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: opts.Timestamps,
		Prefix:          opts.Prefix,
	}), nil
}

// WithSession returns a child logger tagged with a fresh session id, and
// the id itself.
func WithSession(logger *log.Logger) (*log.Logger, string) {
	id := uuid.NewString()
	return logger.With("session", id), id
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

func parseFormatter(name string) (log.Formatter, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	default:
		return log.TextFormatter, fmt.Errorf("unknown log format: %s", name)
	}
}
