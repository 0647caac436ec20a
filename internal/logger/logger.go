// Package logger builds the structured loggers used by the CLI and the
// generation service.
package logger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrInvalidLevel indicates an unknown log level name.
var ErrInvalidLevel = errors.New("invalid log level")

// TimeFormat is the timestamp layout of text output.
const TimeFormat = "15:04:05"

// Config selects level, formatter and prefix.
type Config struct {
	Level  log.Level
	JSON   bool
	Prefix string
}

// New returns a logger writing to w.
func New(w io.Writer, cfg Config) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:           cfg.Level,
		Prefix:          cfg.Prefix,
		ReportTimestamp: true,
		TimeFormat:      TimeFormat,
	})
	if cfg.JSON {
		l.SetFormatter(log.JSONFormatter)
	}
	return l
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel maps debug, info, warn or error (case-insensitive) to a level.
// An empty name means info.
func ParseLevel(name string) (log.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: %q (use debug, info, warn or error)", ErrInvalidLevel, name)
	}
	return level, nil
}
