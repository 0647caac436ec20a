// Package dateutil expands date stamps in output file names.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidPattern indicates a malformed name pattern.
var ErrInvalidPattern = errors.New("invalid name pattern")

// MaxPatternLength limits pattern length.
const MaxPatternLength = 100

// DefaultPattern names generated reports after the current date.
const DefaultPattern = "report-{iso}"

// tokens maps stamp tokens to Go layout parts, longest first so that
// matching is greedy.
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"hh", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named stamp formats.
var Presets = map[string]string{
	"iso":     "YYYY-MM-DD",
	"compact": "YYYYMMDD",
	"time":    "YYYYMMDD-hhmm",
}

// Layout converts a stamp format such as "YYYY-MM-DD" to a Go time layout.
// Characters that are not tokens are kept.
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: empty stamp", ErrInvalidPattern)
	}

	var sb strings.Builder
	for rest := format; rest != ""; {
		matched := false
		for _, t := range tokens {
			if strings.HasPrefix(rest, t.token) {
				sb.WriteString(t.layout)
				rest = rest[len(t.token):]
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(rest[0])
			rest = rest[1:]
		}
	}
	return sb.String(), nil
}

// Expand replaces every {stamp} in pattern with t formatted by that stamp.
// A stamp is a preset name (case-insensitive) or a token format. Text
// outside braces is kept as is.
func Expand(pattern string, t time.Time) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("%w: pattern cannot be empty", ErrInvalidPattern)
	}
	if len(pattern) > MaxPatternLength {
		return "", fmt.Errorf("%w: pattern exceeds %d characters", ErrInvalidPattern, MaxPatternLength)
	}

	var sb strings.Builder
	rest := pattern
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			sb.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("%w: unclosed brace in %q", ErrInvalidPattern, pattern)
		}
		sb.WriteString(rest[:open])

		stamp := rest[open+1 : open+end]
		if preset, ok := Presets[strings.ToLower(stamp)]; ok {
			stamp = preset
		}
		layout, err := Layout(stamp)
		if err != nil {
			return "", err
		}
		sb.WriteString(t.Format(layout))
		rest = rest[open+end+1:]
	}
	return sb.String(), nil
}
