package ideagen

import (
	"fmt"
	"strings"
)

// ReportFormat selects how long the generated report should be. It only
// changes the prompt; rendering is identical for both.
type ReportFormat string

// Report formats.
const (
	ReportDetailed ReportFormat = "detailed"
	ReportShort    ReportFormat = "short"
)

// ParseReportFormat parses a format name (case-insensitive).
// An empty name means ReportDetailed.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch ReportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", ReportDetailed:
		return ReportDetailed, nil
	case ReportShort:
		return ReportShort, nil
	}
	return "", fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidReportFormat, s, ReportDetailed, ReportShort)
}

// DefaultMaxChunkLength is the chunk budget used when none is configured.
const DefaultMaxChunkLength = 4000

// RenderOptions holds the recognized rendering settings.
type RenderOptions struct {
	MaxChunkLength int          // runes per chunk, must be positive
	ReportFormat   ReportFormat // advisory, see ReportFormat
}

// DefaultRenderOptions returns the default settings.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		MaxChunkLength: DefaultMaxChunkLength,
		ReportFormat:   ReportDetailed,
	}
}

// Validate checks that the options are usable.
func (o RenderOptions) Validate() error {
	if o.MaxChunkLength <= 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidMaxChunkLength, o.MaxChunkLength)
	}
	if _, err := ParseReportFormat(string(o.ReportFormat)); err != nil {
		return err
	}
	return nil
}

// Ideas count bounds.
const (
	MinIdeasCount     = 3
	MaxIdeasCount     = 5
	DefaultIdeasCount = 4
)

// Request describes one report to generate. Niche, Budget and Market are
// catalog keys or free text.
type Request struct {
	Niche      string
	Budget     string
	Market     string
	IdeasCount int          // 0 means DefaultIdeasCount
	Format     ReportFormat // empty means ReportDetailed
}

// Validate checks required fields and ranges.
// Does not mutate - see normalized for the effective values.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Niche) == "" {
		return ErrEmptyNiche
	}
	if strings.TrimSpace(r.Budget) == "" {
		return ErrEmptyBudget
	}
	if strings.TrimSpace(r.Market) == "" {
		return ErrEmptyMarket
	}
	if r.IdeasCount != 0 && (r.IdeasCount < MinIdeasCount || r.IdeasCount > MaxIdeasCount) {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidIdeasCount, r.IdeasCount, MinIdeasCount, MaxIdeasCount)
	}
	if _, err := ParseReportFormat(string(r.Format)); err != nil {
		return err
	}
	return nil
}

// normalized returns r with defaults applied. Call Validate first.
func (r Request) normalized() Request {
	if r.IdeasCount == 0 {
		r.IdeasCount = DefaultIdeasCount
	}
	r.Format, _ = ParseReportFormat(string(r.Format))
	return r
}
