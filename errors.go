package ideagen

import "errors"

// Sentinel errors for library operations.
var (
	// Render options validation errors.
	ErrInvalidMaxChunkLength = errors.New("invalid max chunk length")
	ErrInvalidReportFormat   = errors.New("invalid report format")

	// Request validation errors.
	ErrEmptyNiche        = errors.New("niche cannot be empty")
	ErrEmptyBudget       = errors.New("budget cannot be empty")
	ErrEmptyMarket       = errors.New("market cannot be empty")
	ErrInvalidIdeasCount = errors.New("invalid ideas count")

	// Generation errors.
	ErrNilGenerator    = errors.New("generator cannot be nil")
	ErrGeneratorPanic  = errors.New("generator panicked")
	ErrEmptyGeneration = errors.New("generator returned no text")
)
