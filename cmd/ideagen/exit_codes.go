package main

import (
	"context"
	"errors"
	"os"

	ideagen "github.com/alnah/go-ideagen"
	"github.com/alnah/go-ideagen/internal/assets"
	"github.com/alnah/go-ideagen/internal/config"
	"github.com/alnah/go-ideagen/internal/dateutil"
	"github.com/alnah/go-ideagen/internal/llm"
	"github.com/alnah/go-ideagen/internal/logger"
)

// Exit codes for the ideagen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Successful run
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, config, or validation
	ExitIO         = 3 // File not found, permission denied
	ExitGeneration = 4 // Model API or network errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Generation errors (exit 4)
	if errors.Is(err, ErrGenerationFailed) ||
		errors.Is(err, llm.ErrRequest) ||
		errors.Is(err, llm.ErrStatus) ||
		errors.Is(err, llm.ErrEmptyResponse) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitGeneration
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidWorkers) ||
		errors.Is(err, dateutil.ErrInvalidPattern) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, logger.ErrInvalidLevel) ||
		errors.Is(err, llm.ErrMissingAPIKey) ||
		errors.Is(err, llm.ErrInvalidBaseURL) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrSampleNotFound) ||
		errors.Is(err, assets.ErrCatalogParse) ||
		errors.Is(err, assets.ErrIncompletePromptSet) ||
		errors.Is(err, ideagen.ErrInvalidMaxChunkLength) ||
		errors.Is(err, ideagen.ErrInvalidReportFormat) ||
		errors.Is(err, ideagen.ErrEmptyNiche) ||
		errors.Is(err, ideagen.ErrEmptyBudget) ||
		errors.Is(err, ideagen.ErrEmptyMarket) ||
		errors.Is(err, ideagen.ErrInvalidIdeasCount) {
		return ExitUsage
	}

	return ExitGeneral
}
