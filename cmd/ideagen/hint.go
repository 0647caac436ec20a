package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/alnah/go-ideagen/internal/hints"
	"github.com/alnah/go-ideagen/internal/llm"
)

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var statusErr *llm.StatusError
	switch {
	case errors.Is(err, llm.ErrMissingAPIKey):
		return hints.ForMissingAPIKey()
	case errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusTooManyRequests:
		return hints.ForRateLimit()
	case isTimeout(err):
		return hints.ForTimeout()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// isTimeout reports deadline errors, including net/http client timeouts.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
