package llm

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for client construction and generation.
var (
	// ErrMissingAPIKey indicates no API key was configured.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidBaseURL indicates the endpoint URL is not absolute http(s).
	ErrInvalidBaseURL = errors.New("invalid base URL")

	// ErrRequest indicates the request could not be sent or its response read.
	ErrRequest = errors.New("request failed")

	// ErrStatus indicates the endpoint answered with a non-2xx status.
	ErrStatus = errors.New("unexpected status")

	// ErrEmptyResponse indicates the completion carried no text.
	ErrEmptyResponse = errors.New("empty completion")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %d %s", ErrStatus, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s: %d: %s", ErrStatus, e.StatusCode, e.Message)
}

// Unwrap lets errors.Is match ErrStatus.
func (e *StatusError) Unwrap() error { return ErrStatus }

// Retryable reports whether the status is worth retrying.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode == http.StatusRequestTimeout ||
		e.StatusCode >= http.StatusInternalServerError
}
