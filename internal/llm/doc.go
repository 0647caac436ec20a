// Package llm is a minimal client for OpenAI-compatible chat completion
// endpoints, used to generate idea reports.
//
// Requests are retried with exponential backoff on rate limiting, server
// errors and transport failures. Cancellation of the caller's context stops
// retrying immediately.
package llm
