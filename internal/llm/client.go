package llm

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/alnah/go-ideagen/internal/logger"
)

// Default client settings.
const (
	DefaultBaseURL     = "https://api.cerebras.ai/v1"
	DefaultModel       = "gpt-oss-120b"
	DefaultMaxTokens   = 4000
	DefaultTemperature = 0.7
	DefaultTimeout     = 90 * time.Second
	DefaultMaxRetries  = 2
	DefaultBackoff     = 500 * time.Millisecond
)

const completionsPath = "/chat/completions"

// Config configures a Client. Zero values take the defaults above, except
// MaxRetries where zero disables retrying.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	MaxRetries  uint64
	Backoff     time.Duration
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Backoff <= 0 {
		c.Backoff = DefaultBackoff
	}
	return c
}

// Client calls a chat completion endpoint. Safe for concurrent use.
type Client struct {
	http   *resty.Client
	cfg    Config
	logger *log.Logger
}

// NewClient validates cfg and builds a Client. A nil logger discards output.
func NewClient(cfg Config, l *log.Logger) (*Client, error) {
	cfg = cfg.withDefaults()

	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	if l == nil {
		l = logger.Discard()
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIKey).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: client, cfg: cfg, logger: l}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.cfg.Model }

// Generate sends one system and one user message and returns the text of
// the first choice.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	body := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	requestID := uuid.NewString()
	backoff := retry.WithMaxRetries(c.cfg.MaxRetries, retry.NewExponential(c.cfg.Backoff))

	var text string
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		var err error
		text, err = c.complete(ctx, requestID, body)
		if err == nil {
			return nil
		}
		if !isRetryable(ctx, err) {
			return err
		}
		c.logger.Warn("completion failed, retrying", "request_id", requestID, "attempt", attempt, "err", err)
		return retry.RetryableError(err)
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *Client) complete(ctx context.Context, requestID string, body chatRequest) (string, error) {
	var result chatResponse
	var apiErr errorResponse

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetBody(body).
		SetResult(&result).
		SetError(&apiErr).
		Post(completionsPath)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w: %w", ErrRequest, err)
	}

	c.logger.Debug("completion response",
		"request_id", requestID,
		"status", resp.StatusCode(),
		"duration", time.Since(start).Round(time.Millisecond))

	if resp.IsError() {
		return "", &StatusError{StatusCode: resp.StatusCode(), Message: apiErr.Error.Message}
	}

	if len(result.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := result.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// isRetryable reports whether err is transient. Context errors never are.
func isRetryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Retryable()
	}
	return errors.Is(err, ErrRequest)
}
