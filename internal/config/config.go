// Package config loads and validates the go-ideagen YAML configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-ideagen/internal/fileutil"
	"github.com/alnah/go-ideagen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory name under the user config dir.
const AppDir = "go-ideagen"

// Field length limits.
const (
	MaxURLLength   = 2048
	MaxModelLength = 100
	MaxPathLength  = 4096
	MaxLevelLength = 10
)

// Value ranges.
const (
	MinIdeasCount     = 3
	MaxIdeasCount     = 5
	MaxMaxTokens      = 32768
	MaxTemperature    = 2.0
	MaxRetriesLimit   = 10
	DefaultChunkLimit = 4000
)

// Config holds all configuration for rendering and generation.
type Config struct {
	Render     RenderConfig     `yaml:"render"`
	Generation GenerationConfig `yaml:"generation"`
	LLM        LLMConfig        `yaml:"llm"`
	Log        LogConfig        `yaml:"log"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// RenderConfig defines chunking and report options.
type RenderConfig struct {
	MaxChunkLength int    `yaml:"maxChunkLength"` // codepoints per chunk
	ReportFormat   string `yaml:"reportFormat"`   // "detailed" or "short"
}

// GenerationConfig defines request defaults.
type GenerationConfig struct {
	IdeasCount int `yaml:"ideasCount"` // 3-5
}

// LLMConfig defines the chat completion endpoint.
type LLMConfig struct {
	BaseURL     string  `yaml:"baseURL"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"maxTokens"`
	Temperature float64 `yaml:"temperature"`
	Timeout     string  `yaml:"timeout"` // Go duration, e.g. "90s"
	MaxRetries  int     `yaml:"maxRetries"`
}

// LogConfig defines logger options.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			MaxChunkLength: DefaultChunkLimit,
			ReportFormat:   "detailed",
		},
		Generation: GenerationConfig{IdeasCount: 4},
		LLM: LLMConfig{
			BaseURL:     "https://api.cerebras.ai/v1",
			Model:       "gpt-oss-120b",
			MaxTokens:   4000,
			Temperature: 0.7,
			Timeout:     "90s",
			MaxRetries:  2,
		},
		Log: LogConfig{Level: "info"},
	}
}

// TimeoutDuration parses LLM.Timeout. Call Validate first.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.LLM.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks value ranges and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Render.MaxChunkLength <= 0 {
		return fmt.Errorf("%w: render.maxChunkLength: must be positive, got %d", ErrInvalidValue, c.Render.MaxChunkLength)
	}
	switch strings.ToLower(c.Render.ReportFormat) {
	case "", "detailed", "short":
	default:
		return fmt.Errorf("%w: render.reportFormat: %q (must be detailed or short)", ErrInvalidValue, c.Render.ReportFormat)
	}

	if n := c.Generation.IdeasCount; n != 0 && (n < MinIdeasCount || n > MaxIdeasCount) {
		return fmt.Errorf("%w: generation.ideasCount: must be between %d and %d, got %d",
			ErrInvalidValue, MinIdeasCount, MaxIdeasCount, n)
	}

	if err := validateFieldLength("llm.baseURL", c.LLM.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if c.LLM.BaseURL != "" {
		u, err := url.Parse(c.LLM.BaseURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: llm.baseURL: %q (must be an absolute http or https URL)", ErrInvalidValue, c.LLM.BaseURL)
		}
	}
	if err := validateFieldLength("llm.model", c.LLM.Model, MaxModelLength); err != nil {
		return err
	}
	if c.LLM.MaxTokens < 0 || c.LLM.MaxTokens > MaxMaxTokens {
		return fmt.Errorf("%w: llm.maxTokens: must be between 0 and %d, got %d", ErrInvalidValue, MaxMaxTokens, c.LLM.MaxTokens)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > MaxTemperature {
		return fmt.Errorf("%w: llm.temperature: must be between 0 and %.1f, got %.2f", ErrInvalidValue, MaxTemperature, c.LLM.Temperature)
	}
	if c.LLM.Timeout != "" {
		d, err := time.ParseDuration(c.LLM.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: llm.timeout: %q (use a positive duration like 90s)", ErrInvalidValue, c.LLM.Timeout)
		}
	}
	if c.LLM.MaxRetries < 0 || c.LLM.MaxRetries > MaxRetriesLimit {
		return fmt.Errorf("%w: llm.maxRetries: must be between 0 and %d, got %d", ErrInvalidValue, MaxRetriesLimit, c.LLM.MaxRetries)
	}

	if err := validateFieldLength("log.level", c.Log.Level, MaxLevelLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their defaults. Unknown keys are rejected.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeFile(configPath, cfg, yamlutil.Strict); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
