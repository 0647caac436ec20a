package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-ideagen/internal/config"
)

const envPrefix = "IDEAGEN_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // IDEAGEN_CONFIG: config file name or path
	MaxChunkLength int    // IDEAGEN_MAX_CHUNK_LENGTH: codepoints per chunk
	ReportFormat   string // IDEAGEN_REPORT_FORMAT: detailed or short
	Model          string // IDEAGEN_MODEL: chat model name
	BaseURL        string // IDEAGEN_BASE_URL: OpenAI-compatible endpoint
	Timeout        string // IDEAGEN_TIMEOUT: generation timeout
	Workers        int    // IDEAGEN_WORKERS: parallel render workers
	LogLevel       string // IDEAGEN_LOG_LEVEL: debug, info, warn, error
	AssetPath      string // IDEAGEN_ASSET_PATH: custom asset directory
	APIKey         string // CEREBRAS_API_KEY, falling back to IDEAGEN_API_KEY
}

// knownEnvVars lists valid IDEAGEN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"IDEAGEN_CONFIG":           true,
	"IDEAGEN_MAX_CHUNK_LENGTH": true,
	"IDEAGEN_REPORT_FORMAT":    true,
	"IDEAGEN_MODEL":            true,
	"IDEAGEN_BASE_URL":         true,
	"IDEAGEN_TIMEOUT":          true,
	"IDEAGEN_WORKERS":          true,
	"IDEAGEN_LOG_LEVEL":        true,
	"IDEAGEN_ASSET_PATH":       true,
	"IDEAGEN_API_KEY":          true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid numeric values are ignored, the same as unset ones.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:   getenv("IDEAGEN_CONFIG"),
		ReportFormat: getenv("IDEAGEN_REPORT_FORMAT"),
		Model:        getenv("IDEAGEN_MODEL"),
		BaseURL:      getenv("IDEAGEN_BASE_URL"),
		Timeout:      getenv("IDEAGEN_TIMEOUT"),
		LogLevel:     getenv("IDEAGEN_LOG_LEVEL"),
		AssetPath:    getenv("IDEAGEN_ASSET_PATH"),
		APIKey:       getenv("CEREBRAS_API_KEY"),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = getenv("IDEAGEN_API_KEY")
	}

	if v := getenv("IDEAGEN_MAX_CHUNK_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxChunkLength = n
		}
	}
	if v := getenv("IDEAGEN_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	return cfg
}

// warnUnknownEnvVars prints a warning for IDEAGEN_* variables that are not
// recognized, which usually means a typo.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overwrites config values with the ones set in the
// environment. Flags are merged afterwards, giving
// flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.MaxChunkLength > 0 {
		cfg.Render.MaxChunkLength = env.MaxChunkLength
	}
	if env.ReportFormat != "" {
		cfg.Render.ReportFormat = env.ReportFormat
	}
	if env.Model != "" {
		cfg.LLM.Model = env.Model
	}
	if env.BaseURL != "" {
		cfg.LLM.BaseURL = env.BaseURL
	}
	if env.Timeout != "" {
		cfg.LLM.Timeout = env.Timeout
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
}
