package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-ideagen/internal/config"
)

func getenvFrom(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("all variables", func(t *testing.T) {
		t.Parallel()

		cfg := loadEnvConfig(getenvFrom(map[string]string{
			"IDEAGEN_CONFIG":           "/etc/ideagen.yaml",
			"IDEAGEN_MAX_CHUNK_LENGTH": "2000",
			"IDEAGEN_REPORT_FORMAT":    "short",
			"IDEAGEN_MODEL":            "llama",
			"IDEAGEN_BASE_URL":         "http://localhost:8080/v1",
			"IDEAGEN_TIMEOUT":          "2m",
			"IDEAGEN_WORKERS":          "3",
			"IDEAGEN_LOG_LEVEL":        "debug",
			"IDEAGEN_ASSET_PATH":       "/assets",
			"CEREBRAS_API_KEY":         "csk-1",
		}))

		want := envConfig{
			ConfigPath:     "/etc/ideagen.yaml",
			MaxChunkLength: 2000,
			ReportFormat:   "short",
			Model:          "llama",
			BaseURL:        "http://localhost:8080/v1",
			Timeout:        "2m",
			Workers:        3,
			LogLevel:       "debug",
			AssetPath:      "/assets",
			APIKey:         "csk-1",
		}
		if *cfg != want {
			t.Errorf("loadEnvConfig() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("API key fallback", func(t *testing.T) {
		t.Parallel()

		cfg := loadEnvConfig(getenvFrom(map[string]string{"IDEAGEN_API_KEY": "fallback"}))
		if cfg.APIKey != "fallback" {
			t.Errorf("APIKey = %q, want fallback", cfg.APIKey)
		}

		cfg = loadEnvConfig(getenvFrom(map[string]string{
			"IDEAGEN_API_KEY":  "fallback",
			"CEREBRAS_API_KEY": "primary",
		}))
		if cfg.APIKey != "primary" {
			t.Errorf("APIKey = %q, want primary", cfg.APIKey)
		}
	})

	t.Run("invalid numbers ignored", func(t *testing.T) {
		t.Parallel()

		for _, v := range []string{"abc", "-1", "0", "1.5"} {
			cfg := loadEnvConfig(getenvFrom(map[string]string{
				"IDEAGEN_MAX_CHUNK_LENGTH": v,
				"IDEAGEN_WORKERS":          v,
			}))
			if cfg.MaxChunkLength != 0 || cfg.Workers != 0 {
				t.Errorf("value %q: MaxChunkLength = %d, Workers = %d, want 0, 0", v, cfg.MaxChunkLength, cfg.Workers)
			}
		}
	})
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"IDEAGEN_MODEL=x",
		"IDEAGEN_MODLE=x",
		"IDEAGEN_WORKERZ",
		"PATH=/usr/bin",
		"CEREBRAS_API_KEY=k",
	})

	got := buf.String()
	for _, want := range []string{"IDEAGEN_MODLE", "IDEAGEN_WORKERZ"} {
		if !strings.Contains(got, "unknown environment variable "+want) {
			t.Errorf("warning for %s missing in %q", want, got)
		}
	}
	for _, unwanted := range []string{"IDEAGEN_MODEL ", "PATH", "CEREBRAS"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("unexpected warning containing %q in %q", unwanted, got)
		}
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("env overrides file values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.LLM.Model = "from-file"

		applyEnvConfig(&envConfig{
			MaxChunkLength: 1000,
			ReportFormat:   "short",
			Model:          "from-env",
			BaseURL:        "http://local/v1",
			Timeout:        "5s",
			LogLevel:       "warn",
			AssetPath:      "/a",
		}, cfg)

		if cfg.Render.MaxChunkLength != 1000 {
			t.Errorf("MaxChunkLength = %d, want 1000", cfg.Render.MaxChunkLength)
		}
		if cfg.Render.ReportFormat != "short" {
			t.Errorf("ReportFormat = %q, want short", cfg.Render.ReportFormat)
		}
		if cfg.LLM.Model != "from-env" {
			t.Errorf("Model = %q, want from-env", cfg.LLM.Model)
		}
		if cfg.LLM.BaseURL != "http://local/v1" {
			t.Errorf("BaseURL = %q, want http://local/v1", cfg.LLM.BaseURL)
		}
		if cfg.LLM.Timeout != "5s" {
			t.Errorf("Timeout = %q, want 5s", cfg.LLM.Timeout)
		}
		if cfg.Log.Level != "warn" {
			t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
		}
		if cfg.Assets.BasePath != "/a" {
			t.Errorf("Assets.BasePath = %q, want /a", cfg.Assets.BasePath)
		}
	})

	t.Run("empty env keeps config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		want := *cfg
		applyEnvConfig(&envConfig{}, cfg)
		if *cfg != want {
			t.Errorf("config changed: %+v, want %+v", *cfg, want)
		}
	})
}
