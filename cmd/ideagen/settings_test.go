package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	ideagen "github.com/alnah/go-ideagen"
	"github.com/alnah/go-ideagen/internal/config"
	"github.com/alnah/go-ideagen/internal/logger"
)

const settingsYAML = `render:
  maxChunkLength: 1000
llm:
  model: file-model
  timeout: 30s
`

func TestLoadSettings_Precedence(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ideagen.yaml")
	if err := os.WriteFile(path, []byte(settingsYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	env := newTestEnv(t, "", map[string]string{
		"IDEAGEN_CONFIG":   path,
		"IDEAGEN_MODEL":    "env-model",
		"IDEAGEN_WORKERS":  "3",
		"CEREBRAS_API_KEY": "csk",
	}, nil)
	out := &outputFlags{maxLength: 500}

	s, err := loadSettings(&commonFlags{}, env.Environment, func(cfg *config.Config) {
		mergeOutputFlags(out, cfg)
	})
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}

	if got := s.cfg.Render.MaxChunkLength; got != 500 {
		t.Errorf("MaxChunkLength = %d, want 500 (flag over file)", got)
	}
	if got := s.cfg.LLM.Model; got != "env-model" {
		t.Errorf("Model = %q, want env-model (env over file)", got)
	}
	if got := s.cfg.LLM.Timeout; got != "30s" {
		t.Errorf("Timeout = %q, want 30s (file over default)", got)
	}
	if got := s.cfg.LLM.MaxTokens; got != config.DefaultConfig().LLM.MaxTokens {
		t.Errorf("MaxTokens = %d, want default", got)
	}
	if s.apiKey != "csk" || s.workers != 3 {
		t.Errorf("apiKey, workers = %q, %d, want csk, 3", s.apiKey, s.workers)
	}

	lc := s.llmConfig()
	if lc.Timeout != 30*time.Second || lc.Model != "env-model" || lc.APIKey != "csk" {
		t.Errorf("llmConfig() = %+v", lc)
	}
}

func TestLoadSettings_FlagBeatsConfigFlag(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, "", map[string]string{"IDEAGEN_CONFIG": "missing-from-env"}, nil)
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := loadSettings(&commonFlags{config: path}, env.Environment, nil)
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if s.cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", s.cfg.Log.Level)
	}
}

func TestLoadSettings_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		vars    map[string]string
		common  commonFlags
		wantErr error
	}{
		{
			name:    "bad timeout from env",
			vars:    map[string]string{"IDEAGEN_TIMEOUT": "soon"},
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "bad base URL from env",
			vars:    map[string]string{"IDEAGEN_BASE_URL": "ftp://x"},
			wantErr: config.ErrInvalidValue,
		},
		{
			name:    "bad log level flag",
			common:  commonFlags{logLevel: "loud"},
			wantErr: logger.ErrInvalidLevel,
		},
		{
			name:    "missing config file",
			common:  commonFlags{config: filepath.Join("no", "such", "file.yaml")},
			wantErr: config.ErrConfigNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, "", tt.vars, nil)
			_, err := loadSettings(&tt.common, env.Environment, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("loadSettings() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level string
		flags commonFlags
		want  log.Level
	}{
		{"configured", "warn", commonFlags{}, log.WarnLevel},
		{"verbose wins", "warn", commonFlags{verbose: true}, log.DebugLevel},
		{"quiet wins", "debug", commonFlags{quiet: true}, log.ErrorLevel},
		{"default", "", commonFlags{}, log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			cfg.Log.Level = tt.level
			l, err := newLogger(io.Discard, cfg, &tt.flags)
			if err != nil {
				t.Fatalf("newLogger() error = %v", err)
			}
			if l.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", l.GetLevel(), tt.want)
			}
		})
	}
}

func TestSettings_RenderOptions(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Render.MaxChunkLength = 321
	cfg.Render.ReportFormat = "SHORT"
	s := &settings{cfg: cfg, logger: logger.Discard()}

	opts, err := s.renderOptions()
	if err != nil {
		t.Fatalf("renderOptions() error = %v", err)
	}
	want := ideagen.RenderOptions{MaxChunkLength: 321, ReportFormat: ideagen.ReportShort}
	if opts != want {
		t.Errorf("renderOptions() = %+v, want %+v", opts, want)
	}

	r, err := s.newRenderer()
	if err != nil {
		t.Fatalf("newRenderer() error = %v", err)
	}
	if r.MaxChunkLength() != 321 {
		t.Errorf("MaxChunkLength() = %d, want 321", r.MaxChunkLength())
	}
}
