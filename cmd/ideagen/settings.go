package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	ideagen "github.com/alnah/go-ideagen"
	"github.com/alnah/go-ideagen/internal/config"
	"github.com/alnah/go-ideagen/internal/fileutil"
	"github.com/alnah/go-ideagen/internal/hints"
	"github.com/alnah/go-ideagen/internal/logger"
)

// settings is the effective configuration of one command run.
type settings struct {
	cfg     *config.Config
	apiKey  string
	workers int // from IDEAGEN_WORKERS, 0 if unset
	logger  *log.Logger
}

// loadSettings resolves defaults, config file, environment and flags, in
// increasing priority. merge applies command-specific flags; it may be nil.
func loadSettings(common *commonFlags, env *Environment, merge func(*config.Config)) (*settings, error) {
	getenv := env.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	envCfg := loadEnvConfig(getenv)
	if env.Environ != nil && !common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			hint := ""
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				hint = hints.ForConfigNotFound(config.SearchPaths(name))
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hint)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeCommonFlags(common, cfg)
	if merge != nil {
		merge(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l, err := newLogger(env.Stderr, cfg, common)
	if err != nil {
		return nil, err
	}

	return &settings{
		cfg:     cfg,
		apiKey:  envCfg.APIKey,
		workers: envCfg.Workers,
		logger:  l,
	}, nil
}

// mergeCommonFlags copies explicitly set common flags into cfg.
func mergeCommonFlags(f *commonFlags, cfg *config.Config) {
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logJSON {
		cfg.Log.JSON = true
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
}

// mergeOutputFlags copies explicitly set output flags into cfg.
func mergeOutputFlags(f *outputFlags, cfg *config.Config) {
	if f.maxLength != 0 {
		cfg.Render.MaxChunkLength = f.maxLength
	}
}

// newLogger builds the stderr logger. --verbose forces debug and --quiet
// forces error, over any configured level.
func newLogger(w io.Writer, cfg *config.Config, f *commonFlags) (*log.Logger, error) {
	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	switch {
	case f.verbose:
		level = log.DebugLevel
	case f.quiet:
		level = log.ErrorLevel
	}
	return logger.New(w, logger.Config{Level: level, JSON: cfg.Log.JSON, Prefix: "ideagen"}), nil
}

// renderOptions converts the render section of cfg.
func (s *settings) renderOptions() (ideagen.RenderOptions, error) {
	format, err := ideagen.ParseReportFormat(s.cfg.Render.ReportFormat)
	if err != nil {
		return ideagen.RenderOptions{}, err
	}
	return ideagen.RenderOptions{
		MaxChunkLength: s.cfg.Render.MaxChunkLength,
		ReportFormat:   format,
	}, nil
}

// newRenderer builds a renderer from the effective settings.
func (s *settings) newRenderer() (*ideagen.Renderer, error) {
	opts, err := s.renderOptions()
	if err != nil {
		return nil, err
	}
	return ideagen.NewRendererFromOptions(opts, ideagen.WithLogger(s.logger))
}
