package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	ideagen "github.com/alnah/go-ideagen"
	"github.com/alnah/go-ideagen/internal/assets"
	"github.com/alnah/go-ideagen/internal/config"
	"github.com/alnah/go-ideagen/internal/dateutil"
	"github.com/alnah/go-ideagen/internal/fileutil"
	"github.com/alnah/go-ideagen/internal/hints"
	"github.com/alnah/go-ideagen/internal/llm"
)

// ErrGenerationFailed indicates the model produced no report. The error
// notice was still printed.
var ErrGenerationFailed = errors.New("generation failed")

// runGenerateCmd asks the model for a report and prints its chunks.
func runGenerateCmd(ctx context.Context, args []string, env *Environment) error {
	flags, rest, err := parseGenerateFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, rest[0])
	}
	base, err := reportName(flags.name, env.Now())
	if err != nil {
		return err
	}

	s, err := loadSettings(&flags.common, env, func(cfg *config.Config) {
		mergeOutputFlags(&flags.out, cfg)
		mergeRequestFlags(&flags.request, cfg)
		mergeLLMFlags(&flags.llm, cfg)
	})
	if err != nil {
		return err
	}

	opts, err := s.renderOptions()
	if err != nil {
		return err
	}
	req := ideagen.Request{
		Niche:      flags.request.niche,
		Budget:     flags.request.budget,
		Market:     flags.request.market,
		IdeasCount: s.cfg.Generation.IdeasCount,
		Format:     opts.ReportFormat,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	renderer, err := s.newRenderer()
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		if err := noteFreeText(env.Stderr, s.cfg.Assets.BasePath, req); err != nil {
			return err
		}
	}

	gen, err := env.NewGenerator(s.llmConfig(), s.logger)
	if err != nil {
		return fmt.Errorf("creating model client: %w", err)
	}

	svc, err := ideagen.NewService(gen,
		ideagen.WithRenderer(renderer),
		ideagen.WithAssetPath(s.cfg.Assets.BasePath),
		ideagen.WithServiceLogger(s.logger),
	)
	if err != nil {
		return err
	}

	res, err := svc.Generate(ctx, req)
	if err != nil {
		return err
	}
	s.logger.Debug("report ready", "request_id", res.RequestID, "chunks", len(res.Chunks), "duration", res.Duration)

	if err := emitChunks(res.Chunks, base, &flags.out, flags.common.quiet, env.Stdout); err != nil {
		return err
	}

	if res.Failed {
		if res.IsCanceled() {
			return res.Err
		}
		return fmt.Errorf("%w: %w", ErrGenerationFailed, res.Err)
	}

	if flags.out.preview != "" {
		return writePreview(ctx, flags.out.preview, base, res.Markdown, res.Chunks)
	}
	return nil
}

// reportName expands the --name pattern into a chunk file prefix.
func reportName(pattern string, now time.Time) (string, error) {
	name, err := dateutil.Expand(pattern, now)
	if err != nil {
		return "", fmt.Errorf("--name: %w", err)
	}
	if err := fileutil.ValidateBaseName(name); err != nil {
		return "", fmt.Errorf("%w: --name %q: %v", ErrUsage, name, err)
	}
	return name, nil
}

// emitChunks prints chunks to w, or writes them as base.NN.html files when
// an output directory is set.
func emitChunks(chunks []string, base string, out *outputFlags, quiet bool, w io.Writer) error {
	if out.dir == "" {
		printChunks(w, chunks)
		return nil
	}

	paths, err := writeChunks(out.dir, base, chunks)
	if err != nil {
		return err
	}
	if !quiet {
		for _, p := range paths {
			fmt.Fprintf(w, "Created %s\n", p)
		}
	}
	return nil
}

// noteFreeText tells the user which request values are not catalog keys
// and will be sent as free text.
func noteFreeText(w io.Writer, assetPath string, req ideagen.Request) error {
	resolver, err := assets.NewResolver(assetPath)
	if err != nil {
		return err
	}
	catalog, err := resolver.LoadCatalog()
	if err != nil {
		return err
	}

	values := map[assets.Kind]string{
		assets.KindNiche:  req.Niche,
		assets.KindBudget: req.Budget,
		assets.KindMarket: req.Market,
	}
	for _, kind := range assets.Kinds {
		value := values[kind]
		if _, ok := catalog.Lookup(kind, value); ok {
			continue
		}
		fmt.Fprintf(w, "note: %s %q is not a catalog key, sending it as free text%s\n",
			kind, value, hints.ForUnknownOption(optionKeys(catalog, kind)))
	}
	return nil
}

// mergeRequestFlags copies explicitly set request flags into cfg.
func mergeRequestFlags(f *requestFlags, cfg *config.Config) {
	if f.ideas != 0 {
		cfg.Generation.IdeasCount = f.ideas
	}
	if f.format != "" {
		cfg.Render.ReportFormat = f.format
	}
}

// mergeLLMFlags copies explicitly set model API flags into cfg.
func mergeLLMFlags(f *llmFlags, cfg *config.Config) {
	if f.model != "" {
		cfg.LLM.Model = f.model
	}
	if f.baseURL != "" {
		cfg.LLM.BaseURL = f.baseURL
	}
	if f.timeout != "" {
		cfg.LLM.Timeout = f.timeout
	}
}

// llmConfig converts the llm section of cfg and the API key.
func (s *settings) llmConfig() llm.Config {
	return llm.Config{
		BaseURL:     s.cfg.LLM.BaseURL,
		APIKey:      s.apiKey,
		Model:       s.cfg.LLM.Model,
		MaxTokens:   s.cfg.LLM.MaxTokens,
		Temperature: s.cfg.LLM.Temperature,
		Timeout:     s.cfg.TimeoutDuration(),
		MaxRetries:  uint64(s.cfg.LLM.MaxRetries), // #nosec G115 -- validated to 0..MaxRetriesLimit
	}
}
