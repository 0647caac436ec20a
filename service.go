package ideagen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/alnah/go-ideagen/internal/assets"
	"github.com/alnah/go-ideagen/internal/logger"
	"github.com/alnah/go-ideagen/internal/prompt"
)

// Generator produces a markdown report from a system and a user message.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, system, user string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}

// Result is the outcome of one generation request.
type Result struct {
	RequestID string
	Markdown  string        // generator output as received, empty on failure
	Chunks    []string      // rendered report, or the rendered error notice
	Failed    bool          // true when Chunks hold the error notice
	Err       error         // generation error behind the notice
	Duration  time.Duration // generation and rendering time
}

// Service generates reports and renders them into chunks.
type Service struct {
	generator Generator
	renderer  *Renderer
	builder   *prompt.Builder
	catalog   *assets.Catalog
	logger    *log.Logger
}

// serviceConfig collects ServiceOption values.
type serviceConfig struct {
	renderer  *Renderer
	assetPath string
	logger    *log.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceConfig)

// WithRenderer sets the Renderer used for reports and notices.
func WithRenderer(r *Renderer) ServiceOption {
	return func(c *serviceConfig) {
		c.renderer = r
	}
}

// WithAssetPath loads prompts and the catalog from dir, falling back to the
// built-in copies for anything dir does not provide.
func WithAssetPath(dir string) ServiceOption {
	return func(c *serviceConfig) {
		c.assetPath = dir
	}
}

// WithServiceLogger sets the logger for generation records.
func WithServiceLogger(l *log.Logger) ServiceOption {
	return func(c *serviceConfig) {
		c.logger = l
	}
}

// NewService creates a Service around gen.
func NewService(gen Generator, opts ...ServiceOption) (*Service, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}

	var cfg serviceConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	resolver, err := assets.NewResolver(cfg.assetPath)
	if err != nil {
		return nil, err
	}
	builder, err := prompt.NewBuilder(resolver)
	if err != nil {
		return nil, err
	}
	catalog, err := resolver.LoadCatalog()
	if err != nil {
		return nil, err
	}

	if cfg.renderer == nil {
		cfg.renderer = NewRenderer()
	}
	if cfg.logger == nil {
		cfg.logger = logger.Discard()
	}

	return &Service{
		generator: gen,
		renderer:  cfg.renderer,
		builder:   builder,
		catalog:   catalog,
		logger:    cfg.logger,
	}, nil
}

// Renderer returns the Renderer used by the service.
func (s *Service) Renderer() *Renderer {
	return s.renderer
}

// Generate builds the prompts for req, asks the generator for a report and
// renders it. When generation fails the rendered error notice is returned
// instead, with Failed set. The error return is reserved for invalid
// requests and prompt template failures.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req = req.normalized()

	start := time.Now()
	res := &Result{RequestID: uuid.NewString()}
	l := s.logger.With("request_id", res.RequestID)

	system, user, err := s.builder.Build(prompt.Params{
		Niche:      s.catalog.Resolve(assets.KindNiche, req.Niche),
		Budget:     s.catalog.Resolve(assets.KindBudget, req.Budget),
		Market:     s.catalog.Resolve(assets.KindMarket, req.Market),
		IdeasCount: req.IdeasCount,
		Short:      req.Format == ReportShort,
	})
	if err != nil {
		return nil, err
	}

	l.Info("generating report", "niche", req.Niche, "ideas", req.IdeasCount, "format", req.Format)

	text, err := s.callGenerator(ctx, system, user)
	if err != nil {
		l.Error("generation failed", "niche", req.Niche, "err", err)

		notice, noticeErr := s.builder.Notice(err)
		if noticeErr != nil {
			return nil, noticeErr
		}
		res.Failed = true
		res.Err = err
		res.Chunks = s.renderer.Render(notice)
		res.Duration = time.Since(start)
		return res, nil
	}

	res.Markdown = text
	res.Chunks = s.renderer.Render(text)
	res.Duration = time.Since(start)
	l.Info("report ready", "chunks", len(res.Chunks), "duration", res.Duration.Round(time.Millisecond))
	return res, nil
}

// callGenerator runs the generator, turning panics and blank answers into
// errors.
func (s *Service) callGenerator(ctx context.Context, system, user string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrGeneratorPanic, r)
		}
	}()

	text, err = s.generator.Generate(ctx, system, user)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyGeneration
	}
	return text, nil
}

// IsCanceled reports whether a failed Result was caused by the caller's
// context rather than by the generator.
func (r *Result) IsCanceled() bool {
	return r != nil && (errors.Is(r.Err, context.Canceled) || errors.Is(r.Err, context.DeadlineExceeded))
}
