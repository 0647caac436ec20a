package ideagen

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-ideagen/internal/pipeline"
)

// Renderer converts markdown reports into chat HTML chunks. It keeps no
// state between calls and is safe for concurrent use.
type Renderer struct {
	pipeline *pipeline.Pipeline
	logger   *log.Logger
}

// rendererConfig collects Option values before the Renderer is built.
type rendererConfig struct {
	maxChunkLength int
	logger         *log.Logger
}

// Option configures a Renderer.
type Option func(*rendererConfig)

// WithMaxChunkLength sets the chunk budget in runes.
// Panics if n is not positive.
func WithMaxChunkLength(n int) Option {
	if n <= 0 {
		panic("ideagen: WithMaxChunkLength must be positive")
	}
	return func(c *rendererConfig) {
		c.maxChunkLength = n
	}
}

// WithLogger makes the Renderer emit one debug record per render.
func WithLogger(l *log.Logger) Option {
	return func(c *rendererConfig) {
		c.logger = l
	}
}

// NewRenderer creates a Renderer. Without options chunks hold at most
// DefaultMaxChunkLength runes.
func NewRenderer(opts ...Option) *Renderer {
	cfg := rendererConfig{maxChunkLength: DefaultMaxChunkLength}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{
		pipeline: pipeline.New(cfg.maxChunkLength),
		logger:   cfg.logger,
	}
}

// NewRendererFromOptions validates o and creates a Renderer from it.
func NewRendererFromOptions(o RenderOptions, opts ...Option) (*Renderer, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	opts = append([]Option{WithMaxChunkLength(o.MaxChunkLength)}, opts...)
	return NewRenderer(opts...), nil
}

// Render returns the chunks of doc in order. The result always has at
// least one element; blank input gives a single empty chunk.
func (r *Renderer) Render(doc string) []string {
	start := time.Now()
	rendered := r.pipeline.Run(doc)
	chunks := r.pipeline.Chunks(rendered.Text)

	if r.logger != nil {
		r.logger.Debug("rendered document",
			"chunks", len(chunks),
			"placeholders", rendered.Spans.Len(),
			"bytes", len(rendered.Text),
			"duration", time.Since(start))
	}
	return chunks
}

// RenderHTML returns the rendered document before it is split.
func (r *Renderer) RenderHTML(doc string) string {
	return r.pipeline.Render(doc)
}

// MaxChunkLength returns the chunk budget in runes.
func (r *Renderer) MaxChunkLength() int {
	return r.pipeline.MaxChunkLength()
}

// Stages returns the render stage names in execution order.
func (r *Renderer) Stages() []string {
	return r.pipeline.Stages()
}
