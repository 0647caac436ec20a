package pipeline

import "strings"

// Pipeline runs the render stages in a fixed order and segments the result.
// It holds no per-render state and is safe for concurrent use.
type Pipeline struct {
	stages    []Stage
	segmenter *Segmenter
}

// New returns a Pipeline whose chunks hold at most maxChunkLength runes.
// Non-positive values select DefaultMaxChunkLength.
func New(maxChunkLength int) *Pipeline {
	return &Pipeline{
		stages:    DefaultStages(),
		segmenter: NewSegmenter(maxChunkLength),
	}
}

// DefaultStages returns the render stages in execution order. Code is
// extracted before anything else can rewrite it and restored last.
func DefaultStages() []Stage {
	return []Stage{
		Sanitizer{},
		CodeSpanExtractor{},
		MarkupNeutralizer{},
		TableTransformer{},
		InlineConverter{},
		NumericFormatter{},
		BlankLineCompressor{},
		CodeSpanRestorer{},
	}
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

// MaxChunkLength returns the chunk budget in runes.
func (p *Pipeline) MaxChunkLength() int {
	return p.segmenter.MaxLength()
}

// Run applies every stage to raw and returns the final Document. The span
// table is kept for callers that report on extracted code.
func (p *Pipeline) Run(raw string) *Document {
	doc := NewDocument(raw)
	for _, stage := range p.stages {
		stage.Apply(doc)
	}
	return doc
}

// Render returns the rendered HTML of raw before segmentation.
func (p *Pipeline) Render(raw string) string {
	return p.Run(raw).Text
}

// Split segments rendered HTML.
func (p *Pipeline) Split(rendered string) []Segment {
	return p.segmenter.Split(rendered)
}

// Chunks segments rendered HTML into chunk texts. The result is never
// empty: blank input yields a single empty chunk.
func (p *Pipeline) Chunks(rendered string) []string {
	if strings.TrimSpace(rendered) == "" {
		return []string{""}
	}
	return p.segmenter.Chunks(rendered)
}

// Process renders raw and returns its chunks.
func (p *Pipeline) Process(raw string) []string {
	return p.Chunks(p.Render(raw))
}
