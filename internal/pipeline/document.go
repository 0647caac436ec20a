package pipeline

// Document is the working state of one render. It belongs to a single
// Pipeline.Run call and is never shared.
type Document struct {
	Text  string
	Spans *SpanTable
}

// NewDocument wraps text with an empty placeholder table.
func NewDocument(text string) *Document {
	return &Document{Text: text, Spans: NewSpanTable()}
}

// Stage is one named transformation of a Document.
type Stage interface {
	Name() string
	Apply(doc *Document)
}

// Compile-time interface checks.
var (
	_ Stage = Sanitizer{}
	_ Stage = CodeSpanExtractor{}
	_ Stage = MarkupNeutralizer{}
	_ Stage = TableTransformer{}
	_ Stage = InlineConverter{}
	_ Stage = NumericFormatter{}
	_ Stage = BlankLineCompressor{}
	_ Stage = CodeSpanRestorer{}
)
