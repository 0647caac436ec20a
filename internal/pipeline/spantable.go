package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholder tokens are built from Unicode Private Use Area codepoints.
// The sanitize stage strips the whole reserved block from input, so a token
// can never collide with model output. The index digits live in the same
// block, which keeps tokens invisible to the numeric and emphasis rules.
const (
	TokenStart = "\uE000"
	TokenEnd   = "\uE001"

	tokenDigitBase = 0xE010 // hex digit d is encoded as U+E010+d
)

// reservedLow and reservedHigh bound the codepoints owned by placeholders.
const (
	reservedLow  = 0xE000
	reservedHigh = 0xE01F
)

var tokenPattern = regexp.MustCompile(`\x{E000}([\x{E010}-\x{E01F}]+)\x{E001}`)

// SpanKind tells the restore stage how to render a protected span.
type SpanKind int

const (
	// SpanInline is a single backtick code span.
	SpanInline SpanKind = iota
	// SpanFenced is a fenced code block, optionally tagged with a language.
	SpanFenced
	// SpanRaw is already valid markup restored verbatim.
	SpanRaw
)

// String returns the kind name used in debug logs.
func (k SpanKind) String() string {
	switch k {
	case SpanInline:
		return "inline"
	case SpanFenced:
		return "fenced"
	case SpanRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Span is a region of the document withheld from markup conversion.
type Span struct {
	Kind     SpanKind
	Language string // info string of a fenced block
	Content  string
}

// SpanTable maps placeholder indices to the spans they stand for.
type SpanTable struct {
	spans []Span
}

// NewSpanTable returns an empty table.
func NewSpanTable() *SpanTable {
	return &SpanTable{}
}

// Add stores s and returns the token that now stands for it.
func (t *SpanTable) Add(s Span) string {
	t.spans = append(t.spans, s)
	return Token(len(t.spans) - 1)
}

// Len returns the number of stored spans.
func (t *SpanTable) Len() int {
	return len(t.spans)
}

// Get returns the span at index i.
func (t *SpanTable) Get(i int) (Span, bool) {
	if i < 0 || i >= len(t.spans) {
		return Span{}, false
	}
	return t.spans[i], true
}

// Restore replaces every token in text with render(span). Raw spans may hold
// tokens of spans extracted before them, so replacement repeats until no
// known token is left.
func (t *SpanTable) Restore(text string, render func(Span) string) string {
	for pass := 0; pass <= len(t.spans); pass++ {
		replaced := false
		text = tokenPattern.ReplaceAllStringFunc(text, func(tok string) string {
			idx, ok := tokenIndex(tok)
			if !ok || idx >= len(t.spans) {
				return tok
			}
			replaced = true
			return render(t.spans[idx])
		})
		if !replaced {
			break
		}
	}
	return text
}

// Token returns the placeholder for index i.
func Token(i int) string {
	digits := strconv.FormatInt(int64(i), 16)
	var b strings.Builder
	b.Grow(len(TokenStart) + 3*len(digits) + len(TokenEnd))
	b.WriteString(TokenStart)
	for _, d := range digits {
		b.WriteRune(rune(tokenDigitBase + hexValue(d)))
	}
	b.WriteString(TokenEnd)
	return b.String()
}

// ContainsToken reports whether text still carries a placeholder.
func ContainsToken(text string) bool {
	return tokenPattern.MatchString(text)
}

func tokenIndex(tok string) (int, bool) {
	m := tokenPattern.FindStringSubmatch(tok)
	if m == nil {
		return 0, false
	}
	idx := 0
	for _, r := range m[1] {
		idx = idx*16 + int(r-tokenDigitBase)
	}
	return idx, true
}

func hexValue(r rune) int {
	if r >= 'a' {
		return int(r-'a') + 10
	}
	return int(r - '0')
}
