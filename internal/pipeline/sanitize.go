package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// invisibleChars are format characters that render as nothing but still
// break word matching and count against the chunk budget.
var invisibleChars = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00AD, Hi: 0x00AD, Stride: 1}, // soft hyphen
		{Lo: 0x180E, Hi: 0x180E, Stride: 1}, // mongolian vowel separator
		{Lo: 0x200B, Hi: 0x200F, Stride: 1}, // zero-width space, joiners, LRM, RLM
		{Lo: 0x202A, Hi: 0x202E, Stride: 1}, // bidi embeddings and overrides
		{Lo: 0x2060, Hi: 0x2064, Stride: 1}, // word joiner, invisible operators
		{Lo: 0x2066, Hi: 0x2069, Stride: 1}, // bidi isolates
		{Lo: 0xFEFF, Hi: 0xFEFF, Stride: 1}, // byte order mark
	},
}

const zeroWidthJoiner = '\u200D'

// Sanitizer normalizes line endings and strips invisible and control
// characters. Visible characters are never altered.
type Sanitizer struct{}

// Name returns the stage name.
func (Sanitizer) Name() string { return "sanitize" }

// Apply sanitizes doc.Text in place.
func (Sanitizer) Apply(doc *Document) {
	doc.Text = Sanitize(doc.Text)
}

// Sanitize returns text with CRLF and CR converted to LF and with control,
// invisible and placeholder-reserved characters removed. A zero-width joiner
// inside an emoji sequence is kept since dropping it changes the glyph.
func Sanitize(text string) string {
	text = crlfOrCR.ReplaceAllString(text, "\n")

	var b strings.Builder
	b.Grow(len(text))
	prev := rune(-1)
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if r == utf8.RuneError && size == 1 {
			continue
		}
		if r == zeroWidthJoiner {
			next, _ := utf8.DecodeRuneInString(text[i:])
			if isPictographic(prev) && isPictographic(next) {
				b.WriteRune(r)
				prev = r
			}
			continue
		}
		if dropRune(r) {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

func dropRune(r rune) bool {
	switch {
	case r == '\n' || r == '\t':
		return false
	case r < 0x20 || r == 0x7F:
		return true
	case r >= 0x80 && r <= 0x9F:
		return true
	case r >= reservedLow && r <= reservedHigh:
		return true
	}
	return unicode.Is(invisibleChars, r)
}

// isPictographic approximates the emoji ranges a joiner may glue together.
func isPictographic(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r == 0xFE0F:
		return true
	}
	return unicode.Is(unicode.So, r)
}
