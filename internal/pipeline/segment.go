package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// DefaultMaxChunkLength leaves headroom under Telegram's 4096 character cap.
const DefaultMaxChunkLength = 4000

// Segment is one chunk plus the whitespace trimmed between it and the next
// chunk. Concatenating Text+Gap over all segments yields the input exactly.
type Segment struct {
	Text string
	Gap  string
}

// Segmenter splits rendered HTML into chunks of at most maxLength runes.
// A cut never lands inside a tag or between a tag and its closing tag. A
// protected unit or unbroken word longer than maxLength is emitted whole.
type Segmenter struct {
	maxLength int
}

// NewSegmenter returns a Segmenter for the given budget. Non-positive values
// select DefaultMaxChunkLength.
func NewSegmenter(maxLength int) *Segmenter {
	if maxLength <= 0 {
		maxLength = DefaultMaxChunkLength
	}
	return &Segmenter{maxLength: maxLength}
}

// MaxLength returns the chunk budget in runes.
func (s *Segmenter) MaxLength() int {
	return s.maxLength
}

// Chunks returns only the chunk texts of Split.
func (s *Segmenter) Chunks(text string) []string {
	segments := s.Split(text)
	chunks := make([]string, len(segments))
	for i, seg := range segments {
		chunks[i] = seg.Text
	}
	return chunks
}

// Split cuts text into segments. Input within the budget, including the
// empty string, comes back as a single segment.
func (s *Segmenter) Split(text string) []Segment {
	if utf8.RuneCountInString(text) <= s.maxLength {
		return []Segment{{Text: text}}
	}

	protected := protectedRanges(text)
	var segments []Segment
	offset := 0
	rest := text
	for utf8.RuneCountInString(rest) > s.maxLength {
		cut := s.cutPoint(rest, offset, protected)
		chunk, next := rest[:cut], rest[cut:]
		body := strings.TrimRightFunc(chunk, unicode.IsSpace)
		remaining := strings.TrimLeftFunc(next, unicode.IsSpace)
		segments = append(segments, Segment{
			Text: body,
			Gap:  chunk[len(body):] + next[:len(next)-len(remaining)],
		})
		offset += len(rest) - len(remaining)
		rest = remaining
	}
	if rest != "" {
		segments = append(segments, Segment{Text: rest})
	}
	return segments
}

// cutPoint returns the byte index in rest at which the current chunk ends.
// Preference: the last newline within budget, then the last space within
// budget, then the first whitespace after an oversized unit.
func (s *Segmenter) cutPoint(rest string, offset int, protected []byteRange) int {
	limit := runeOffset(rest, s.maxLength)
	lead := len(rest) - len(strings.TrimLeftFunc(rest, unicode.IsSpace))
	allowed := func(i int) bool {
		return !insideRange(offset+i, protected)
	}

	for i := limit; i > lead; i-- {
		if rest[i] == '\n' && allowed(i) {
			return i
		}
	}
	for i := limit; i > lead; i-- {
		if (rest[i] == ' ' || rest[i] == '\t') && allowed(i) {
			return i
		}
	}
	from := max(limit, lead) + 1
	for i := from; i < len(rest); i++ {
		if isBoundary(rest[i]) && allowed(i) {
			return i
		}
	}
	return len(rest)
}

func isBoundary(c byte) bool {
	return c == '\n' || c == ' ' || c == '\t'
}

// runeOffset returns the byte index just past the first n runes of s.
func runeOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}

// byteRange is a half-open interval of protected bytes.
type byteRange struct {
	start, end int
}

func insideRange(i int, ranges []byteRange) bool {
	for _, r := range ranges {
		if i > r.start && i < r.end {
			return true
		}
	}
	return false
}

// protectedRanges finds every tag pair in text, from the first byte of the
// opening tag to the last byte of the matching closing tag. A tag left open
// protects everything after it.
func protectedRanges(text string) []byteRange {
	type openTag struct {
		name  string
		start int
	}

	var (
		stack  []openTag
		ranges []byteRange
		offset int
	)
	z := html.NewTokenizer(strings.NewReader(text))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		size := len(z.Raw())
		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			stack = append(stack, openTag{name: string(name), start: offset})
		case html.EndTagToken:
			name, _ := z.TagName()
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].name == string(name) {
					ranges = append(ranges, byteRange{start: stack[i].start, end: offset + size})
					stack = stack[:i]
					break
				}
			}
		case html.SelfClosingTagToken, html.CommentToken, html.DoctypeToken:
			ranges = append(ranges, byteRange{start: offset, end: offset + size})
		}
		offset += size
	}
	for _, open := range stack {
		ranges = append(ranges, byteRange{start: open.start, end: len(text)})
	}
	return ranges
}
