package pipeline

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSegmenter_Split(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		max      int
		input    string
		expected []string
	}{
		{
			name:     "fits in one chunk",
			max:      100,
			input:    "short text",
			expected: []string{"short text"},
		},
		{
			name:     "empty input",
			max:      10,
			input:    "",
			expected: []string{""},
		},
		{
			name:     "prefers newline",
			max:      10,
			input:    "aaaa bbbb\ncccc dddd",
			expected: []string{"aaaa bbbb", "cccc dddd"},
		},
		{
			name:     "falls back to space",
			max:      10,
			input:    "aaaa bbbb cccc",
			expected: []string{"aaaa bbbb", "cccc"},
		},
		{
			name:     "oversized word emitted whole",
			max:      5,
			input:    "aaaaaaaaaaaa bb",
			expected: []string{"aaaaaaaaaaaa", "bb"},
		},
		{
			name:     "never cuts inside a tag pair",
			max:      10,
			input:    "<b>aa bb cc dd</b> ee",
			expected: []string{"<b>aa bb cc dd</b>", "ee"},
		},
		{
			name:     "cuts before a tag pair",
			max:      12,
			input:    "xx <b>aa bb cc</b>",
			expected: []string{"xx", "<b>aa bb cc</b>"},
		},
		{
			name:     "counts runes not bytes",
			max:      5,
			input:    "абвгд ежз",
			expected: []string{"абвгд", "ежз"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NewSegmenter(tt.max).Chunks(tt.input)
			if strings.Join(got, "\x00") != strings.Join(tt.expected, "\x00") {
				t.Errorf("Chunks(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSegmenter_OversizedWord(t *testing.T) {
	t.Parallel()

	word := strings.Repeat("a", 5000)
	got := NewSegmenter(4000).Chunks(word)

	if len(got) != 1 {
		t.Fatalf("got %d chunks, want 1", len(got))
	}
	if utf8.RuneCountInString(got[0]) != 5000 {
		t.Errorf("chunk length = %d, want 5000", utf8.RuneCountInString(got[0]))
	}
}

func TestSegmenter_DefaultLength(t *testing.T) {
	t.Parallel()

	if got := NewSegmenter(0).MaxLength(); got != DefaultMaxChunkLength {
		t.Errorf("NewSegmenter(0).MaxLength() = %d, want %d", got, DefaultMaxChunkLength)
	}
	if got := NewSegmenter(-3).MaxLength(); got != DefaultMaxChunkLength {
		t.Errorf("NewSegmenter(-3).MaxLength() = %d, want %d", got, DefaultMaxChunkLength)
	}
}

// longReport builds rendered HTML with many short tag pairs and paragraphs.
func longReport(paragraphs int) string {
	var b strings.Builder
	for i := 0; i < paragraphs; i++ {
		fmt.Fprintf(&b, "<b>Идея %d</b>\n• Описание: сервис номер %d для <i>малого</i> бизнеса\n", i, i)
		fmt.Fprintf(&b, "<pre>line one\nline two %d</pre>\n\n", i)
	}
	return strings.TrimSpace(b.String())
}

func TestSegmenter_Properties(t *testing.T) {
	t.Parallel()

	input := longReport(80)
	for _, max := range []int{40, 120, 500, 4000} {
		t.Run(fmt.Sprintf("max=%d", max), func(t *testing.T) {
			t.Parallel()

			segments := NewSegmenter(max).Split(input)

			var rebuilt strings.Builder
			for i, seg := range segments {
				rebuilt.WriteString(seg.Text + seg.Gap)

				if seg.Text == "" {
					t.Errorf("segment %d is empty", i)
				}
				if seg.Text != strings.TrimSpace(seg.Text) {
					t.Errorf("segment %d has surrounding whitespace: %q", i, seg.Text)
				}
				for _, tag := range []string{"b", "i", "pre"} {
					opens := strings.Count(seg.Text, "<"+tag+">")
					closes := strings.Count(seg.Text, "</"+tag+">")
					if opens != closes {
						t.Errorf("segment %d has %d <%s> and %d </%s>: %q", i, opens, tag, closes, tag, seg.Text)
					}
				}
				// A longer segment is only allowed when it is one unsplittable unit.
				if utf8.RuneCountInString(seg.Text) > max && strings.ContainsAny(seg.Text, "\n") && !strings.HasPrefix(seg.Text, "<pre>") {
					t.Errorf("segment %d exceeds %d runes: %q", i, max, seg.Text)
				}
			}
			if rebuilt.String() != input {
				t.Error("concatenating Text+Gap does not reproduce the input")
			}
		})
	}
}

func TestProtectedRanges(t *testing.T) {
	t.Parallel()

	text := `a <b>x</b> <a href="u">y</a> <i>open`
	ranges := protectedRanges(text)

	want := []byteRange{
		{start: 2, end: 10},
		{start: 11, end: 28},
		{start: 29, end: len(text)},
	}
	if len(ranges) != len(want) {
		t.Fatalf("protectedRanges() = %v, want %v", ranges, want)
	}
	for i := range want {
		if ranges[i] != want[i] {
			t.Errorf("range %d = %v, want %v", i, ranges[i], want[i])
		}
	}
}
