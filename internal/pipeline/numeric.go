package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const minGroupedDigits = 5

// NumericFormatter separates thousands in long integers with a space, so
// "150000" reads as "150 000". Tags, URLs and decimal fractions are left
// alone.
type NumericFormatter struct{}

// Name returns the stage name.
func (NumericFormatter) Name() string { return "numbers" }

// Apply formats digit runs in the text between tags.
func (NumericFormatter) Apply(doc *Document) {
	doc.Text = mapText(doc.Text, FormatNumbers)
}

// FormatNumbers groups every standalone run of five or more ASCII digits.
func FormatNumbers(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if !isDigit(text[i]) {
			b.WriteByte(text[i])
			i++
			continue
		}
		j := i
		for j < len(text) && isDigit(text[j]) {
			j++
		}
		run := text[i:j]
		if len(run) >= minGroupedDigits && standaloneNumber(text, i, j) {
			b.WriteString(groupThousands(run))
		} else {
			b.WriteString(run)
		}
		i = j
	}
	return b.String()
}

// standaloneNumber rejects runs glued to letters, fractional parts such as
// the digits after "3.", character references and digits inside URLs.
func standaloneNumber(text string, start, end int) bool {
	before, _ := utf8.DecodeLastRuneInString(text[:start])
	after, _ := utf8.DecodeRuneInString(text[end:])
	if isWordRune(before) || isWordRune(after) {
		return false
	}
	if start >= 2 && (before == '.' || before == ',') && isDigit(text[start-2]) {
		return false
	}
	if strings.HasSuffix(text[:start], "&#") {
		return false
	}
	return !insideURL(text, start)
}

func groupThousands(run string) string {
	head := len(run) % 3
	var b strings.Builder
	b.Grow(len(run) + len(run)/3)
	b.WriteString(run[:head])
	for i := head; i < len(run); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(run[i : i+3])
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
