package pipeline

import "strings"

// mapText applies fn to the text between tags and copies tags unchanged.
// It relies on every literal '<' having been escaped already, so each '<'
// left in text opens a tag.
func mapText(text string, fn func(string) string) string {
	var b strings.Builder
	b.Grow(len(text))
	for {
		open := strings.IndexByte(text, '<')
		if open < 0 {
			b.WriteString(fn(text))
			return b.String()
		}
		end := strings.IndexByte(text[open:], '>')
		if end < 0 {
			b.WriteString(fn(text))
			return b.String()
		}
		end += open + 1
		b.WriteString(fn(text[:open]))
		b.WriteString(text[open:end])
		text = text[end:]
	}
}
