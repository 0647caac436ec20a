package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	thematicBreak = regexp.MustCompile(`(?m)^[ \t]*(?:[-*_][ \t]*){3,}$\n?`)
	headerLine    = regexp.MustCompile(`(?m)^[ \t]{0,3}(?:#{1,6}[ \t]+(\S.*?)|#{2,6}([^\s#].*?))(?:[ \t]+#+)?[ \t]*$`)
	listBullet    = regexp.MustCompile(`(?m)^([ \t]*)[-*][ \t]+`)
	markdownLink  = regexp.MustCompile(`!?\[([^\[\]\n]+)\]\(([^()\s]+)\)`)

	boldItalic       = regexp.MustCompile(`\*\*\*([^*\n]+?)\*\*\*`)
	boldStar         = regexp.MustCompile(`\*\*([^\n]+?)\*\*`)
	boldUnderscore   = regexp.MustCompile(`__([^\n]+?)__`)
	italicStar       = regexp.MustCompile(`\*([^*\n]+)\*`)
	italicUnderscore = regexp.MustCompile(`_([^_\n]+)_`)
	strikethrough    = regexp.MustCompile(`~~([^~\n]+?)~~`)

	htmlTag = regexp.MustCompile(`<(/?)([a-z]+)[^>]*>`)
)

// emphasisRule converts one delimiter pair to tags. Guarded rules refuse a
// match touching a letter, digit or markup character on the outer side,
// which keeps snake_case names and arithmetic intact.
type emphasisRule struct {
	pattern     *regexp.Regexp
	open, close string
	guarded     bool
}

// Bold runs before italic so "**" is never read as two italic markers.
var emphasisRules = []emphasisRule{
	{pattern: boldItalic, open: "<b><i>", close: "</i></b>"},
	{pattern: boldStar, open: "<b>", close: "</b>"},
	{pattern: boldUnderscore, open: "<b>", close: "</b>", guarded: true},
	{pattern: italicStar, open: "<i>", close: "</i>", guarded: true},
	{pattern: italicUnderscore, open: "<i>", close: "</i>", guarded: true},
	{pattern: strikethrough, open: "<s>", close: "</s>"},
}

// InlineConverter rewrites markdown inline markup as allowed HTML tags.
type InlineConverter struct{}

// Name returns the stage name.
func (InlineConverter) Name() string { return "inline" }

// Apply converts, in order: thematic breaks (removed), headers, emphasis,
// links and list markers.
func (InlineConverter) Apply(doc *Document) {
	text := thematicBreak.ReplaceAllString(doc.Text, "")
	text = headerLine.ReplaceAllStringFunc(text, convertHeader)
	for _, rule := range emphasisRules {
		text = rule.apply(text)
	}
	text = markdownLink.ReplaceAllStringFunc(text, convertLink)
	doc.Text = listBullet.ReplaceAllString(text, "${1}• ")
}

func convertHeader(line string) string {
	m := headerLine.FindStringSubmatch(line)
	return "<b>" + boldMarkers.Replace(m[1]+m[2]) + "</b>"
}

// convertLink copies the target as is, except for quotes, which would end
// the attribute. They are written the way the neutralizer writes them.
func convertLink(link string) string {
	m := markdownLink.FindStringSubmatch(link)
	href := strings.ReplaceAll(m[2], `"`, "&#34;")
	return `<a href="` + href + `">` + m[1] + "</a>"
}

// apply rescans after every rejected candidate one character further on,
// so a rejected opening delimiter can still close a later match.
func (r emphasisRule) apply(text string) string {
	var b strings.Builder
	written, from := 0, 0
	for from < len(text) {
		loc := r.pattern.FindStringSubmatchIndex(text[from:])
		if loc == nil {
			break
		}
		start, end := from+loc[0], from+loc[1]
		inner := text[from+loc[2] : from+loc[3]]
		if !r.accepts(text, start, end, inner) {
			_, size := utf8.DecodeRuneInString(text[start:])
			from = start + size
			continue
		}
		b.WriteString(text[written:start])
		b.WriteString(r.open + inner + r.close)
		written, from = end, end
	}
	if written == 0 {
		return text
	}
	b.WriteString(text[written:])
	return b.String()
}

func (r emphasisRule) accepts(text string, start, end int, inner string) bool {
	first, _ := utf8.DecodeRuneInString(inner)
	last, _ := utf8.DecodeLastRuneInString(inner)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return false
	}
	if insideURL(text, start) || !balancedTags(inner) {
		return false
	}
	if !r.guarded {
		return true
	}
	before, _ := utf8.DecodeLastRuneInString(text[:start])
	after, _ := utf8.DecodeRuneInString(text[end:])
	return !wordAdjacent(before) && !wordAdjacent(after)
}

func wordAdjacent(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("*_~`\\", r)
}

// insideURL reports whether the whitespace-delimited word ending at pos
// looks like a URL or a markdown link target.
func insideURL(text string, pos int) bool {
	word := text[strings.LastIndexAny(text[:pos], " \t\n")+1 : pos]
	return strings.Contains(word, "://") ||
		strings.Contains(word, "www.") ||
		strings.Contains(word, "](")
}

// balancedTags reports whether every tag opened in s is closed in s, in
// order, so wrapping s cannot produce crossed tags.
func balancedTags(s string) bool {
	if !strings.Contains(s, "<") {
		return true
	}
	var stack []string
	for _, m := range htmlTag.FindAllStringSubmatch(s, -1) {
		if m[1] == "" {
			stack = append(stack, m[2])
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1] != m[2] {
			return false
		}
		stack = stack[:len(stack)-1]
	}
	return len(stack) == 0
}
