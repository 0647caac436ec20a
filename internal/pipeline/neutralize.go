package pipeline

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var (
	autolink       = regexp.MustCompile(`<((?:https?|tg)://[^<>\s]+)>`)
	lineBreakTag   = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagAlias       = regexp.MustCompile(`(?i)<(/?)(strong|em|del|strike)\b[^>]*>`)
	rawCodeRegion  = regexp.MustCompile(`(?is)<pre\b[^>]*>.*?</pre>|<code\b[^>]*>.*?</code>`)
	languageClass  = regexp.MustCompile(`^language-[\w#+.-]+$`)
	aliasedTagName = map[string]string{
		"strong": "b",
		"em":     "i",
		"del":    "s",
		"strike": "s",
	}
)

// Quotes need no escaping outside attributes and would otherwise cost five
// characters of chunk budget each.
var quoteEntities = strings.NewReplacer("&#34;", `"`, "&#39;", "'", "&quot;", `"`)

// markupPolicy is read-only after construction and safe for concurrent use.
var markupPolicy = newMarkupPolicy()

// newMarkupPolicy allows exactly the tags a chat client renders.
func newMarkupPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "s", "pre", "code")
	p.AllowAttrs("class").Matching(languageClass).OnElements("code")
	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto", "tg")
	p.RequireParseableURLs(true)
	return p
}

// MarkupNeutralizer reduces raw HTML in model output to the allowed tag set.
// Disallowed tags are dropped with their text kept, and stray '<', '>' and
// '&' become entities. Allowed tags that are never closed, or closed without
// being opened, are dropped. Surviving pre and code regions are protected
// like extracted code.
type MarkupNeutralizer struct{}

// Name returns the stage name.
func (MarkupNeutralizer) Name() string { return "neutralize-markup" }

// Apply neutralizes doc.Text in place.
func (MarkupNeutralizer) Apply(doc *Document) {
	text := autolink.ReplaceAllString(doc.Text, "$1")
	text = lineBreakTag.ReplaceAllString(text, " ")
	text = tagAlias.ReplaceAllStringFunc(text, renameTag)
	text = mapText(markupPolicy.Sanitize(text), quoteEntities.Replace)
	text = balanceTags(text)
	doc.Text = rawCodeRegion.ReplaceAllStringFunc(text, func(region string) string {
		return doc.Spans.Add(Span{Kind: SpanRaw, Content: region})
	})
}

func renameTag(tag string) string {
	m := tagAlias.FindStringSubmatch(tag)
	return "<" + m[1] + aliasedTagName[strings.ToLower(m[2])] + ">"
}

// balanceTags drops close tags with no matching open tag and open tags that
// are never closed. Tags left open across a properly closed outer tag are
// dropped too, so the result nests cleanly.
func balanceTags(text string) string {
	type pending struct {
		name  string
		index int
	}
	var (
		raws  []string
		drop  []bool
		stack []pending
	)
	z := html.NewTokenizer(strings.NewReader(text))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		raws = append(raws, string(z.Raw()))
		drop = append(drop, false)
		i := len(raws) - 1

		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			stack = append(stack, pending{name: string(name), index: i})
		case html.EndTagToken:
			name, _ := z.TagName()
			k := len(stack) - 1
			for k >= 0 && stack[k].name != string(name) {
				k--
			}
			if k < 0 {
				drop[i] = true
				continue
			}
			for _, inner := range stack[k+1:] {
				drop[inner.index] = true
			}
			stack = stack[:k]
		}
	}
	for _, open := range stack {
		drop[open.index] = true
	}

	var b strings.Builder
	b.Grow(len(text))
	for i, raw := range raws {
		if !drop[i] {
			b.WriteString(raw)
		}
	}
	return b.String()
}
