package pipeline

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// A fence opens at the start of a line. The info string only counts as a
// language when a newline follows it, so "```code```" is a block holding
// "code" rather than an empty block tagged "code". Both delimiters share one
// pattern so the fence that opens first owns everything up to its close.
var (
	fencedBlock = regexp.MustCompile("(?ms)^[ \\t]*(?:" +
		"```(?:([\\w#+.-]+)[ \\t]*\\n)?(.*?)```|" +
		"~~~(?:([\\w#+.-]+)[ \\t]*\\n)?(.*?)~~~)")
	openFence = regexp.MustCompile("(?m)^[ \\t]*(?:```|~~~)(?:([\\w#+.-]+)[ \\t]*\\n)?")

	// Longer delimiters are tried first so a mid-line ```x``` is one span.
	inlineCode = regexp.MustCompile("```([^`\\n]+?)```|``([^`\\n]+?)``|`([^`\\n]+)`")
)

// codeEscaper escapes code the way the neutralizer leaves text: quotes stay
// literal, so rendering twice gives the same markup.
var codeEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// CodeSpanExtractor moves code regions out of the working text so that no
// later stage can rewrite characters inside them.
type CodeSpanExtractor struct{}

// Name returns the stage name.
func (CodeSpanExtractor) Name() string { return "extract-code" }

// Apply replaces fenced blocks, then inline spans, with placeholder tokens.
// A fence left open runs to the end of the document.
func (CodeSpanExtractor) Apply(doc *Document) {
	text := extractFences(doc.Text, doc.Spans)
	text = closeOpenFence(text, doc.Spans)
	doc.Text = extractInline(text, doc.Spans)
}

// extractFences replaces closed fences. Only one delimiter's groups match,
// the other pair is empty.
func extractFences(text string, spans *SpanTable) string {
	return fencedBlock.ReplaceAllStringFunc(text, func(block string) string {
		m := fencedBlock.FindStringSubmatch(block)
		return addFenced(spans, m[1]+m[3], m[2]+m[4])
	})
}

func closeOpenFence(text string, spans *SpanTable) string {
	loc := openFence.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	lang := ""
	if loc[2] >= 0 {
		lang = text[loc[2]:loc[3]]
	}
	return text[:loc[0]] + addFenced(spans, lang, text[loc[1]:])
}

func addFenced(spans *SpanTable, lang, body string) string {
	body = strings.TrimPrefix(body, "\n")
	body = strings.TrimSuffix(body, "\n")
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return spans.Add(Span{Kind: SpanFenced, Language: lang, Content: body})
}

func extractInline(text string, spans *SpanTable) string {
	return inlineCode.ReplaceAllStringFunc(text, func(span string) string {
		m := inlineCode.FindStringSubmatch(span)
		content := m[1] + m[2] + m[3]
		return spans.Add(Span{Kind: SpanInline, Content: content})
	})
}

// CodeSpanRestorer puts code back as escaped markup and trims the result.
type CodeSpanRestorer struct{}

// Name returns the stage name.
func (CodeSpanRestorer) Name() string { return "restore-code" }

// Apply replaces every placeholder token with its rendered span.
func (CodeSpanRestorer) Apply(doc *Document) {
	doc.Text = strings.TrimSpace(doc.Spans.Restore(doc.Text, renderSpan))
}

func renderSpan(s Span) string {
	switch s.Kind {
	case SpanFenced:
		body := codeEscaper.Replace(s.Content)
		if lang := canonicalLanguage(s.Language); lang != "" {
			return `<pre><code class="language-` + lang + `">` + body + "</code></pre>"
		}
		return "<pre>" + body + "</pre>"
	case SpanInline:
		return "<code>" + codeEscaper.Replace(s.Content) + "</code>"
	default:
		return s.Content
	}
}

// canonicalLanguage maps a fence info string to the lexer's primary alias.
// Unknown languages yield "" and the block is rendered without a class.
func canonicalLanguage(tag string) string {
	if tag == "" {
		return ""
	}
	lexer := lexers.Get(tag)
	if lexer == nil {
		return ""
	}
	cfg := lexer.Config()
	if len(cfg.Aliases) > 0 {
		return strings.ToLower(cfg.Aliases[0])
	}
	return strings.ToLower(cfg.Name)
}
