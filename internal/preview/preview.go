// Package preview renders a debugging page that puts a raw markdown
// report, as a full CommonMark renderer sees it, next to the chat chunks
// produced for it.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates markdown conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Style is the chroma style used for code blocks.
const Style = "github"

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 0; display: flex; gap: 2rem; padding: 1rem; }
section { flex: 1; min-width: 0; }
.chunk { white-space: pre-wrap; border: 1px solid #ccc; border-radius: 6px; padding: .75rem; margin-bottom: 1rem; }
.chunk header { font-size: .8rem; color: #666; margin-bottom: .5rem; }
%s</style>
</head>
<body>
<section class="markdown">
%s
</section>
<section class="chunks">
%s</section>
</body>
</html>`

// Converter renders markdown with GitHub Flavored Markdown and highlighted
// code blocks.
type Converter struct {
	md  goldmark.Markdown
	css string
}

// NewConverter creates a Converter.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(Style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
		),
	)
	return &Converter{md: md, css: highlightCSS()}
}

// highlightCSS returns the stylesheet for chroma's class names.
func highlightCSS() string {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(Style)); err != nil {
		return ""
	}
	return buf.String()
}

// ToHTML converts markdown to an HTML fragment. Goldmark has no context
// support, so conversion runs in a goroutine and the caller stops waiting
// when ctx is done.
func (c *Converter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Page renders a standalone HTML page with the markdown on the left and
// one box per chunk on the right. Chunks are inserted as is: they are
// already restricted, escaped markup.
func (c *Converter) Page(ctx context.Context, title, markdown string, chunks []string) (string, error) {
	body, err := c.ToHTML(ctx, markdown)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, chunk := range chunks {
		fmt.Fprintf(&sb, "<div class=\"chunk\"><header>%d/%d &middot; %d chars</header>%s</div>\n",
			i+1, len(chunks), len([]rune(chunk)), chunk)
	}

	return fmt.Sprintf(pageTemplate, html.EscapeString(title), c.css, body, sb.String()), nil
}
