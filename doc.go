// Package ideagen turns markdown reports written by a language model into
// chat-ready HTML chunks, and generates such reports on request.
//
// # Quick Start
//
// Render a report into message-sized chunks:
//
//	r := ideagen.NewRenderer(ideagen.WithMaxChunkLength(4000))
//	for _, chunk := range r.Render(report) {
//	    send(chunk)
//	}
//
// Chunks use only the tags a chat client accepts: <b>, <i>, <s>, <code>,
// <pre> and <a href>. Every chunk is valid on its own; no tag is left open
// across a chunk boundary.
//
// # Render Pipeline
//
// A document goes through these stages, in order:
//
//  1. Sanitizing (line endings, invisible and control characters)
//  2. Code extraction (fenced blocks and inline spans become placeholders)
//  3. Markup neutralization (raw HTML reduced to the allowed tags, text escaped)
//  4. Table flattening (pipe tables become bold titles with bullet lists)
//  5. Inline conversion (headers, emphasis, links, bullets)
//  6. Number grouping (12345678 becomes 12 345 678)
//  7. Blank line compression
//  8. Code restoration (escaped code back in place)
//
// and is then split on paragraph, line or word boundaries into chunks no
// longer than the configured budget.
//
// # Generation
//
// Service asks a Generator for a report and renders the answer. Failures
// never surface as empty output: the user gets a rendered error notice.
//
//	client, err := llm.NewClient(llm.Config{APIKey: key}, logger)
//	svc, err := ideagen.NewService(client)
//	res, err := svc.Generate(ctx, ideagen.Request{
//	    Niche:  "fintech",
//	    Budget: "small",
//	    Market: "russia_cis",
//	})
//
// Renderer and Service are safe for concurrent use.
package ideagen
