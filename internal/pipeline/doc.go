// Package pipeline renders model-produced markdown into the restricted HTML
// subset accepted by Telegram-style chat clients.
//
// A render is a fixed sequence of stages over a single Document:
//   - sanitize: line ending normalization and invisible character removal
//   - extract-code: fenced and inline code moved into placeholder tokens
//   - neutralize-markup: raw HTML reduced to the allowed tag set
//   - tables: markdown tables rewritten as titled bullet lists
//   - inline: headers, emphasis, links and list markers
//   - numbers: long digit runs grouped by thousands
//   - compress-blank-lines: at most one blank line in a row
//   - restore-code: placeholders replaced with escaped code markup
//
// The Segmenter then cuts the rendered text into chunks that never split a
// tag pair. Every stage is a pure function of the Document it receives, so
// a Pipeline may be shared between goroutines.
package pipeline
