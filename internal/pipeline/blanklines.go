package pipeline

import "regexp"

var multipleBlankLines = regexp.MustCompile(`\n(?:[ \t]*\n){2,}`)

// BlankLineCompressor collapses runs of blank lines to a single one.
type BlankLineCompressor struct{}

// Name returns the stage name.
func (BlankLineCompressor) Name() string { return "compress-blank-lines" }

// Apply compresses doc.Text in place.
func (BlankLineCompressor) Apply(doc *Document) {
	doc.Text = multipleBlankLines.ReplaceAllString(doc.Text, "\n\n")
}
