package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	minTableRows = 2
	minRowCells  = 2
)

var (
	separatorCell = regexp.MustCompile(`^:?-[-:]*$`)
	boldMarkers   = strings.NewReplacer("**", "", "__", "")

	// indexHeaders are case-folded first-column headers that mark a row
	// number column.
	indexHeaders = map[string]bool{
		"":      true,
		"#":     true,
		"№":     true,
		"id":    true,
		"номер": true,
	}
)

// TableTransformer rewrites pipe tables as one titled bullet list per data
// row. Chat clients have no table markup and monospace grids wrap badly on
// phones.
type TableTransformer struct{}

// Name returns the stage name.
func (TableTransformer) Name() string { return "tables" }

// Apply replaces every run of two or more row lines with its rendering.
// Lines outside a run pass through unchanged.
func (TableTransformer) Apply(doc *Document) {
	lines := strings.Split(doc.Text, "\n")
	out := make([]string, 0, len(lines))
	fold := cases.Fold()

	for i := 0; i < len(lines); {
		j := i
		for j < len(lines) && isTableRow(lines[j]) {
			j++
		}
		switch {
		case j-i >= minTableRows:
			out = append(out, renderTable(lines[i:j], fold))
		case j == i:
			out = append(out, lines[i])
			j++
		default:
			out = append(out, lines[i:j]...)
		}
		i = j
	}
	doc.Text = strings.Join(out, "\n")
}

// isTableRow reports whether line looks like a table row: enclosed in pipes,
// or carrying at least two unescaped pipes. Prose that happens to contain
// two pipes matches too, which is accepted.
func isTableRow(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) > 1 && trimmed[0] == '|' && trimmed[len(trimmed)-1] == '|' {
		return true
	}
	return countPipes(trimmed) >= 2
}

func countPipes(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) && s[i+1] == '|' {
				i++
			}
		case '|':
			n++
		}
	}
	return n
}

// splitCells splits a row on unescaped pipes. Outer pipes are optional and
// "\|" yields a literal pipe inside a cell.
func splitCells(line string) []string {
	s := strings.TrimSpace(line)
	s = strings.TrimPrefix(s, "|")
	if strings.HasSuffix(s, "|") && !strings.HasSuffix(s, `\|`) {
		s = s[:len(s)-1]
	}

	var cells []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && s[i+1] == '|' {
			cur.WriteByte('|')
			i++
			continue
		}
		if c == '|' {
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	return append(cells, strings.TrimSpace(cur.String()))
}

func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		c = strings.ReplaceAll(c, " ", "")
		if c != "" && !separatorCell.MatchString(c) {
			return false
		}
	}
	return strings.Contains(strings.Join(cells, ""), "-")
}

func renderTable(lines []string, fold cases.Caser) string {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		cells := splitCells(line)
		if isSeparatorRow(cells) {
			continue
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return ""
	}

	header := rows[0]
	indexed := indexHeaders[fold.String(header[0])]

	rendered := make([]string, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		if len(cells) < minRowCells {
			continue
		}
		rendered = append(rendered, renderRow(header, cells, indexed))
	}
	if len(rendered) == 0 {
		return ""
	}
	return "\n" + strings.Join(rendered, "\n\n")
}

// renderRow emits a bold title followed by one "• label: value" line per
// non-empty remaining cell. With an index column the title joins the index
// and the second cell.
func renderRow(header, cells []string, indexed bool) string {
	title, first := cells[0], 1
	if indexed {
		title, first = indexTitle(cells[0], cells[1]), 2
	}

	var lines []string
	if title = boldMarkers.Replace(title); title != "" {
		lines = append(lines, "<b>"+title+"</b>")
	}
	for i := first; i < len(cells); i++ {
		value := cells[i]
		if value == "" {
			continue
		}
		label := ""
		if i < len(header) {
			label = boldMarkers.Replace(header[i])
		}
		if label == "" {
			lines = append(lines, "• "+value)
			continue
		}
		lines = append(lines, "• "+label+": "+value)
	}
	return strings.Join(lines, "\n")
}

func indexTitle(index, name string) string {
	switch {
	case index == "":
		return name
	case name == "":
		return index
	}
	last, _ := utf8.DecodeLastRuneInString(index)
	if unicode.IsDigit(last) {
		return index + ". " + name
	}
	return index + " " + name
}
