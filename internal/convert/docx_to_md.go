package convert

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/gerunddev/docbridge/internal/inline"
	"github.com/gerunddev/docbridge/internal/model"
)

// minRuleLength is the number of rule characters a paragraph needs to be
// read as a horizontal rule
const minRuleLength = 10

// lineKind tags an emitted line for blank-line insertion
type lineKind int

const (
	kindText lineKind = iota
	kindHeading
	kindList
	kindRule
	kindQuote
	kindTable
	kindBlank
)

// taggedLine is one emitted line plus the metadata the emission pass needs
type taggedLine struct {
	text   string
	kind   lineKind
	spaced bool
}

// markdownWriter holds the state of a single document-to-markdown pass
type markdownWriter struct {
	lines   []taggedLine
	counter int
}

// DocumentToMarkdown converts a document to markdown text
func DocumentToMarkdown(doc *model.Document) string {
	lines := DocumentToLines(doc)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// DocumentToLines converts a document to markdown lines. Blank lines are
// separators; no two are adjacent and none trail.
func DocumentToLines(doc *model.Document) []string {
	w := &markdownWriter{}
	if doc != nil {
		for _, block := range doc.Blocks {
			switch b := block.(type) {
			case *model.Paragraph:
				w.paragraph(b)
			case *model.Table:
				w.table(b)
			}
		}
	}
	return w.emit()
}

// paragraph classifies a paragraph and records its markdown line
func (w *markdownWriter) paragraph(p *model.Paragraph) {
	switch {
	case p.Style.IsHeading():
		w.counter = 0
		text := strings.TrimSpace(p.Text())
		if text == "" {
			w.blank()
			return
		}
		hashes := strings.Repeat("#", p.Style.HeadingLevel()+1)
		w.add(hashes+" "+text, kindHeading, p.SpaceBefore)

	case p.Style == model.ListBullet:
		indent := ""
		if p.Indent >= 1 {
			indent = "  "
		} else {
			w.counter = 0
		}
		w.add(marked(indent+"-", encodeRuns(p.Runs)), kindList, p.SpaceBefore)

	case p.Style == model.ListNumber:
		if p.Number == 1 {
			w.counter = 0
		}
		w.counter++
		w.add(marked(strconv.Itoa(w.counter)+".", encodeRuns(p.Runs)), kindList, p.SpaceBefore)

	case isRule(p.Text()):
		w.counter = 0
		w.add("---", kindRule, p.SpaceBefore)

	case p.Indent >= 1:
		w.counter = 0
		w.add(marked(">", encodeRuns(p.Runs)), kindQuote, p.SpaceBefore)

	default:
		w.counter = 0
		text := encodeRuns(p.Runs)
		if text == "" {
			w.blank()
			return
		}
		w.add(text, kindText, p.SpaceBefore)
	}
}

// table renders a table block surrounded by blank lines
func (w *markdownWriter) table(t *model.Table) {
	w.counter = 0
	if len(t.Rows) == 0 {
		return
	}

	header := t.Header()
	widths := make([]int, len(header))
	headerCells := make([]string, len(header))
	for i, cell := range header {
		headerCells[i] = strings.TrimSpace(cell.Text())
		widths[i] = max(runewidth.StringWidth(headerCells[i]), 3)
		headerCells[i] = runewidth.FillRight(headerCells[i], widths[i])
	}

	separator := make([]string, len(widths))
	for i, width := range widths {
		separator[i] = strings.Repeat("-", width)
	}

	w.blank()
	w.add(tableRow(headerCells), kindTable, false)
	w.add(tableRow(separator), kindTable, false)

	for _, row := range t.Rows[1:] {
		cells := make([]string, 0, max(len(row), len(header)))
		for _, cell := range row {
			cells = append(cells, encodeRuns(cell.Runs))
		}
		for len(cells) < len(header) {
			cells = append(cells, "")
		}
		w.add(tableRow(cells), kindTable, false)
	}
	w.blank()
}

func (w *markdownWriter) add(text string, kind lineKind, spaced bool) {
	w.lines = append(w.lines, taggedLine{text: text, kind: kind, spaced: spaced})
}

func (w *markdownWriter) blank() {
	w.lines = append(w.lines, taggedLine{kind: kindBlank})
}

// emit applies the blank-line rules and normalizes separators
func (w *markdownWriter) emit() []string {
	var out []string
	lastBlank := func() bool { return len(out) == 0 || out[len(out)-1] == "" }

	for i, line := range w.lines {
		if line.kind == kindBlank {
			out = append(out, "")
			continue
		}

		if line.spaced && !lastBlank() {
			out = append(out, "")
		}
		out = append(out, line.text)

		if line.kind == kindHeading || line.kind == kindRule {
			if next, ok := w.nextContent(i); ok && next.kind != kindHeading && next.kind != kindRule {
				out = append(out, "")
			}
		}
	}

	return collapseBlankLines(out)
}

// nextContent returns the first non-blank line after index i
func (w *markdownWriter) nextContent(i int) (taggedLine, bool) {
	for _, line := range w.lines[i+1:] {
		if line.kind != kindBlank {
			return line, true
		}
	}
	return taggedLine{}, false
}

// collapseBlankLines squeezes runs of blank lines to one and drops
// leading and trailing blanks
func collapseBlankLines(lines []string) []string {
	var out []string
	prevBlank := true
	for _, line := range lines {
		blank := line == ""
		if blank && prevBlank {
			continue
		}
		out = append(out, line)
		prevBlank = blank
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

func encodeRuns(runs []model.Run) string {
	return strings.TrimSpace(inline.Encode(model.MergeRuns(runs)))
}

// marked joins a line marker and its text, leaving no trailing space on
// empty items
func marked(marker, text string) string {
	if text == "" {
		return marker
	}
	return marker + " " + text
}

func tableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// isRule reports whether text is a long run of dash-like characters
func isRule(text string) bool {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < minRuleLength {
		return false
	}
	for _, r := range text {
		switch r {
		case '-', '—', '─':
		default:
			return false
		}
	}
	return true
}
