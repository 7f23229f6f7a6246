package convert

import (
	"regexp"
	"strings"

	"github.com/gerunddev/docbridge/internal/inline"
	"github.com/gerunddev/docbridge/internal/model"
)

// RuleGlyphs is the paragraph text emitted for a markdown horizontal rule
var RuleGlyphs = strings.Repeat("─", 50)

var (
	numberedPattern  = regexp.MustCompile(`^\d+\.(\s|$)`)
	separatorPattern = regexp.MustCompile(`^\|[\s:|]*-[\s\-:|]*\|$`)
)

// markupReader holds the state of a single markdown-to-document pass
type markupReader struct {
	doc         *model.Document
	inTable     bool
	pendingRows [][]string
	sawDivider  bool
	prevBlank   bool
	counter     int
}

// MarkdownToDocument parses markdown text into a document. Each line is
// consumed once; unrecognized syntax becomes a plain paragraph.
func MarkdownToDocument(mdContent string) *model.Document {
	r := &markupReader{doc: &model.Document{}}

	for _, line := range strings.Split(mdContent, "\n") {
		r.line(strings.TrimSuffix(line, "\r"))
	}
	r.flushTable()

	return r.doc
}

// line classifies one markdown line
func (r *markupReader) line(line string) {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		r.flushTable()
		r.prevBlank = true
		r.counter = 0
		return
	}

	if trimmed == "---" {
		r.flushTable()
		r.counter = 0
		r.emit(model.NewParagraph(model.Normal, model.Plain(RuleGlyphs)))
		return
	}

	if level, text, ok := ParseHeading(line); ok {
		r.flushTable()
		r.counter = 0
		p := model.NewParagraph(model.HeadingStyle(level))
		if text != "" {
			p.Runs = []model.Run{model.Plain(text)}
		}
		r.emit(p)
		return
	}

	if strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") && len(trimmed) > 1 {
		r.inTable = true
		// only the line right after the header is a divider
		if len(r.pendingRows) == 1 && !r.sawDivider && separatorPattern.MatchString(trimmed) {
			r.sawDivider = true
		} else {
			r.pendingRows = append(r.pendingRows, splitRow(trimmed))
		}
		r.prevBlank = false
		return
	}
	r.flushTable()

	switch {
	case isNestedBullet(line):
		p := r.textParagraph(model.ListBullet, strings.TrimPrefix(trimmed, "-"))
		p.Indent = 1
		r.emit(p)

	case trimmed == "-" || strings.HasPrefix(trimmed, "- "):
		r.counter = 0
		r.emit(r.textParagraph(model.ListBullet, strings.TrimPrefix(trimmed, "-")))

	case numberedPattern.MatchString(trimmed):
		r.counter++
		p := r.textParagraph(model.ListNumber, numberedPattern.ReplaceAllString(trimmed, ""))
		p.Number = r.counter
		r.emit(p)

	case trimmed == ">" || strings.HasPrefix(trimmed, "> "):
		r.counter = 0
		p := r.textParagraph(model.Normal, strings.TrimPrefix(trimmed, ">"))
		p.Indent = 1
		r.emit(p)

	default:
		r.counter = 0
		r.emit(r.textParagraph(model.Normal, trimmed))
	}
}

// textParagraph builds a paragraph whose runs are decoded inline markup
func (r *markupReader) textParagraph(style model.Style, text string) *model.Paragraph {
	return model.NewParagraph(style, inline.Decode(strings.TrimSpace(text))...)
}

// emit appends a paragraph, carrying the blank-line cue into SpaceBefore
func (r *markupReader) emit(p *model.Paragraph) {
	p.SpaceBefore = r.prevBlank && len(r.doc.Blocks) > 0
	r.prevBlank = false
	r.doc.Append(p)
}

// flushTable materializes the pending rows into a table block
func (r *markupReader) flushTable() {
	if !r.inTable {
		return
	}
	rows := r.pendingRows
	r.inTable = false
	r.pendingRows = nil
	r.sawDivider = false
	r.counter = 0

	if len(rows) == 0 {
		return
	}

	table := &model.Table{Rows: make([][]model.Cell, len(rows))}
	for i, row := range rows {
		cells := make([]model.Cell, len(row))
		for j, text := range row {
			if i == 0 {
				cells[j] = model.TextCell(inline.PlainText(inline.Decode(text)))
			} else {
				cells[j] = model.Cell{Runs: inline.Decode(text)}
			}
		}
		table.Rows[i] = cells
	}
	table.Normalize()
	r.doc.Append(table)
}

// ParseHeading recognizes 1-10 leading hashes followed by a space and
// returns the heading level (0 for a single hash) and the trimmed text
func ParseHeading(line string) (level int, text string, ok bool) {
	hashes := countLeadingChars(line, '#')
	if hashes == 0 || hashes > model.MaxHeadingLevel+1 {
		return 0, "", false
	}
	rest := line[hashes:]
	if !strings.HasPrefix(rest, " ") {
		return 0, "", false
	}
	return hashes - 1, strings.TrimSpace(rest), true
}

// isNestedBullet reports a bullet indented by two or more spaces. A bare
// "-" is an empty item.
func isNestedBullet(line string) bool {
	spaces := countLeadingChars(line, ' ')
	if spaces < 2 {
		return false
	}
	rest := strings.TrimRight(line[spaces:], " \t")
	return rest == "-" || strings.HasPrefix(rest, "- ")
}

// splitRow splits a pipe-delimited row into trimmed cells
func splitRow(row string) []string {
	parts := strings.Split(row, "|")
	if len(parts) < 2 {
		return nil
	}
	parts = parts[1 : len(parts)-1]
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

func countLeadingChars(s string, ch byte) int {
	count := 0
	for count < len(s) && s[count] == ch {
		count++
	}
	return count
}
