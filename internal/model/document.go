// Package model holds the document tree shared by the markdown and docx
// translators.
package model

import "strings"

// Document is an ordered sequence of blocks
type Document struct {
	Blocks []Block
}

// Block is a top-level document unit, either a *Paragraph or a *Table
type Block interface {
	isBlock()
}

// Append adds blocks to the end of the document
func (d *Document) Append(blocks ...Block) {
	d.Blocks = append(d.Blocks, blocks...)
}

// Paragraphs returns only the paragraph blocks, in order
func (d *Document) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, b := range d.Blocks {
		if p, ok := b.(*Paragraph); ok {
			out = append(out, p)
		}
	}
	return out
}

// Tables returns only the table blocks, in order
func (d *Document) Tables() []*Table {
	var out []*Table
	for _, b := range d.Blocks {
		if t, ok := b.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// Paragraph is a styled sequence of runs
type Paragraph struct {
	Style Style

	// Indent is the nesting depth. For bullets it is the list level; for
	// non-list paragraphs a value >= 1 marks an indented (quoted) block.
	Indent int

	// SpaceBefore records that a visual blank line preceded the paragraph
	SpaceBefore bool

	// Number is the rendered ordinal of a numbered item, 1 starting a new
	// sequence. Zero when the source did not say.
	Number int

	Runs []Run
}

func (*Paragraph) isBlock() {}

// NewParagraph creates a paragraph with the given style and runs
func NewParagraph(style Style, runs ...Run) *Paragraph {
	return &Paragraph{Style: style, Runs: runs}
}

// Text concatenates the text of all runs
func (p *Paragraph) Text() string {
	return runsText(p.Runs)
}

// IsEmpty reports whether the paragraph carries no text at all
func (p *Paragraph) IsEmpty() bool {
	for _, r := range p.Runs {
		if r.Text != "" {
			return false
		}
	}
	return true
}

// Table is a grid of cells; row 0 is the header
type Table struct {
	Rows [][]Cell
}

func (*Table) isBlock() {}

// Cell is a single table cell
type Cell struct {
	Runs []Run
}

// TextCell creates a cell holding one plain run
func TextCell(text string) Cell {
	if text == "" {
		return Cell{}
	}
	return Cell{Runs: []Run{{Text: text}}}
}

// Text concatenates the text of the cell's runs
func (c Cell) Text() string {
	return runsText(c.Runs)
}

// Width returns the number of header cells
func (t *Table) Width() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// Header returns the header row, or nil for an empty table
func (t *Table) Header() []Cell {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

// Normalize pads every row to the header width with empty cells.
// Rows longer than the header are left alone.
func (t *Table) Normalize() {
	width := t.Width()
	for i, row := range t.Rows {
		for len(row) < width {
			row = append(row, Cell{})
		}
		t.Rows[i] = row
	}
}

// TextRows returns the plain text of every cell
func (t *Table) TextRows() [][]string {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = cell.Text()
		}
	}
	return rows
}

func runsText(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
