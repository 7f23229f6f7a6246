package convert

import (
	"reflect"
	"testing"

	"github.com/gerunddev/docbridge/internal/model"
)

func paragraphsOf(t *testing.T, doc *model.Document) []*model.Paragraph {
	t.Helper()
	var out []*model.Paragraph
	for i, block := range doc.Blocks {
		p, ok := block.(*model.Paragraph)
		if !ok {
			t.Fatalf("block %d is %T, want *model.Paragraph", i, block)
		}
		out = append(out, p)
	}
	return out
}

func TestMarkdownToDocumentHeadings(t *testing.T) {
	tests := []struct {
		line  string
		style model.Style
		text  string
	}{
		{"# Title", model.Title, "Title"},
		{"## One", model.Heading1, "One"},
		{"### Two", model.Heading2, "Two"},
		{"#### Three", model.Heading3, "Three"},
		{"########## Nine", model.Heading9, "Nine"},
		{"#no space", model.Normal, "#no space"},
		{"########### eleven", model.Normal, "########### eleven"},
		{"## **not bold**", model.Heading1, "**not bold**"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			ps := paragraphsOf(t, MarkdownToDocument(tt.line))
			if len(ps) != 1 {
				t.Fatalf("got %d paragraphs, want 1", len(ps))
			}
			if ps[0].Style != tt.style {
				t.Errorf("Style = %v, want %v", ps[0].Style, tt.style)
			}
			if ps[0].Style.IsHeading() && ps[0].Text() != tt.text {
				t.Errorf("Text() = %q, want %q", ps[0].Text(), tt.text)
			}
		})
	}
}

func TestMarkdownToDocumentNumberingResets(t *testing.T) {
	ps := paragraphsOf(t, MarkdownToDocument("1. first\n1. second\n\n1. third"))
	if len(ps) != 3 {
		t.Fatalf("got %d paragraphs, want 3", len(ps))
	}

	gotNumbers := []int{ps[0].Number, ps[1].Number, ps[2].Number}
	if want := []int{1, 2, 1}; !reflect.DeepEqual(gotNumbers, want) {
		t.Errorf("numbers = %v, want %v", gotNumbers, want)
	}
	gotSpaced := []bool{ps[0].SpaceBefore, ps[1].SpaceBefore, ps[2].SpaceBefore}
	if want := []bool{false, false, true}; !reflect.DeepEqual(gotSpaced, want) {
		t.Errorf("SpaceBefore = %v, want %v", gotSpaced, want)
	}
	for _, p := range ps {
		if p.Style != model.ListNumber {
			t.Errorf("Style = %v, want List Number", p.Style)
		}
	}
}

func TestMarkdownToDocumentNestedBulletKeepsCounter(t *testing.T) {
	ps := paragraphsOf(t, MarkdownToDocument("1. a\n  - sub\n2. b\ntext\n3. c"))
	if len(ps) != 5 {
		t.Fatalf("got %d paragraphs, want 5", len(ps))
	}
	if ps[1].Style != model.ListBullet || ps[1].Indent != 1 {
		t.Errorf("nested bullet = %+v", ps[1])
	}
	if ps[2].Number != 2 {
		t.Errorf("number after nested bullet = %d, want 2", ps[2].Number)
	}
	if ps[4].Number != 1 {
		t.Errorf("number after plain paragraph = %d, want 1", ps[4].Number)
	}
}

func TestMarkdownToDocumentBlocks(t *testing.T) {
	doc := MarkdownToDocument("- top\n  - nested\n> quoted *words*\n---\nplain  \r\n")
	ps := paragraphsOf(t, doc)
	if len(ps) != 5 {
		t.Fatalf("got %d paragraphs, want 5", len(ps))
	}

	tests := []struct {
		style  model.Style
		indent int
		text   string
	}{
		{model.ListBullet, 0, "top"},
		{model.ListBullet, 1, "nested"},
		{model.Normal, 1, "quoted words"},
		{model.Normal, 0, RuleGlyphs},
		{model.Normal, 0, "plain"},
	}
	for i, tt := range tests {
		if ps[i].Style != tt.style || ps[i].Indent != tt.indent || ps[i].Text() != tt.text {
			t.Errorf("paragraph %d = {%v %d %q}, want {%v %d %q}",
				i, ps[i].Style, ps[i].Indent, ps[i].Text(), tt.style, tt.indent, tt.text)
		}
	}
	if last := ps[2].Runs[len(ps[2].Runs)-1]; last.Format != model.Italic {
		t.Errorf("quote emphasis run = %+v, want italic", last)
	}
}

func TestMarkdownToDocumentTable(t *testing.T) {
	doc := MarkdownToDocument("intro\n| **Name** | Age |\n|------|:---:|\n| Ann |\n| *Bo* | 4 | extra |\nafter")
	if len(doc.Blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(doc.Blocks))
	}

	table, ok := doc.Blocks[1].(*model.Table)
	if !ok {
		t.Fatalf("block 1 is %T, want *model.Table", doc.Blocks[1])
	}

	want := [][]string{
		{"Name", "Age"},
		{"Ann", ""},
		{"Bo", "4", "extra"},
	}
	if got := table.TextRows(); !reflect.DeepEqual(got, want) {
		t.Errorf("TextRows() = %v, want %v", got, want)
	}
	if header := table.Rows[0][0].Runs; len(header) != 1 || header[0].Format != 0 {
		t.Errorf("header runs = %+v, want one plain run", header)
	}
	if cell := table.Rows[2][0].Runs; len(cell) != 1 || cell[0].Format != model.Italic {
		t.Errorf("data cell runs = %+v, want one italic run", cell)
	}

	if p, ok := doc.Blocks[2].(*model.Paragraph); !ok || p.Text() != "after" {
		t.Errorf("block 2 = %+v, want paragraph 'after'", doc.Blocks[2])
	}
}

func TestMarkdownToDocumentEmptyItems(t *testing.T) {
	tests := []struct {
		line   string
		style  model.Style
		indent int
	}{
		{"- ", model.ListBullet, 0},
		{"-", model.ListBullet, 0},
		{"  - ", model.ListBullet, 1},
		{"  -", model.ListBullet, 1},
		{"  -  ", model.ListBullet, 1},
		{"1. ", model.ListNumber, 0},
		{"1.", model.ListNumber, 0},
		{">", model.Normal, 1},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			ps := paragraphsOf(t, MarkdownToDocument("- top\n"+tt.line))
			if len(ps) != 2 {
				t.Fatalf("got %d paragraphs, want 2", len(ps))
			}
			p := ps[1]
			if p.Style != tt.style || p.Indent != tt.indent {
				t.Errorf("got {%v %d}, want {%v %d}", p.Style, p.Indent, tt.style, tt.indent)
			}
			if !p.IsEmpty() {
				t.Errorf("Text() = %q, want empty", p.Text())
			}
		})
	}
}

func TestMarkdownToDocumentTableDivider(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "blank header",
			input: "|     |     |\n| --- | --- |\n| **x** | y |",
			want:  [][]string{{"", ""}, {"x", "y"}},
		},
		{
			name:  "header only",
			input: "|     |\n| --- |",
			want:  [][]string{{""}},
		},
		{
			name:  "bare pipes",
			input: "||",
			want:  [][]string{{""}},
		},
		{
			name:  "later dash row is data",
			input: "| a |\n|---|\n| --- |",
			want:  [][]string{{"a"}, {"---"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := MarkdownToDocument(tt.input)
			if len(doc.Blocks) != 1 {
				t.Fatalf("got %d blocks, want 1", len(doc.Blocks))
			}
			table, ok := doc.Blocks[0].(*model.Table)
			if !ok {
				t.Fatalf("block is %T, want *model.Table", doc.Blocks[0])
			}
			if got := table.TextRows(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TextRows() = %v, want %v", got, tt.want)
			}
		})
	}

	table := MarkdownToDocument("|     |     |\n| --- | --- |\n| **x** | y |").Blocks[0].(*model.Table)
	if cell := table.Rows[1][0].Runs; len(cell) != 1 || cell[0].Format != model.Bold {
		t.Errorf("first data cell runs = %+v, want one bold run", cell)
	}
}

func TestMarkdownToDocumentSpaceBefore(t *testing.T) {
	ps := paragraphsOf(t, MarkdownToDocument("\n\nfirst\nsecond\n\n\nthird"))
	got := make([]bool, len(ps))
	for i, p := range ps {
		got[i] = p.SpaceBefore
	}
	if want := []bool{false, false, true}; !reflect.DeepEqual(got, want) {
		t.Errorf("SpaceBefore = %v, want %v", got, want)
	}
}

func TestMarkdownToDocumentEmpty(t *testing.T) {
	if doc := MarkdownToDocument(""); len(doc.Blocks) != 0 {
		t.Errorf("MarkdownToDocument(\"\") has %d blocks, want 0", len(doc.Blocks))
	}
}

func TestParseHeading(t *testing.T) {
	tests := []struct {
		line      string
		wantLevel int
		wantText  string
		wantOK    bool
	}{
		{"# a", 0, "a", true},
		{"### b  ", 2, "b", true},
		{"#", 0, "", false},
		{"#x", 0, "", false},
		{" # indented", 0, "", false},
	}

	for _, tt := range tests {
		level, text, ok := ParseHeading(tt.line)
		if level != tt.wantLevel || text != tt.wantText || ok != tt.wantOK {
			t.Errorf("ParseHeading(%q) = (%d, %q, %v), want (%d, %q, %v)",
				tt.line, level, text, ok, tt.wantLevel, tt.wantText, tt.wantOK)
		}
	}
}
