package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gerunddev/docbridge/internal/model"
)

// quoteIndentTwips is the left indent (0.4in) at which a paragraph counts
// as indented
const quoteIndentTwips = 576

// maxPartSize caps the decompressed size of a single part
const maxPartSize = 256 << 20

// valXML is the ubiquitous w:val attribute holder
type valXML struct {
	Val string `xml:"val,attr"`
}

// onOffXML is a toggle property such as w:b; absent w:val means on
type onOffXML struct {
	Val *string `xml:"val,attr"`
}

func (o *onOffXML) on() bool {
	if o == nil {
		return false
	}
	if o.Val == nil {
		return true
	}
	switch strings.ToLower(*o.Val) {
	case "0", "false", "off", "none":
		return false
	}
	return true
}

type runPropsXML struct {
	Style  valXML    `xml:"rStyle"`
	Bold   *onOffXML `xml:"b"`
	Italic *onOffXML `xml:"i"`
}

type numPrXML struct {
	ILvl  valXML `xml:"ilvl"`
	NumID valXML `xml:"numId"`
}

type paragraphPropsXML struct {
	Style   valXML     `xml:"pStyle"`
	NumPr   *numPrXML  `xml:"numPr"`
	Spacing spacingXML `xml:"spacing"`
	Ind     indXML     `xml:"ind"`
}

type spacingXML struct {
	Before string `xml:"before,attr"`
}

type indXML struct {
	Left  string `xml:"left,attr"`
	Start string `xml:"start,attr"`
}

// paragraphXML keeps runs and hyperlinks in document order
type paragraphXML struct {
	Props   paragraphPropsXML
	Content []contentXML
}

type contentXML struct {
	Run  *runXML
	Link *hyperlinkXML
}

type hyperlinkXML struct {
	ID     string   `xml:"id,attr"`
	Anchor string   `xml:"anchor,attr"`
	Runs   []runXML `xml:"r"`
}

// runXML flattens a run's text children in order
type runXML struct {
	Props runPropsXML
	Text  string
}

type tableXML struct {
	Rows []rowXML `xml:"tr"`
}

type rowXML struct {
	Cells []cellXML `xml:"tc"`
}

type cellXML struct {
	Props      cellPropsXML   `xml:"tcPr"`
	Paragraphs []paragraphXML `xml:"p"`
}

type cellPropsXML struct {
	GridSpan valXML  `xml:"gridSpan"`
	VMerge   *valXML `xml:"vMerge"`
}

// UnmarshalXML decodes w:p children, skipping anything not mapped
func (p *paragraphXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				if err := d.DecodeElement(&p.Props, &t); err != nil {
					return err
				}
			case "r":
				var r runXML
				if err := d.DecodeElement(&r, &t); err != nil {
					return err
				}
				p.Content = append(p.Content, contentXML{Run: &r})
			case "hyperlink":
				var h hyperlinkXML
				if err := d.DecodeElement(&h, &t); err != nil {
					return err
				}
				p.Content = append(p.Content, contentXML{Link: &h})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML decodes w:r children into properties and flat text
func (r *runXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				if err := d.DecodeElement(&r.Props, &t); err != nil {
					return err
				}
				continue
			case "t":
				var s string
				if err := d.DecodeElement(&s, &t); err != nil {
					return err
				}
				text.WriteString(s)
				continue
			case "tab":
				text.WriteString("\t")
			case "br", "cr":
				if attr(t, "type") != "page" {
					text.WriteString(" ")
				}
			case "noBreakHyphen":
				text.WriteString("-")
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			r.Text = text.String()
			return nil
		}
	}
}

func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// reader holds the resolved side parts of one package
type reader struct {
	styles    *styleSheet
	numbering *numbering
	rels      relationships

	// numbered sequence in progress: its w:numId and items seen so far
	seqNumID string
	seqLen   int
}

// Read decodes a docx package into a document
func Read(r io.ReaderAt, size int64, opts ...Option) (*model.Document, error) {
	options := buildOptions(opts)

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[strings.TrimPrefix(f.Name, "/")] = f
	}

	body, ok := files[partDocument]
	if !ok {
		return nil, ErrNotDocx
	}

	rd := &reader{}
	if err := rd.loadSideParts(files, options); err != nil {
		return nil, err
	}

	data, err := readPart(body)
	if err != nil {
		return nil, err
	}
	return rd.document(data)
}

// ReadBytes decodes an in-memory docx package
func ReadBytes(data []byte, opts ...Option) (*model.Document, error) {
	return Read(bytes.NewReader(data), int64(len(data)), opts...)
}

// ReadFile decodes the docx package at path
func ReadFile(path string, opts ...Option) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return Read(f, info.Size(), opts...)
}

func (rd *reader) loadSideParts(files map[string]*zip.File, options *Options) error {
	missing := func(part string) {
		if options.OnPartMissing != nil {
			options.OnPartMissing(part)
		}
	}

	if f, ok := files[partStyles]; ok {
		data, err := readPart(f)
		if err != nil {
			return err
		}
		if rd.styles, err = parseStyles(data); err != nil {
			return err
		}
	} else {
		missing(partStyles)
	}

	if f, ok := files[partNumbering]; ok {
		data, err := readPart(f)
		if err != nil {
			return err
		}
		if rd.numbering, err = parseNumbering(data); err != nil {
			return err
		}
	}

	if f, ok := files[partDocumentRels]; ok {
		data, err := readPart(f)
		if err != nil {
			return err
		}
		if rd.rels, err = parseRelationships(data); err != nil {
			return err
		}
	} else {
		missing(partDocumentRels)
	}

	return nil
}

func readPart(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxPartSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Name, err)
	}
	if len(data) > maxPartSize {
		return nil, fmt.Errorf("part %s exceeds %d bytes", f.Name, maxPartSize)
	}
	return data, nil
}

// document streams the body, keeping paragraphs and tables in order.
// Content controls and custom XML wrappers are descended into.
func (rd *reader) document(data []byte) (*model.Document, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity

	doc := &model.Document{}
	inBody := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", partDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "body":
				inBody = true
			case "sdt", "sdtContent", "customXml":
			case "p":
				if !inBody {
					continue
				}
				var p paragraphXML
				if err := decoder.DecodeElement(&p, &t); err != nil {
					return nil, fmt.Errorf("failed to parse paragraph: %w", err)
				}
				doc.Append(rd.paragraph(&p))
			case "tbl":
				if !inBody {
					continue
				}
				var tbl tableXML
				if err := decoder.DecodeElement(&tbl, &t); err != nil {
					return nil, fmt.Errorf("failed to parse table: %w", err)
				}
				doc.Append(rd.table(&tbl))
			default:
				if inBody {
					if err := decoder.Skip(); err != nil {
						return nil, fmt.Errorf("failed to parse %s: %w", partDocument, err)
					}
				}
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				inBody = false
			}
		}
	}

	return doc, nil
}

// paragraph maps a decoded w:p onto the model
func (rd *reader) paragraph(p *paragraphXML) *model.Paragraph {
	styleID := p.Props.Style.Val
	style, level, _ := rd.styles.paragraphStyle(styleID)

	numPr := p.Props.NumPr
	if numPr == nil {
		numPr = rd.styles.styleNumbering(styleID)
	}
	if numPr != nil && numPr.NumID.Val != "" && numPr.NumID.Val != "0" && !style.IsHeading() {
		ilvl := atoi(numPr.ILvl.Val)
		if !style.IsList() {
			if rd.numbering.isBullet(numPr.NumID.Val, numPr.ILvl.Val) {
				style = model.ListBullet
			} else {
				style = model.ListNumber
			}
		}
		level = max(level, ilvl)
	}

	indent := atoi(p.Props.Ind.Left)
	if indent == 0 {
		indent = atoi(p.Props.Ind.Start)
	}

	para := &model.Paragraph{
		Style:       style,
		SpaceBefore: atoi(p.Props.Spacing.Before) > 0,
		Runs:        model.MergeRuns(rd.runs(p)),
	}
	switch {
	case style.IsList():
		para.Indent = level
		if para.Indent == 0 && indent >= listIndent(1) {
			para.Indent = 1
		}
	case style.IsHeading():
	case indent >= quoteIndentTwips:
		para.Indent = 1
	}

	if style == model.ListNumber {
		para.Number = rd.nextNumber(numPr)
	}
	return para
}

// nextNumber returns the ordinal of a numbered item. A change of w:numId
// starts a new sequence at 1.
func (rd *reader) nextNumber(numPr *numPrXML) int {
	id := ""
	if numPr != nil {
		id = numPr.NumID.Val
	}
	if rd.seqLen == 0 || id != rd.seqNumID {
		rd.seqNumID, rd.seqLen = id, 0
	}
	rd.seqLen++
	return rd.seqLen
}

// runs resolves formatting and hyperlink targets for a paragraph's content
func (rd *reader) runs(p *paragraphXML) []model.Run {
	var runs []model.Run
	for _, item := range p.Content {
		switch {
		case item.Run != nil:
			runs = append(runs, rd.run(item.Run, ""))
		case item.Link != nil:
			url, _ := rd.rels.hyperlinkTarget(item.Link.ID)
			for i := range item.Link.Runs {
				runs = append(runs, rd.run(&item.Link.Runs[i], url))
			}
		}
	}
	return runs
}

func (rd *reader) run(r *runXML, url string) model.Run {
	format := rd.styles.runFormat(r.Props.Style.Val)
	if r.Props.Bold != nil {
		format = setFormat(format, model.Bold, r.Props.Bold.on())
	}
	if r.Props.Italic != nil {
		format = setFormat(format, model.Italic, r.Props.Italic.on())
	}
	return model.Run{Text: r.Text, Format: format, URL: url}
}

// table maps a decoded w:tbl onto the model. Spanned columns are padded
// with empty cells and vertically merged continuations read as empty.
func (rd *reader) table(t *tableXML) *model.Table {
	table := &model.Table{}
	for _, row := range t.Rows {
		var cells []model.Cell
		for i := range row.Cells {
			tc := &row.Cells[i]
			cell := model.Cell{}
			if tc.Props.VMerge == nil || tc.Props.VMerge.Val == "restart" {
				cell.Runs = rd.cellRuns(tc)
			}
			cells = append(cells, cell)
			for span := atoi(tc.Props.GridSpan.Val); span > 1; span-- {
				cells = append(cells, model.Cell{})
			}
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}

// cellRuns joins the non-empty paragraphs of a cell with single spaces
func (rd *reader) cellRuns(tc *cellXML) []model.Run {
	var runs []model.Run
	for i := range tc.Paragraphs {
		pr := model.MergeRuns(rd.runs(&tc.Paragraphs[i]))
		if strings.TrimSpace(runsText(pr)) == "" {
			continue
		}
		if len(runs) > 0 {
			runs = append(runs, model.Plain(" "))
		}
		runs = append(runs, pr...)
	}
	return model.MergeRuns(runs)
}

func runsText(runs []model.Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

func setFormat(f, flag model.Format, on bool) model.Format {
	if on {
		return f | flag
	}
	return f &^ flag
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
