package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gerunddev/docbridge/internal/model"
)

// Page geometry in twips: US Letter with one inch margins
const (
	pageWidth   = 12240
	pageHeight  = 15840
	pageMargin  = 1440
	textWidth   = pageWidth - 2*pageMargin
	spaceBefore = 240
)

type wDocument struct {
	XMLName xml.Name `xml:"w:document"`
	W       string   `xml:"xmlns:w,attr"`
	R       string   `xml:"xmlns:r,attr"`
	Body    wBody    `xml:"w:body"`
}

type wBody struct {
	Content []any
	SectPr  wSectPr `xml:"w:sectPr"`
}

type wSectPr struct {
	PgSz  wPageSize   `xml:"w:pgSz"`
	PgMar wPageMargin `xml:"w:pgMar"`
}

type wPageSize struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type wPageMargin struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

type wParagraph struct {
	XMLName xml.Name `xml:"w:p"`
	PPr     *wPPr    `xml:"w:pPr,omitempty"`
	Content []any
}

type wPPr struct {
	PStyle  *wVal     `xml:"w:pStyle,omitempty"`
	NumPr   *wNumPr   `xml:"w:numPr,omitempty"`
	Spacing *wSpacing `xml:"w:spacing,omitempty"`
	Ind     *wInd     `xml:"w:ind,omitempty"`
}

type wVal struct {
	Val string `xml:"w:val,attr"`
}

type wNumPr struct {
	ILvl  wVal `xml:"w:ilvl"`
	NumID wVal `xml:"w:numId"`
}

type wSpacing struct {
	Before int `xml:"w:before,attr"`
}

type wInd struct {
	Left    int `xml:"w:left,attr"`
	Hanging int `xml:"w:hanging,attr,omitempty"`
}

type wRun struct {
	XMLName xml.Name `xml:"w:r"`
	RPr     *wRPr    `xml:"w:rPr,omitempty"`
	Content []any
}

type wRPr struct {
	RStyle *wVal   `xml:"w:rStyle,omitempty"`
	B      *wEmpty `xml:"w:b,omitempty"`
	I      *wEmpty `xml:"w:i,omitempty"`
}

type wEmpty struct{}

type wText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Value   string   `xml:",chardata"`
}

type wTab struct {
	XMLName xml.Name `xml:"w:tab"`
}

type wHyperlink struct {
	XMLName xml.Name `xml:"w:hyperlink"`
	ID      string   `xml:"r:id,attr"`
	History int      `xml:"w:history,attr"`
	Runs    []wRun   `xml:"w:r"`
}

type wTable struct {
	XMLName xml.Name   `xml:"w:tbl"`
	TblPr   wTblPr     `xml:"w:tblPr"`
	Grid    wTableGrid `xml:"w:tblGrid"`
	Rows    []wRow     `xml:"w:tr"`
}

type wTblPr struct {
	Style wVal   `xml:"w:tblStyle"`
	Width wWidth `xml:"w:tblW"`
	Look  wLook  `xml:"w:tblLook"`
}

type wWidth struct {
	W    int    `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

type wLook struct {
	Val      string `xml:"w:val,attr"`
	FirstRow int    `xml:"w:firstRow,attr"`
	NoHBand  int    `xml:"w:noHBand,attr"`
	NoVBand  int    `xml:"w:noVBand,attr"`
}

type wTableGrid struct {
	Cols []wGridCol `xml:"w:gridCol"`
}

type wGridCol struct {
	W int `xml:"w:w,attr"`
}

type wRow struct {
	TrPr  *wTrPr  `xml:"w:trPr,omitempty"`
	Cells []wCell `xml:"w:tc"`
}

type wTrPr struct {
	Header wEmpty `xml:"w:tblHeader"`
}

type wCell struct {
	TcPr       wTcPr        `xml:"w:tcPr"`
	Paragraphs []wParagraph `xml:"w:p"`
}

type wTcPr struct {
	Width wWidth `xml:"w:tcW"`
}

// documentWriter holds per-package state while the body is built
type documentWriter struct {
	rels          *relationshipBuilder
	sequences     int
	currentNumber int
	lastWasList   bool
}

// Write encodes doc as a docx package
func Write(w io.Writer, doc *model.Document, opts ...Option) error {
	options := buildOptions(opts)
	if options.Modified.IsZero() {
		options.Modified = time.Now().UTC()
	}
	if options.Title == "" {
		options.Title = documentTitle(doc)
	}

	dw := &documentWriter{rels: newRelationshipBuilder()}
	dw.rels.add(relTypeStyles, "styles.xml", "")
	dw.rels.add(relTypeNumbering, "numbering.xml", "")

	body, err := dw.document(doc)
	if err != nil {
		return err
	}
	docRels, err := marshalPart(dw.rels.document())
	if err != nil {
		return err
	}
	pkgRels, err := marshalPart(packageRelationships())
	if err != nil {
		return err
	}
	types, err := marshalPart(contentTypes())
	if err != nil {
		return err
	}

	parts := []struct {
		name string
		data []byte
	}{
		{partContentTypes, types},
		{partPackageRels, pkgRels},
		{partDocument, body},
		{partDocumentRels, docRels},
		{partStyles, stylesPart(options)},
		{partNumbering, numberingPart(dw.sequences)},
		{partCore, corePart(options)},
	}

	zw := zip.NewWriter(w)
	for _, part := range parts {
		f, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.name,
			Method:   zip.Deflate,
			Modified: options.Modified,
		})
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", part.name, err)
		}
		if _, err := f.Write(part.data); err != nil {
			return fmt.Errorf("failed to write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize package: %w", err)
	}
	return nil
}

// Marshal encodes doc as an in-memory docx package
func Marshal(doc *model.Document, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (dw *documentWriter) document(doc *model.Document) ([]byte, error) {
	out := wDocument{
		W: nsW,
		R: nsR,
		Body: wBody{
			SectPr: wSectPr{
				PgSz: wPageSize{W: pageWidth, H: pageHeight},
				PgMar: wPageMargin{
					Top: pageMargin, Right: pageMargin, Bottom: pageMargin, Left: pageMargin,
					Header: 720, Footer: 720,
				},
			},
		},
	}

	if doc != nil {
		for _, block := range doc.Blocks {
			switch b := block.(type) {
			case *model.Paragraph:
				out.Body.Content = append(out.Body.Content, dw.paragraph(b))
			case *model.Table:
				dw.lastWasList = false
				out.Body.Content = append(out.Body.Content, dw.table(b), wParagraph{})
			}
		}
	}

	return marshalPart(out)
}

// paragraph encodes one paragraph with its style, list and spacing
// properties
func (dw *documentWriter) paragraph(p *model.Paragraph) wParagraph {
	props := &wPPr{}
	if p.Style != model.Normal {
		props.PStyle = &wVal{Val: p.Style.ID()}
	}

	switch p.Style {
	case model.ListBullet:
		level := min(max(p.Indent, 0), 8)
		props.NumPr = &wNumPr{ILvl: wVal{strconv.Itoa(level)}, NumID: wVal{strconv.Itoa(bulletNumID)}}
		props.Ind = &wInd{Left: listIndent(level), Hanging: 360}
		dw.lastWasList = true
	case model.ListNumber:
		if p.Number == 1 || dw.currentNumber == 0 || (p.Number == 0 && !dw.lastWasList) {
			dw.sequences++
			dw.currentNumber = bulletNumID + dw.sequences
		}
		props.NumPr = &wNumPr{ILvl: wVal{"0"}, NumID: wVal{strconv.Itoa(dw.currentNumber)}}
		dw.lastWasList = true
	default:
		if p.Indent >= 1 && !p.Style.IsHeading() {
			props.Ind = &wInd{Left: 720 * p.Indent}
		}
		dw.lastWasList = false
	}

	if p.SpaceBefore {
		props.Spacing = &wSpacing{Before: spaceBefore}
	}

	para := wParagraph{Content: dw.runs(p.Runs, false)}
	if props.PStyle != nil || props.NumPr != nil || props.Spacing != nil || props.Ind != nil {
		para.PPr = props
	}
	return para
}

// runs encodes runs, grouping consecutive runs that share a URL into one
// hyperlink element
func (dw *documentWriter) runs(runs []model.Run, bold bool) []any {
	var content []any
	runs = model.MergeRuns(runs)

	for i := 0; i < len(runs); {
		r := runs[i]
		if r.URL == "" {
			content = append(content, textRun(r, bold, false))
			i++
			continue
		}

		link := wHyperlink{ID: dw.rels.hyperlink(r.URL), History: 1}
		j := i
		for ; j < len(runs) && runs[j].URL == r.URL; j++ {
			link.Runs = append(link.Runs, textRun(runs[j], bold, true))
		}
		content = append(content, link)
		i = j
	}
	return content
}

// table encodes a table; the first row is the bold header row. The grid
// is as wide as the longest row.
func (dw *documentWriter) table(t *model.Table) wTable {
	width := 1
	for _, row := range t.Rows {
		width = max(width, len(row))
	}
	colWidth := textWidth / width

	tbl := wTable{
		TblPr: wTblPr{
			Style: wVal{"TableGrid"},
			Width: wWidth{W: 5000, Type: "pct"},
			Look:  wLook{Val: "04A0", FirstRow: 1, NoHBand: 0, NoVBand: 1},
		},
	}
	for i := 0; i < width; i++ {
		tbl.Grid.Cols = append(tbl.Grid.Cols, wGridCol{W: colWidth})
	}

	for i, row := range t.Rows {
		wr := wRow{}
		if i == 0 {
			wr.TrPr = &wTrPr{}
		}
		for c := 0; c < width; c++ {
			var cell model.Cell
			if c < len(row) {
				cell = row[c]
			}
			wr.Cells = append(wr.Cells, wCell{
				TcPr:       wTcPr{Width: wWidth{W: colWidth, Type: "dxa"}},
				Paragraphs: []wParagraph{{Content: dw.runs(cell.Runs, i == 0)}},
			})
		}
		tbl.Rows = append(tbl.Rows, wr)
	}
	return tbl
}

// textRun encodes a run, splitting tabs into w:tab elements
func textRun(r model.Run, bold, hyperlink bool) wRun {
	props := &wRPr{}
	if hyperlink {
		props.RStyle = &wVal{Val: "Hyperlink"}
	}
	if bold || r.Format.Has(model.Bold) {
		props.B = &wEmpty{}
	}
	if r.Format.Has(model.Italic) {
		props.I = &wEmpty{}
	}

	run := wRun{}
	if props.RStyle != nil || props.B != nil || props.I != nil {
		run.RPr = props
	}
	for i, piece := range strings.Split(r.Text, "\t") {
		if i > 0 {
			run.Content = append(run.Content, wTab{})
		}
		if piece != "" {
			run.Content = append(run.Content, wText{Space: "preserve", Value: piece})
		}
	}
	return run
}

// documentTitle picks the first Title or heading text for core.xml
func documentTitle(doc *model.Document) string {
	if doc == nil {
		return ""
	}
	for _, p := range doc.Paragraphs() {
		if p.Style.IsHeading() {
			if text := strings.TrimSpace(p.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode part: %w", err)
	}
	return append([]byte(xml.Header), data...), nil
}
