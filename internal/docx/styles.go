package docx

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/gerunddev/docbridge/internal/model"
)

// maxStyleDepth bounds basedOn chains
const maxStyleDepth = 16

type stylesXML struct {
	Styles []styleXML `xml:"style"`
}

type styleXML struct {
	Type    string         `xml:"type,attr"`
	StyleID string         `xml:"styleId,attr"`
	Name    valXML         `xml:"name"`
	BasedOn valXML         `xml:"basedOn"`
	PPr     styleParaProps `xml:"pPr"`
	RPr     runPropsXML    `xml:"rPr"`
}

type styleParaProps struct {
	NumPr *numPrXML `xml:"numPr"`
}

// styleSheet resolves style ids from styles.xml
type styleSheet struct {
	byID map[string]styleXML
}

func parseStyles(data []byte) (*styleSheet, error) {
	var doc stylesXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", partStyles, err)
	}
	sheet := &styleSheet{byID: make(map[string]styleXML, len(doc.Styles))}
	for _, s := range doc.Styles {
		sheet.byID[s.StyleID] = s
	}
	return sheet, nil
}

// paragraphStyle maps a style id to a model style. The display name is
// tried first, then the id itself, then each basedOn ancestor.
func (s *styleSheet) paragraphStyle(id string) (model.Style, int, bool) {
	for depth := 0; id != "" && depth < maxStyleDepth; depth++ {
		st, ok := s.lookup(id)
		if ok {
			if style, level, known := model.ParseStyleName(st.Name.Val); known {
				return style, level, true
			}
		}
		if style, level, known := model.ParseStyleName(id); known {
			return style, level, true
		}
		if !ok {
			break
		}
		id = st.BasedOn.Val
	}
	return model.Normal, 0, false
}

// styleNumbering returns numbering inherited from a paragraph style
func (s *styleSheet) styleNumbering(id string) *numPrXML {
	for depth := 0; id != "" && depth < maxStyleDepth; depth++ {
		st, ok := s.lookup(id)
		if !ok {
			return nil
		}
		if st.PPr.NumPr != nil {
			return st.PPr.NumPr
		}
		id = st.BasedOn.Val
	}
	return nil
}

// runFormat returns the bold and italic flags a character style carries
func (s *styleSheet) runFormat(id string) model.Format {
	var bold, italic *bool
	for depth := 0; id != "" && depth < maxStyleDepth; depth++ {
		st, ok := s.lookup(id)
		if !ok {
			break
		}
		if bold == nil && st.RPr.Bold != nil {
			v := st.RPr.Bold.on()
			bold = &v
		}
		if italic == nil && st.RPr.Italic != nil {
			v := st.RPr.Italic.on()
			italic = &v
		}
		id = st.BasedOn.Val
	}

	var f model.Format
	if bold != nil && *bold {
		f |= model.Bold
	}
	if italic != nil && *italic {
		f |= model.Italic
	}
	return f
}

func (s *styleSheet) lookup(id string) (styleXML, bool) {
	if s == nil {
		return styleXML{}, false
	}
	st, ok := s.byID[id]
	return st, ok
}

// stylesPart renders styles.xml with the default font and every style the
// writer references
func stylesPart(opts *Options) []byte {
	var b strings.Builder
	halfPoints := strconv.Itoa(int(opts.FontSize*2 + 0.5))
	font := escapeXML(opts.FontName)

	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<w:styles xmlns:w="%s">`, nsW)
	fmt.Fprintf(&b, `<w:docDefaults><w:rPrDefault><w:rPr>`+
		`<w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:eastAsia="%[1]s" w:cs="%[1]s"/>`+
		`<w:sz w:val="%[2]s"/><w:szCs w:val="%[2]s"/><w:lang w:val="en-US"/>`+
		`</w:rPr></w:rPrDefault><w:pPrDefault><w:pPr>`+
		`<w:spacing w:after="160" w:line="259" w:lineRule="auto"/>`+
		`</w:pPr></w:pPrDefault></w:docDefaults>`, font, halfPoints)

	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)
	b.WriteString(`<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>` +
		`<w:pPr><w:spacing w:after="80" w:line="240" w:lineRule="auto"/><w:contextualSpacing/></w:pPr>` +
		`<w:rPr><w:spacing w:val="-10"/><w:kern w:val="28"/><w:sz w:val="56"/><w:szCs w:val="56"/></w:rPr></w:style>`)

	for level := 1; level <= model.MaxHeadingLevel; level++ {
		size := headingSize(level)
		fmt.Fprintf(&b, `<w:style w:type="paragraph" w:styleId="Heading%[1]d"><w:name w:val="heading %[1]d"/>`+
			`<w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:uiPriority w:val="9"/><w:qFormat/>`+
			`<w:pPr><w:keepNext/><w:keepLines/><w:spacing w:before="%[2]d" w:after="80"/><w:outlineLvl w:val="%[3]d"/></w:pPr>`+
			`<w:rPr><w:b/><w:bCs/><w:color w:val="1F3763"/><w:sz w:val="%[4]d"/><w:szCs w:val="%[4]d"/></w:rPr></w:style>`,
			level, headingSpacing(level), level-1, size)
	}

	b.WriteString(`<w:style w:type="paragraph" w:styleId="ListParagraph"><w:name w:val="List Paragraph"/><w:basedOn w:val="Normal"/><w:uiPriority w:val="34"/><w:qFormat/>` +
		`<w:pPr><w:ind w:left="720"/><w:contextualSpacing/></w:pPr></w:style>`)
	fmt.Fprintf(&b, `<w:style w:type="paragraph" w:styleId="ListBullet"><w:name w:val="List Bullet"/><w:basedOn w:val="Normal"/><w:uiPriority w:val="99"/>`+
		`<w:pPr><w:numPr><w:numId w:val="%d"/></w:numPr><w:contextualSpacing/></w:pPr></w:style>`, bulletNumID)
	b.WriteString(`<w:style w:type="paragraph" w:styleId="ListNumber"><w:name w:val="List Number"/><w:basedOn w:val="Normal"/><w:uiPriority w:val="99"/>` +
		`<w:pPr><w:contextualSpacing/></w:pPr></w:style>`)

	b.WriteString(`<w:style w:type="character" w:default="1" w:styleId="DefaultParagraphFont"><w:name w:val="Default Paragraph Font"/><w:uiPriority w:val="1"/><w:semiHidden/></w:style>`)
	b.WriteString(`<w:style w:type="character" w:styleId="Hyperlink"><w:name w:val="Hyperlink"/><w:basedOn w:val="DefaultParagraphFont"/><w:uiPriority w:val="99"/>` +
		`<w:rPr><w:color w:val="0563C1"/><w:u w:val="single"/></w:rPr></w:style>`)

	b.WriteString(`<w:style w:type="table" w:default="1" w:styleId="TableNormal"><w:name w:val="Normal Table"/><w:semiHidden/>` +
		`<w:tblPr><w:tblInd w:w="0" w:type="dxa"/><w:tblCellMar><w:top w:w="0" w:type="dxa"/><w:left w:w="108" w:type="dxa"/>` +
		`<w:bottom w:w="0" w:type="dxa"/><w:right w:w="108" w:type="dxa"/></w:tblCellMar></w:tblPr></w:style>`)
	b.WriteString(`<w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/><w:basedOn w:val="TableNormal"/><w:uiPriority w:val="39"/>` +
		`<w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr><w:tblPr><w:tblBorders>` +
		`<w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`<w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/>` +
		`</w:tblBorders></w:tblPr></w:style>`)

	b.WriteString(`</w:styles>`)
	return []byte(b.String())
}

// headingSize returns the font size in half points for a heading level
func headingSize(level int) int {
	switch level {
	case 1:
		return 32
	case 2:
		return 28
	case 3:
		return 26
	default:
		return 24
	}
}

func headingSpacing(level int) int {
	if level == 1 {
		return 360
	}
	return 160
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
