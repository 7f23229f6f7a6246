package docx

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Numbering ids the writer reserves. Numbered lists get ids above
// bulletNumID, one per sequence, so each restarts at 1.
const (
	bulletAbstractID  = 0
	decimalAbstractID = 1
	bulletNumID       = 1
)

// bulletFormats are numFmt values that render a glyph instead of a counter
var bulletFormats = map[string]bool{
	"bullet": true,
	"none":   true,
}

type numberingXML struct {
	AbstractNums []abstractNumXML `xml:"abstractNum"`
	Nums         []numXML         `xml:"num"`
}

type abstractNumXML struct {
	ID     string     `xml:"abstractNumId,attr"`
	Levels []levelXML `xml:"lvl"`
}

type levelXML struct {
	ILvl   string `xml:"ilvl,attr"`
	NumFmt valXML `xml:"numFmt"`
}

type numXML struct {
	ID            string `xml:"numId,attr"`
	AbstractNumID valXML `xml:"abstractNumId"`
}

// numbering resolves numId/ilvl pairs to list kinds
type numbering struct {
	formats map[string]map[string]string // abstractNumId -> ilvl -> numFmt
	nums    map[string]string            // numId -> abstractNumId
}

func parseNumbering(data []byte) (*numbering, error) {
	var doc numberingXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", partNumbering, err)
	}

	n := &numbering{
		formats: make(map[string]map[string]string, len(doc.AbstractNums)),
		nums:    make(map[string]string, len(doc.Nums)),
	}
	for _, abs := range doc.AbstractNums {
		levels := make(map[string]string, len(abs.Levels))
		for _, lvl := range abs.Levels {
			levels[lvl.ILvl] = lvl.NumFmt.Val
		}
		n.formats[abs.ID] = levels
	}
	for _, num := range doc.Nums {
		n.nums[num.ID] = num.AbstractNumID.Val
	}
	return n, nil
}

// isBullet reports whether the list level renders bullets. Without a
// numbering part every list reads as bulleted.
func (n *numbering) isBullet(numID, ilvl string) bool {
	if n == nil {
		return true
	}
	if ilvl == "" {
		ilvl = "0"
	}
	levels, ok := n.formats[n.nums[numID]]
	if !ok {
		return true
	}
	format, ok := levels[ilvl]
	if !ok {
		return true
	}
	return bulletFormats[format]
}

// numberingPart renders numbering.xml with the bullet definition and one
// decimal instance per numbered sequence
func numberingPart(sequences int) []byte {
	var b strings.Builder

	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<w:numbering xmlns:w="%s">`, nsW)

	fmt.Fprintf(&b, `<w:abstractNum w:abstractNumId="%d"><w:multiLevelType w:val="hybridMultilevel"/>`, bulletAbstractID)
	glyphs := []string{"•", "◦", "▪"}
	for level := 0; level < 9; level++ {
		fmt.Fprintf(&b, `<w:lvl w:ilvl="%d"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="%s"/><w:lvlJc w:val="left"/>`+
			`<w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr></w:lvl>`,
			level, glyphs[level%len(glyphs)], listIndent(level))
	}
	b.WriteString(`</w:abstractNum>`)

	fmt.Fprintf(&b, `<w:abstractNum w:abstractNumId="%d"><w:multiLevelType w:val="hybridMultilevel"/>`, decimalAbstractID)
	for level := 0; level < 9; level++ {
		fmt.Fprintf(&b, `<w:lvl w:ilvl="%d"><w:start w:val="1"/><w:numFmt w:val="decimal"/><w:lvlText w:val="%%%d."/><w:lvlJc w:val="left"/>`+
			`<w:pPr><w:ind w:left="%d" w:hanging="360"/></w:pPr></w:lvl>`,
			level, level+1, listIndent(level))
	}
	b.WriteString(`</w:abstractNum>`)

	fmt.Fprintf(&b, `<w:num w:numId="%d"><w:abstractNumId w:val="%d"/></w:num>`, bulletNumID, bulletAbstractID)
	for i := 0; i < sequences; i++ {
		fmt.Fprintf(&b, `<w:num w:numId="%d"><w:abstractNumId w:val="%d"/>`+
			`<w:lvlOverride w:ilvl="0"><w:startOverride w:val="1"/></w:lvlOverride></w:num>`,
			bulletNumID+1+i, decimalAbstractID)
	}

	b.WriteString(`</w:numbering>`)
	return []byte(b.String())
}

// listIndent returns the left indent in twips for a list level
func listIndent(level int) int {
	return 360 * (level + 1)
}
