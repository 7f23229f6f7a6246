package docx

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

const (
	contentTypeRels      = "application/vnd.openxmlformats-package.relationships+xml"
	contentTypeXML       = "application/xml"
	contentTypeDocument  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	contentTypeStyles    = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	contentTypeNumbering = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
	contentTypeCore      = "application/vnd.openxmlformats-package.core-properties+xml"
)

type contentTypesXML struct {
	XMLName   xml.Name      `xml:"Types"`
	Xmlns     string        `xml:"xmlns,attr"`
	Defaults  []defaultXML  `xml:"Default"`
	Overrides []overrideXML `xml:"Override"`
}

type defaultXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

func contentTypes() contentTypesXML {
	return contentTypesXML{
		Xmlns: nsContentTypes,
		Defaults: []defaultXML{
			{Extension: "rels", ContentType: contentTypeRels},
			{Extension: "xml", ContentType: contentTypeXML},
		},
		Overrides: []overrideXML{
			{PartName: "/" + partDocument, ContentType: contentTypeDocument},
			{PartName: "/" + partStyles, ContentType: contentTypeStyles},
			{PartName: "/" + partNumbering, ContentType: contentTypeNumbering},
			{PartName: "/" + partCore, ContentType: contentTypeCore},
		},
	}
}

func packageRelationships() relationshipsXML {
	b := newRelationshipBuilder()
	b.add(relTypeOfficeDocument, partDocument, "")
	b.add(relTypeCoreProperties, partCore, "")
	return b.document()
}

// corePart renders the Dublin Core properties
func corePart(opts *Options) []byte {
	var b strings.Builder
	stamp := opts.Modified.UTC().Format(time.RFC3339)

	b.WriteString(xml.Header)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/"` +
		` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	if opts.Title != "" {
		fmt.Fprintf(&b, `<dc:title>%s</dc:title>`, escapeXML(opts.Title))
	}
	if opts.Creator != "" {
		fmt.Fprintf(&b, `<dc:creator>%[1]s</dc:creator><cp:lastModifiedBy>%[1]s</cp:lastModifiedBy>`, escapeXML(opts.Creator))
	}
	fmt.Fprintf(&b, `<dcterms:created xsi:type="dcterms:W3CDTF">%[1]s</dcterms:created>`+
		`<dcterms:modified xsi:type="dcterms:W3CDTF">%[1]s</dcterms:modified>`, stamp)
	b.WriteString(`</cp:coreProperties>`)
	return []byte(b.String())
}
