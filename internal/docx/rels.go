package docx

import (
	"encoding/xml"
	"fmt"
)

// Relationship types
const (
	relTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeCoreProperties = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relTypeNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	relTypeHyperlink      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

// relationshipsXML is a relationships part, used for both reading and
// writing
type relationshipsXML struct {
	XMLName xml.Name          `xml:"Relationships"`
	Xmlns   string            `xml:"xmlns,attr,omitempty"`
	Items   []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// relationships maps relationship ids to their entries
type relationships map[string]relationshipXML

func parseRelationships(data []byte) (relationships, error) {
	var doc relationshipsXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", partDocumentRels, err)
	}
	rels := make(relationships, len(doc.Items))
	for _, item := range doc.Items {
		rels[item.ID] = item
	}
	return rels, nil
}

// hyperlinkTarget returns the URL of a hyperlink relationship
func (r relationships) hyperlinkTarget(id string) (string, bool) {
	rel, ok := r[id]
	if !ok || rel.Type != relTypeHyperlink || rel.Target == "" {
		return "", false
	}
	return rel.Target, true
}

// relationshipBuilder assigns ids while a part is being written
type relationshipBuilder struct {
	items []relationshipXML
	byURL map[string]string
}

func newRelationshipBuilder() *relationshipBuilder {
	return &relationshipBuilder{byURL: make(map[string]string)}
}

func (b *relationshipBuilder) add(relType, target, mode string) string {
	id := fmt.Sprintf("rId%d", len(b.items)+1)
	b.items = append(b.items, relationshipXML{ID: id, Type: relType, Target: target, TargetMode: mode})
	return id
}

// hyperlink returns the id for url, reusing the relationship for repeats
func (b *relationshipBuilder) hyperlink(url string) string {
	if id, ok := b.byURL[url]; ok {
		return id
	}
	id := b.add(relTypeHyperlink, url, "External")
	b.byURL[url] = id
	return id
}

func (b *relationshipBuilder) document() relationshipsXML {
	return relationshipsXML{Xmlns: nsRelationships, Items: b.items}
}
