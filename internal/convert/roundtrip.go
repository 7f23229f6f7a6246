package convert

import (
	"fmt"

	"github.com/gerunddev/docbridge/internal/docx"
)

// RoundTrip converts markdown to a docx package and back, returning the
// markdown image of the original. Differences between the two show what
// the conversion cannot preserve.
func RoundTrip(mdContent string, opts ...docx.Option) (string, error) {
	data, err := docx.Marshal(MarkdownToDocument(mdContent), opts...)
	if err != nil {
		return "", fmt.Errorf("failed to write docx: %w", err)
	}

	doc, err := docx.ReadBytes(data, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to read docx: %w", err)
	}

	return DocumentToMarkdown(doc), nil
}

// DocxToMarkdown reads a docx package and converts it to markdown
func DocxToMarkdown(data []byte, opts ...docx.Option) (string, error) {
	doc, err := docx.ReadBytes(data, opts...)
	if err != nil {
		return "", err
	}
	return DocumentToMarkdown(doc), nil
}

// MarkdownToDocx converts markdown to an in-memory docx package
func MarkdownToDocx(mdContent string, opts ...docx.Option) ([]byte, error) {
	return docx.Marshal(MarkdownToDocument(mdContent), opts...)
}
