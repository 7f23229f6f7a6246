// Package docx reads and writes WordprocessingML (.docx) packages.
//
// Only the structure docbridge maps to markdown is read: paragraphs with
// their style, numbering, indentation and spacing, runs with bold, italic
// and hyperlink targets, and tables. Everything else in the package is
// ignored. The writer produces a self-contained package with its own
// styles and numbering definitions.
package docx

import (
	"errors"
	"time"
)

// Part names inside the package
const (
	partContentTypes = "[Content_Types].xml"
	partPackageRels  = "_rels/.rels"
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
	partStyles       = "word/styles.xml"
	partNumbering    = "word/numbering.xml"
	partCore         = "docProps/core.xml"
)

// Namespaces used by the writer
const (
	nsW             = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR             = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// ErrNotDocx is returned when the archive has no main document part
var ErrNotDocx = errors.New("not a docx package: missing word/document.xml")

// Options configures reading and writing
type Options struct {
	// FontName and FontSize (points) set the document default font
	FontName string
	FontSize float64

	// Creator and Title fill docProps/core.xml
	Creator string
	Title   string

	// Modified is the timestamp written to docProps/core.xml
	Modified time.Time

	// OnPartMissing is called for each optional part absent on read
	OnPartMissing func(part string)
}

// Option is a functional option for configuring the reader and writer
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() *Options {
	return &Options{
		FontName: "Calibri",
		FontSize: 11,
		Creator:  "docbridge",
	}
}

// WithFont sets the default font name and size in points
func WithFont(name string, size float64) Option {
	return func(o *Options) {
		if name != "" {
			o.FontName = name
		}
		if size > 0 {
			o.FontSize = size
		}
	}
}

// WithCreator sets the document author
func WithCreator(creator string) Option {
	return func(o *Options) {
		o.Creator = creator
	}
}

// WithTitle sets the document title property
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithModified sets the creation and modification timestamp
func WithModified(t time.Time) Option {
	return func(o *Options) {
		o.Modified = t
	}
}

// WithOnPartMissing sets the callback for absent optional parts
func WithOnPartMissing(callback func(part string)) Option {
	return func(o *Options) {
		o.OnPartMissing = callback
	}
}

func buildOptions(opts []Option) *Options {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
