package model

// Format is a bit set of character emphasis
type Format uint8

const (
	Bold Format = 1 << iota
	Italic
)

// Has reports whether f includes all of flag
func (f Format) Has(flag Format) bool {
	return f&flag == flag
}

// RunStyle classifies a run for rendering
type RunStyle int

const (
	StylePlain RunStyle = iota
	StyleBold
	StyleItalic
	StyleBoldItalic
	StyleHyperlink
)

func (s RunStyle) String() string {
	switch s {
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBoldItalic:
		return "bold-italic"
	case StyleHyperlink:
		return "hyperlink"
	default:
		return "plain"
	}
}

// Run is a span of text sharing one emphasis and link target
type Run struct {
	Text   string
	Format Format

	// URL is the hyperlink target; empty for non-link runs
	URL string
}

// Plain creates an unstyled run
func Plain(text string) Run { return Run{Text: text} }

// Emphasis creates a run with the given format
func Emphasis(text string, f Format) Run { return Run{Text: text, Format: f} }

// Link creates a hyperlink run. An empty url yields a plain run.
func Link(text, url string) Run {
	return Run{Text: text, URL: url}
}

// IsLink reports whether the run is a hyperlink
func (r Run) IsLink() bool { return r.URL != "" }

// Style returns the run's rendering class. Hyperlink wins over emphasis.
func (r Run) Style() RunStyle {
	switch {
	case r.URL != "":
		return StyleHyperlink
	case r.Format.Has(Bold | Italic):
		return StyleBoldItalic
	case r.Format.Has(Bold):
		return StyleBold
	case r.Format.Has(Italic):
		return StyleItalic
	default:
		return StylePlain
	}
}

// SameStyle reports whether two runs may be merged without changing meaning
func (r Run) SameStyle(o Run) bool {
	return r.Format == o.Format && r.URL == o.URL
}

// MergeRuns drops empty runs and joins adjacent runs of identical style
func MergeRuns(runs []Run) []Run {
	var out []Run
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].SameStyle(r) {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}
