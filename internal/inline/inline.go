// Package inline converts between inline Markdown spans (**bold**,
// *italic*, [text](url)) and typed text runs.
package inline

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gerunddev/docbridge/internal/model"
)

var (
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldItalicPattern = regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern     = regexp.MustCompile(`\*([^*]+)\*`)
)

// emphasisPass is one marker class, tried longest first
type emphasisPass struct {
	pattern *regexp.Regexp
	format  model.Format
}

var emphasisPasses = []emphasisPass{
	{boldItalicPattern, model.Bold | model.Italic},
	{boldPattern, model.Bold},
	{italicPattern, model.Italic},
}

// Decode parses inline markup into runs. Hyperlinks are extracted first and
// their labels decoded for emphasis; the remaining text is split on triple,
// then double, then single markers. Unbalanced markers stay literal.
func Decode(s string) []model.Run {
	var runs []model.Run
	last := 0

	for _, m := range linkPattern.FindAllStringSubmatchIndex(s, -1) {
		runs = append(runs, decodeEmphasis(s[last:m[0]], 0)...)

		label := s[m[2]:m[3]]
		url := strings.TrimSpace(s[m[4]:m[5]])
		for _, r := range decodeEmphasis(label, 0) {
			r.URL = url
			runs = append(runs, r)
		}
		last = m[1]
	}
	runs = append(runs, decodeEmphasis(s[last:], 0)...)

	return model.MergeRuns(runs)
}

// decodeEmphasis splits s with the pass at index pass and recurses into the
// gaps with the next, shorter marker class
func decodeEmphasis(s string, pass int) []model.Run {
	if s == "" {
		return nil
	}
	if pass == len(emphasisPasses) {
		return []model.Run{model.Plain(s)}
	}

	p := emphasisPasses[pass]
	var runs []model.Run
	last := 0
	for _, m := range p.pattern.FindAllStringSubmatchIndex(s, -1) {
		runs = append(runs, decodeEmphasis(s[last:m[0]], pass+1)...)
		runs = append(runs, model.Emphasis(s[m[2]:m[3]], p.format))
		last = m[1]
	}
	return append(runs, decodeEmphasis(s[last:], pass+1)...)
}

// Encode renders runs as inline markup. Consecutive runs sharing a URL are
// wrapped in a single [label](url) span.
func Encode(runs []model.Run) string {
	var b strings.Builder

	for i := 0; i < len(runs); {
		r := runs[i]
		if r.URL == "" {
			b.WriteString(encodeEmphasis(r))
			i++
			continue
		}

		var label strings.Builder
		j := i
		for ; j < len(runs) && runs[j].URL == r.URL; j++ {
			label.WriteString(encodeEmphasis(runs[j]))
		}
		if label.Len() > 0 {
			b.WriteString("[")
			b.WriteString(label.String())
			b.WriteString("](")
			b.WriteString(r.URL)
			b.WriteString(")")
		}
		i = j
	}

	return b.String()
}

// PlainText renders runs without any markup
func PlainText(runs []model.Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// encodeEmphasis wraps a run in its markers. Surrounding whitespace is kept
// outside the markers so the span stays well formed.
func encodeEmphasis(r model.Run) string {
	marker := markerFor(r.Format)
	if marker == "" {
		return r.Text
	}

	core := strings.TrimFunc(r.Text, unicode.IsSpace)
	if core == "" {
		return r.Text
	}
	lead := r.Text[:len(r.Text)-len(strings.TrimLeftFunc(r.Text, unicode.IsSpace))]
	trail := r.Text[len(strings.TrimRightFunc(r.Text, unicode.IsSpace)):]

	return lead + marker + core + marker + trail
}

func markerFor(f model.Format) string {
	switch {
	case f.Has(model.Bold | model.Italic):
		return "***"
	case f.Has(model.Bold):
		return "**"
	case f.Has(model.Italic):
		return "*"
	default:
		return ""
	}
}
