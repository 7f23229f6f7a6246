package diff

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// wordWrap is the column glamour wraps rendered output at
const wordWrap = 120

// Unified returns the unified diff turning before into after, or the
// empty string when they are equal
func Unified(beforeName, afterName, before, after string) string {
	if before == after {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath(beforeName), before, after)
	return fmt.Sprint(gotextdiff.ToUnified(beforeName, afterName, before, edits))
}

// Render wraps a unified diff in a diff code fence and renders it for the
// terminal. Rendering failures fall back to the fenced plain text.
func Render(unified string) string {
	fenced := fmt.Sprintf("```diff\n%s```\n", unified)

	rendered, err := RenderMarkdown(fenced)
	if err != nil {
		return fenced
	}
	return rendered
}

// RenderMarkdown renders markdown for the terminal with glamour
func RenderMarkdown(mdContent string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	rendered, err := renderer.Render(mdContent)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return rendered, nil
}
