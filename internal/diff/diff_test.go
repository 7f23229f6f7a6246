package diff

import (
	"strings"
	"testing"
)

func TestUnified(t *testing.T) {
	if got := Unified("a.md", "b.md", "same\n", "same\n"); got != "" {
		t.Errorf("Unified(equal) = %q, want empty", got)
	}

	got := Unified("notes.md", "notes.md (round trip)", "1. a\n1. b\n", "1. a\n2. b\n")
	for _, want := range []string{"--- notes.md", "+++ notes.md (round trip)", "-1. b", "+2. b"} {
		if !strings.Contains(got, want) {
			t.Errorf("Unified() missing %q:\n%s", want, got)
		}
	}
}

func TestRender(t *testing.T) {
	out := Render(Unified("a", "b", "old\n", "new\n"))
	if !strings.Contains(out, "old") || !strings.Contains(out, "new") {
		t.Errorf("Render() lost diff content:\n%s", out)
	}
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("# Heading\n\nbody text\n")
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	if !strings.Contains(out, "Heading") || !strings.Contains(out, "body text") {
		t.Errorf("RenderMarkdown() = %q", out)
	}
}
