package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakePrompter struct {
	answer bool
	err    error
	asked  []string
}

func (f *fakePrompter) ConfirmOverwrite(path string) (bool, error) {
	f.asked = append(f.asked, path)
	return f.answer, f.err
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDestinationPath(t *testing.T) {
	tests := []struct {
		input, ext, want string
	}{
		{"notes.md", ".docx", "notes.docx"},
		{"/a/b/report.docx", ".md", "/a/b/report.md"},
		{"dir.v2/file.MD", ".docx", "dir.v2/file.docx"},
	}
	for _, tt := range tests {
		if got := DestinationPath(tt.input, tt.ext); got != tt.want {
			t.Errorf("DestinationPath(%q, %q) = %q, want %q", tt.input, tt.ext, got, tt.want)
		}
	}
}

func TestNextFreeName(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.md")
	touch(t, dest)
	touch(t, filepath.Join(dir, "out (1).md"))

	got, err := NextFreeName(dest)
	if err != nil {
		t.Fatalf("NextFreeName failed: %v", err)
	}
	if want := filepath.Join(dir, "out (2).md"); got != want {
		t.Errorf("NextFreeName() = %q, want %q", got, want)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		policy    Policy
		prompter  *fakePrompter
		exists    bool
		wantName  string
		wantAsked bool
	}{
		{name: "free destination", policy: PolicyPrompt, prompter: &fakePrompter{}, wantName: "out.docx"},
		{name: "prompt yes", policy: PolicyPrompt, prompter: &fakePrompter{answer: true}, exists: true, wantName: "out.docx", wantAsked: true},
		{name: "prompt no", policy: PolicyPrompt, prompter: &fakePrompter{answer: false}, exists: true, wantName: "out (1).docx", wantAsked: true},
		{name: "no terminal renames", policy: PolicyPrompt, exists: true, wantName: "out (1).docx"},
		{name: "overwrite", policy: PolicyOverwrite, prompter: &fakePrompter{}, exists: true, wantName: "out.docx"},
		{name: "rename", policy: PolicyRename, prompter: &fakePrompter{answer: true}, exists: true, wantName: "out (1).docx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			dest := filepath.Join(dir, "out.docx")
			if tt.exists {
				touch(t, dest)
			}

			r := &Resolver{Policy: tt.policy}
			if tt.prompter != nil {
				r.Prompter = tt.prompter
			}

			got, err := r.Resolve(dest)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if want := filepath.Join(dir, tt.wantName); got != want {
				t.Errorf("Resolve() = %q, want %q", got, want)
			}
			asked := tt.prompter != nil && len(tt.prompter.asked) > 0
			if asked != tt.wantAsked {
				t.Errorf("prompted = %v, want %v", asked, tt.wantAsked)
			}
		})
	}
}

func TestResolvePromptError(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.md")
	touch(t, dest)

	boom := errors.New("tty closed")
	r := &Resolver{Policy: PolicyPrompt, Prompter: &fakePrompter{err: boom}}
	if _, err := r.Resolve(dest); !errors.Is(err, boom) {
		t.Errorf("Resolve() error = %v, want %v", err, boom)
	}
}

func TestResolveUnknownPolicy(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.md")
	touch(t, dest)

	r := &Resolver{Policy: "sometimes"}
	if _, err := r.Resolve(dest); err == nil {
		t.Error("Resolve() succeeded with unknown policy")
	}
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.md")
	touch(t, dest)

	if err := WriteAtomic(dest, []byte("fresh\n")); err != nil {
		t.Fatalf("WriteAtomic failed: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "fresh\n" {
		t.Errorf("content = %q, want %q", data, "fresh\n")
	}

	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temporary file left behind: %s", e.Name())
		}
	}
}

func TestWriteAtomicMissingDir(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "missing", "out.md")
	if err := WriteAtomic(dest, []byte("x")); err == nil {
		t.Error("WriteAtomic into a missing directory succeeded")
	}
}
