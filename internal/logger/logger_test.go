package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"INFO", log.InfoLevel, false},
		{"", log.InfoLevel, false},
		{"warning", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDomainHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.DebugLevel)

	l.ConversionStarted("in.md", "md2docx")
	l.ConversionCompleted("in.md", "in.docx", 4, 1500*time.Microsecond)
	l.DestinationRenamed("in.docx", "in (1).docx")
	l.Overwriting("in.docx")
	l.ConversionError("in.md", "in.docx", errors.New("boom"))
	l.PartMissing("in.docx", "word/styles.xml")
	l.ConfigLoaded("/cfg.yaml", "Calibri", 11, "prompt")

	out := buf.String()
	for _, want := range []string{
		"conversion started",
		"conversion completed",
		"blocks=4",
		"in (1).docx",
		"overwriting existing file",
		"error=boom",
		"word/styles.xml",
		"config loaded",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.InfoLevel)

	l.ConversionStarted("in.md", "md2docx")
	if buf.Len() != 0 {
		t.Errorf("debug record written at info level: %s", buf.String())
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docbridge.log")
	l, cleanup, err := NewFileLogger(path, log.InfoLevel)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	l.Overwriting("out.md")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "out.md") {
		t.Errorf("log file missing record: %s", data)
	}
}
