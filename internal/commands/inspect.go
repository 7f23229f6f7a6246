package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/gerunddev/docbridge/internal/convert"
	"github.com/gerunddev/docbridge/internal/diff"
	"github.com/gerunddev/docbridge/internal/docx"
	"github.com/gerunddev/docbridge/internal/styles"
)

// RoundTrip converts a markdown file to docx and back in memory and shows
// what changed. Exits 1 when the round trip is lossy.
func RoundTrip(args []string) {
	usage := `Usage: docbridge roundtrip [flags] <file.md>

Converts the file to docx and back without writing anything and prints the
differences.

` + flagHelp()

	f, err := parseFlags("roundtrip", args)
	if err != nil {
		usageError(usage, err)
	}
	if f.help {
		fmt.Print(usage)
		return
	}
	if len(f.args) != 1 {
		usageError(usage, fmt.Errorf("%w: expected exactly one input file, got %d", ErrUsage, len(f.args)))
	}

	conv, cleanup, err := newConverter(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	input := f.args[0]
	before, after, err := roundTripFile(conv, input)
	if err != nil {
		cleanup()
		fail(err)
	}

	unified := diff.Unified(input, input+" (round trip)", before, after)
	if unified == "" {
		fmt.Println(styles.Success("Round trip is lossless: " + styles.PathStyle.Render(input)))
		return
	}

	if isTerminal(os.Stdout) {
		fmt.Print(diff.Render(unified))
	} else {
		fmt.Print(unified)
	}
	cleanup()
	os.Exit(1)
}

// roundTripFile returns the markdown of input and its image after a trip
// through docx
func roundTripFile(conv *Converter, input string) (string, string, error) {
	if err := checkInput(ToDocx, input); err != nil {
		return "", "", err
	}

	raw, err := os.ReadFile(input)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", input, err)
	}
	before := strings.TrimPrefix(string(raw), utf8BOM)

	after, err := convert.RoundTrip(before, conv.DocxOptions()...)
	if err != nil {
		return "", "", err
	}
	return before, after, nil
}

// Preview renders a markdown file, or a docx converted on the fly, in the
// terminal
func Preview(args []string) {
	usage := `Usage: docbridge preview [flags] <file.md|file.docx>

Renders the file as markdown in the terminal. Piped output is plain
markdown.

` + flagHelp()

	f, err := parseFlags("preview", args)
	if err != nil {
		usageError(usage, err)
	}
	if f.help {
		fmt.Print(usage)
		return
	}
	if len(f.args) != 1 {
		usageError(usage, fmt.Errorf("%w: expected exactly one input file, got %d", ErrUsage, len(f.args)))
	}

	conv, cleanup, err := newConverter(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	mdContent, err := previewMarkdown(conv, f.args[0])
	if err != nil {
		cleanup()
		fail(err)
	}

	if !isTerminal(os.Stdout) {
		fmt.Print(mdContent)
		return
	}
	rendered, err := diff.RenderMarkdown(mdContent)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.Warning(err.Error()))
		fmt.Print(mdContent)
		return
	}
	fmt.Print(rendered)
}

// previewMarkdown returns input as markdown, converting docx in memory
func previewMarkdown(conv *Converter, input string) (string, error) {
	dir, err := DirectionFor(input)
	if err != nil {
		return "", err
	}
	if err := checkInput(dir, input); err != nil {
		return "", err
	}

	if dir == ToDocx {
		raw, err := os.ReadFile(input)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", input, err)
		}
		return strings.TrimPrefix(string(raw), utf8BOM), nil
	}

	doc, err := docx.ReadFile(input, docx.WithOnPartMissing(func(part string) {
		conv.logger().PartMissing(input, part)
	}))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", input, err)
	}
	return convert.DocumentToMarkdown(doc), nil
}
