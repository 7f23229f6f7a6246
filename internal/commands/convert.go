package commands

import (
	"fmt"
	"os"

	"github.com/gerunddev/docbridge/internal/styles"
	"github.com/gerunddev/docbridge/internal/tui"
)

// Docx2Md converts one .docx file to markdown
func Docx2Md(name string, args []string) {
	runSingle(name, ToMarkdown, args)
}

// Md2Docx converts one .md file to docx
func Md2Docx(name string, args []string) {
	runSingle(name, ToDocx, args)
}

func singleUsage(name string, dir Direction) string {
	return fmt.Sprintf(`Usage: %s [flags] <file%s>

Writes the converted file next to the input with the %s extension.

%s`, name, dir.InputExt(), dir.OutputExt(), flagHelp())
}

func runSingle(name string, dir Direction, args []string) {
	usage := singleUsage(name, dir)

	f, err := parseFlags(name, args)
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

	input := f.args[0]
	dest, err := conv.ConvertFile(dir, input)
	if err != nil {
		cleanup()
		fail(err)
	}
	cleanup()

	printConverted(input, dest)
}

// Convert converts each input in the direction its extension implies
func Convert(args []string) {
	usage := `Usage: docbridge convert [flags] <file.docx|file.md>...

Converts each file in the direction its extension implies.

` + flagHelp()

	f, err := parseFlags("convert", args)
	if err != nil {
		usageError(usage, err)
	}
	if f.help {
		fmt.Print(usage)
		return
	}
	if len(f.args) == 0 {
		usageError(usage, fmt.Errorf("%w: no input files", ErrUsage))
	}

	conv, cleanup, err := newConverter(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	results := make([]tui.ConversionResult, 0, len(f.args))
	failed := 0
	for _, input := range f.args {
		dest, err := convertAny(conv, input)
		if err != nil {
			failed++
		}
		results = append(results, tui.ConversionResult{Input: input, Dest: dest, Err: err})
	}

	if len(results) == 1 {
		if failed > 0 {
			cleanup()
			fail(results[0].Err)
		}
		printConverted(results[0].Input, results[0].Dest)
		return
	}

	fmt.Println(tui.RenderSummary(results))
	if failed > 0 {
		fmt.Println(styles.ErrorStyle.Render(fmt.Sprintf("✗ %d of %d conversions failed", failed, len(results))))
		cleanup()
		os.Exit(1)
	}
	fmt.Println(styles.Success(fmt.Sprintf("Converted %d files", len(results))))
}

func convertAny(conv *Converter, input string) (string, error) {
	dir, err := DirectionFor(input)
	if err != nil {
		return "", err
	}
	return conv.ConvertFile(dir, input)
}

func printConverted(input, dest string) {
	fmt.Println(styles.Success(fmt.Sprintf("Converted %s → %s",
		styles.PathStyle.Render(input), styles.PathStyle.Render(dest))))
}
