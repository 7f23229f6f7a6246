package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/docbridge/internal/commands"
	"github.com/gerunddev/docbridge/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "docx2md", "d2m":
		commands.Docx2Md("docbridge "+command, os.Args[2:])
	case "md2docx", "m2d":
		commands.Md2Docx("docbridge "+command, os.Args[2:])
	case "convert":
		commands.Convert(os.Args[2:])
	case "roundtrip":
		commands.RoundTrip(os.Args[2:])
	case "preview":
		commands.Preview(os.Args[2:])
	case "config":
		commands.Config(os.Args[2:])
	case "version", "--version":
		fmt.Printf("docbridge v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`docbridge - Convert between Word documents and markdown

Usage:
  docbridge <command> [options]

Commands:
  docx2md     Convert a .docx file to markdown (alias: d2m)
  md2docx     Convert a markdown file to .docx (alias: m2d)
  convert     Convert files, direction chosen by extension
  roundtrip   Show what a markdown file loses in a trip through .docx
  preview     Render a .md or .docx file in the terminal
  config      Show or initialize the configuration
  version     Show version information
  help        Show this help message

Examples:
  docbridge docx2md report.docx
  docbridge md2docx notes.md --force
  docbridge convert a.docx b.md
  docbridge roundtrip notes.md
  docbridge preview report.docx
  docbridge config init

Configuration:
  Config file: %s

For more information, visit: https://github.com/gerunddev/docbridge
`, config.ConfigPath())
	fmt.Print(usage)
}
