// Command md2docx converts a markdown file to .docx next to it.
package main

import (
	"os"

	"github.com/gerunddev/docbridge/internal/commands"
)

func main() {
	commands.Md2Docx("md2docx", os.Args[1:])
}
