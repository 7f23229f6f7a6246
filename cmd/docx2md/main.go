// Command docx2md converts a .docx file to markdown next to it.
package main

import (
	"os"

	"github.com/gerunddev/docbridge/internal/commands"
)

func main() {
	commands.Docx2Md("docx2md", os.Args[1:])
}
