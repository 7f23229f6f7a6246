package commands

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Direction is the way a conversion goes
type Direction int

const (
	// ToMarkdown converts .docx to .md
	ToMarkdown Direction = iota
	// ToDocx converts .md to .docx
	ToDocx
)

const (
	extDocx = ".docx"
	extMd   = ".md"
)

// InputExt is the extension the direction reads
func (d Direction) InputExt() string {
	if d == ToDocx {
		return extMd
	}
	return extDocx
}

// OutputExt is the extension the direction writes
func (d Direction) OutputExt() string {
	return d.Reverse().InputExt()
}

// Reverse returns the opposite direction
func (d Direction) Reverse() Direction {
	if d == ToDocx {
		return ToMarkdown
	}
	return ToDocx
}

// Tool is the name of the single-purpose binary for the direction
func (d Direction) Tool() string {
	if d == ToDocx {
		return "md2docx"
	}
	return "docx2md"
}

func (d Direction) String() string {
	return strings.TrimPrefix(d.InputExt(), ".") + "→" + strings.TrimPrefix(d.OutputExt(), ".")
}

// DirectionFor picks the direction from the input extension
func DirectionFor(path string) (Direction, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case extDocx:
		return ToMarkdown, nil
	case extMd:
		return ToDocx, nil
	default:
		return 0, fmt.Errorf("%w: %s is neither a %s nor a %s file", ErrWrongExtension, path, extDocx, extMd)
	}
}
