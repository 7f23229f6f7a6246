package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Style is a paragraph style tag
type Style int

const (
	Normal Style = iota
	Title
	Heading1
	Heading2
	Heading3
	Heading4
	Heading5
	Heading6
	Heading7
	Heading8
	Heading9
	ListBullet
	ListNumber
)

// MaxHeadingLevel is the deepest heading level Word defines
const MaxHeadingLevel = 9

// HeadingStyle returns the style for a heading level, 0 being Title.
// Levels outside 0..9 are clamped.
func HeadingStyle(level int) Style {
	if level <= 0 {
		return Title
	}
	if level > MaxHeadingLevel {
		level = MaxHeadingLevel
	}
	return Heading1 + Style(level-1)
}

// IsHeading reports whether s is Title or one of the heading styles
func (s Style) IsHeading() bool {
	return s >= Title && s <= Heading9
}

// HeadingLevel returns 0 for Title, 1..9 for headings and -1 otherwise
func (s Style) HeadingLevel() int {
	if !s.IsHeading() {
		return -1
	}
	return int(s - Title)
}

// IsList reports whether s is a list style
func (s Style) IsList() bool {
	return s == ListBullet || s == ListNumber
}

// String returns the Word display name of the style
func (s Style) String() string {
	switch {
	case s == Normal:
		return "Normal"
	case s == Title:
		return "Title"
	case s.IsHeading():
		return fmt.Sprintf("Heading %d", s.HeadingLevel())
	case s == ListBullet:
		return "List Bullet"
	case s == ListNumber:
		return "List Number"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ID returns the style identifier used inside word/styles.xml
func (s Style) ID() string {
	return strings.ReplaceAll(s.String(), " ", "")
}

// ParseStyleName maps a Word style name or id to a Style. Matching is
// case-insensitive and ignores spaces, so "Heading 2", "heading 2" and
// "Heading2" agree. Numbered variants such as "List Bullet 2" report their
// nesting level. Unknown names return ok=false.
func ParseStyleName(name string) (style Style, level int, ok bool) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
	switch {
	case key == "":
		return Normal, 0, false
	case key == "normal":
		return Normal, 0, true
	case key == "title":
		return Title, 0, true
	case strings.HasPrefix(key, "heading"):
		n, err := strconv.Atoi(key[len("heading"):])
		if err != nil || n < 1 || n > MaxHeadingLevel {
			return Normal, 0, false
		}
		return HeadingStyle(n), 0, true
	case strings.HasPrefix(key, "listbullet"):
		return ListBullet, listVariantLevel(key[len("listbullet"):]), true
	case strings.HasPrefix(key, "listnumber"):
		return ListNumber, listVariantLevel(key[len("listnumber"):]), true
	}
	return Normal, 0, false
}

// listVariantLevel turns the "2" of "List Bullet 2" into nesting level 1
func listVariantLevel(suffix string) int {
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 2 {
		return 0
	}
	return n - 1
}
