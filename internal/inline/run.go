// Package inline splits a span of Markdown text into typed runs.
//
// Tokenize applies five passes in a fixed order: bold (**), italic (_),
// code (`), images and links. Each pass only looks at runs still marked
// Plain by the passes before it, so text inside a bold span is never
// re-scanned for italics, and so on. Nested styles are not supported.
package inline

import "fmt"

// Kind identifies the style of a run.
type Kind int

// Run kinds.
const (
	Plain Kind = iota
	Bold
	Italic
	Code
	Link
	Image
)

var kindNames = [...]string{
	Plain:  "plain",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Run is a typed span of inline text.
// URL is only meaningful for Link and Image runs.
type Run struct {
	Kind Kind
	Text string // display text, or alt text for images
	URL  string
}

// Text returns a Plain run.
func Text(s string) Run {
	return Run{Kind: Plain, Text: s}
}
