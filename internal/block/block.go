// Package block segments a Markdown document into blank-line separated
// blocks and classifies each one by its leading syntax.
package block

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind is the structural type of a block.
type Kind int

// Block kinds, in no particular priority order. See Classify for priority.
const (
	Paragraph Kind = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

var kindNames = [...]string{
	Paragraph:     "paragraph",
	Heading:       "heading",
	Code:          "code",
	Quote:         "quote",
	UnorderedList: "unordered_list",
	OrderedList:   "ordered_list",
}

// String returns the snake_case kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Syntax markers recognised by Classify.
const (
	Fence          = "```"
	QuotePrefix    = ">"
	ListItemPrefix = "- "
	MaxHeading     = 6
)

// Block is a trimmed, non-empty chunk of a document with its type.
// Level is the heading level (1-6) and zero for every other kind.
type Block struct {
	Kind  Kind
	Level int
	Text  string
}

// Lines returns the block text split on newlines.
func (b Block) Lines() []string {
	return strings.Split(b.Text, "\n")
}

// blankLines matches one or more blank lines between blocks.
var blankLines = regexp.MustCompile(`\n{2,}`)

// Split breaks a document on blank lines, trims each chunk and drops the
// empty ones. Order is preserved.
func Split(document string) []string {
	chunks := blankLines.Split(document, -1)
	blocks := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if trimmed := strings.TrimSpace(chunk); trimmed != "" {
			blocks = append(blocks, trimmed)
		}
	}
	return blocks
}

// Parse splits and classifies a document in one pass.
func Parse(document string) []Block {
	texts := Split(document)
	blocks := make([]Block, len(texts))
	for i, text := range texts {
		kind, level := Classify(text)
		blocks[i] = Block{Kind: kind, Level: level, Text: text}
	}
	return blocks
}

// Classify returns the block kind and, for headings, the level.
// Rules are checked in order and the first match wins:
// fenced code, heading, quote, unordered list, ordered list, paragraph.
func Classify(text string) (Kind, int) {
	if IsFencedCode(text) {
		return Code, 0
	}

	if level := HeadingLevel(text); level > 0 {
		return Heading, level
	}

	lines := strings.Split(text, "\n")
	if allLinesHavePrefix(lines, QuotePrefix) {
		return Quote, 0
	}
	if allLinesHavePrefix(lines, ListItemPrefix) {
		return UnorderedList, 0
	}
	if isOrderedList(lines) {
		return OrderedList, 0
	}
	return Paragraph, 0
}

// IsFencedCode reports whether text opens and closes with a fence line.
func IsFencedCode(text string) bool {
	return strings.HasPrefix(text, Fence+"\n") && strings.HasSuffix(text, "\n"+Fence)
}

// HeadingLevel returns the number of leading '#' characters when it is
// between 1 and MaxHeading and more text follows, and zero otherwise.
func HeadingLevel(text string) int {
	hashes := len(text) - len(strings.TrimLeft(text, "#"))
	if hashes < 1 || hashes > MaxHeading || hashes == len(text) {
		return 0
	}
	return hashes
}

// OrderedPrefix returns the list marker expected on the n-th line (1-based).
func OrderedPrefix(n int) string {
	return strconv.Itoa(n) + ". "
}

func allLinesHavePrefix(lines []string, prefix string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return true
}

// isOrderedList requires markers 1., 2., 3., ... with no gap or restart.
func isOrderedList(lines []string) bool {
	for i, line := range lines {
		if !strings.HasPrefix(line, OrderedPrefix(i+1)) {
			return false
		}
	}
	return true
}
