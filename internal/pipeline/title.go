package pipeline

import (
	"errors"
	"strings"
)

// ErrNoHeadingFound indicates a document without a level-1 heading line.
var ErrNoHeadingFound = errors.New("no h1 heading found in markdown")

// maxTitleIndent is the number of leading spaces still allowed before "# ".
const maxTitleIndent = 3

// ExtractTitle returns the text of the first level-1 heading line.
// It scans raw lines rather than parsed blocks: a line qualifies when it
// starts with up to three spaces and "# ". Leading spaces and '#'
// characters are removed and the rest is trimmed, so "#    " yields "".
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(markdown, "\n") {
		if isTitleLine(line) {
			return strings.TrimSpace(strings.TrimLeft(line, " #")), nil
		}
	}
	return "", ErrNoHeadingFound
}

func isTitleLine(line string) bool {
	for indent := 0; indent <= maxTitleIndent; indent++ {
		if strings.HasPrefix(line, strings.Repeat(" ", indent)+"# ") {
			return true
		}
	}
	return false
}
