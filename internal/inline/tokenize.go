package inline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnterminatedDelimiter indicates a delimiter without its closing pair.
var ErrUnterminatedDelimiter = errors.New("matching closing delimiter not found")

// Inline delimiters, in the order Tokenize applies them.
const (
	BoldDelimiter   = "**"
	ItalicDelimiter = "_"
	CodeDelimiter   = "`"
)

// Precompiled patterns. Alt text, link text and URLs may be empty but never
// contain brackets or parentheses.
var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// Match is one image or link found in a text span.
type Match struct {
	Text string // alt text or link text
	URL  string

	start, end int
}

// Tokenize splits text into runs. Output order follows the input left to
// right, and the same input always yields the same runs.
func Tokenize(text string) ([]Run, error) {
	runs := []Run{Text(text)}

	var err error
	if runs, err = SplitDelimiter(runs, BoldDelimiter, Bold); err != nil {
		return nil, err
	}
	if runs, err = SplitDelimiter(runs, ItalicDelimiter, Italic); err != nil {
		return nil, err
	}
	if runs, err = SplitDelimiter(runs, CodeDelimiter, Code); err != nil {
		return nil, err
	}
	runs = SplitImages(runs)
	runs = SplitLinks(runs)
	return runs, nil
}

// SplitDelimiter splits every Plain run on delim. Parts alternate Plain and
// kind, starting and ending with Plain; empty Plain parts are kept.
// Runs of any other kind pass through untouched.
func SplitDelimiter(runs []Run, delim string, kind Kind) ([]Run, error) {
	out := make([]Run, 0, len(runs))
	for _, r := range runs {
		if r.Kind != Plain {
			out = append(out, r)
			continue
		}

		parts := strings.Split(r.Text, delim)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnterminatedDelimiter, delim, r.Text)
		}

		for i, part := range parts {
			if i%2 == 0 {
				out = append(out, Text(part))
			} else {
				out = append(out, Run{Kind: kind, Text: part})
			}
		}
	}
	return out, nil
}

// ExtractImages returns every ![alt](url) in text, left to right.
func ExtractImages(text string) []Match {
	return findMatches(imagePattern, text, false)
}

// ExtractLinks returns every [text](url) in text that is not image syntax.
func ExtractLinks(text string) []Match {
	return findMatches(linkPattern, text, true)
}

// SplitImages replaces image syntax inside Plain runs with Image runs.
func SplitImages(runs []Run) []Run {
	return splitMatches(runs, ExtractImages, Image)
}

// SplitLinks replaces link syntax inside Plain runs with Link runs.
func SplitLinks(runs []Run) []Run {
	return splitMatches(runs, ExtractLinks, Link)
}

// findMatches collects non-overlapping matches. With skipBang set, a match
// directly preceded by '!' is image syntax and is ignored.
func findMatches(re *regexp.Regexp, text string, skipBang bool) []Match {
	var matches []Match
	for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
		if skipBang && loc[0] > 0 && text[loc[0]-1] == '!' {
			continue
		}
		matches = append(matches, Match{
			Text:  text[loc[2]:loc[3]],
			URL:   text[loc[4]:loc[5]],
			start: loc[0],
			end:   loc[1],
		})
	}
	return matches
}

// splitMatches cuts each Plain run around its matches. Literal text between
// matches stays Plain; empty literal segments are dropped.
func splitMatches(runs []Run, extract func(string) []Match, kind Kind) []Run {
	out := make([]Run, 0, len(runs))
	for _, r := range runs {
		if r.Kind != Plain {
			out = append(out, r)
			continue
		}

		matches := extract(r.Text)
		if len(matches) == 0 {
			out = append(out, r)
			continue
		}

		pos := 0
		for _, m := range matches {
			if lit := r.Text[pos:m.start]; lit != "" {
				out = append(out, Text(lit))
			}
			out = append(out, Run{Kind: kind, Text: m.Text, URL: m.URL})
			pos = m.end
		}
		if rest := r.Text[pos:]; rest != "" {
			out = append(out, Text(rest))
		}
	}
	return out
}
