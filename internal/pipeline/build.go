package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-mdsite/internal/block"
	"github.com/alnah/go-mdsite/internal/htmlnode"
	"github.com/alnah/go-mdsite/internal/inline"
)

// Sentinel errors for tree building.
var (
	ErrUnsupportedTextKind  = errors.New("unsupported text kind")
	ErrUnsupportedBlockKind = errors.New("unsupported block kind")
)

// RootTag wraps every top-level block of a document.
const RootTag = "div"

// BuildTree parses a Markdown document into an HTML tree rooted at a div
// with one child per block. Any inline or block error aborts the whole
// document.
func BuildTree(document string) (*htmlnode.Node, error) {
	blocks := block.Parse(document)
	children := make([]*htmlnode.Node, 0, len(blocks))
	for i, b := range blocks {
		node, err := BlockToNode(b)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, b.Kind, err)
		}
		children = append(children, node)
	}
	return htmlnode.NewParent(RootTag, children), nil
}

// BlockToNode converts one classified block to its parent node.
func BlockToNode(b block.Block) (*htmlnode.Node, error) {
	switch b.Kind {
	case block.Paragraph:
		return inlineParent("p", strings.Join(b.Lines(), " "))
	case block.Heading:
		return headingToNode(b)
	case block.Code:
		return codeToNode(b), nil
	case block.Quote:
		return quoteToNode(b)
	case block.UnorderedList:
		return listToNode("ul", b, func(int) string { return block.ListItemPrefix })
	case block.OrderedList:
		return listToNode("ol", b, block.OrderedPrefix)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedBlockKind, b.Kind)
	}
}

// RunToNode converts one inline run to a leaf.
// Link leaves carry the text only: no href attribute is emitted.
func RunToNode(r inline.Run) (*htmlnode.Node, error) {
	switch r.Kind {
	case inline.Plain:
		return htmlnode.NewText(r.Text), nil
	case inline.Bold:
		return htmlnode.NewLeaf("b", r.Text), nil
	case inline.Italic:
		return htmlnode.NewLeaf("i", r.Text), nil
	case inline.Code:
		return htmlnode.NewLeaf("code", r.Text), nil
	case inline.Link:
		return htmlnode.NewLeaf("a", r.Text), nil
	case inline.Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Value: r.URL},
			htmlnode.Attr{Key: "alt", Value: r.Text},
		), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedTextKind, r.Kind)
	}
}

// TextToNodes tokenizes text and maps each run to a leaf.
func TextToNodes(text string) ([]*htmlnode.Node, error) {
	runs, err := inline.Tokenize(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]*htmlnode.Node, 0, len(runs))
	for _, r := range runs {
		node, err := RunToNode(r)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func inlineParent(tag, text string) (*htmlnode.Node, error) {
	children, err := TextToNodes(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children), nil
}

// headingToNode drops the hash run and at most one space after it.
func headingToNode(b block.Block) (*htmlnode.Node, error) {
	text := strings.TrimPrefix(b.Text[b.Level:], " ")
	text = strings.Join(strings.Split(text, "\n"), " ")
	return inlineParent(fmt.Sprintf("h%d", b.Level), text)
}

// codeToNode strips fence characters from both ends, then leading newlines.
// The strip is by character, so backticks touching the fences go too.
func codeToNode(b block.Block) *htmlnode.Node {
	code := strings.Trim(b.Text, "`")
	code = strings.TrimLeft(code, "\n")
	return htmlnode.NewParent("pre", []*htmlnode.Node{htmlnode.NewLeaf("code", code)})
}

func quoteToNode(b block.Block) (*htmlnode.Node, error) {
	lines := b.Lines()
	for i, line := range lines {
		lines[i] = strings.TrimSpace(strings.TrimLeft(line, block.QuotePrefix))
	}
	return inlineParent("q", strings.Join(lines, "\n"))
}

// listToNode wraps each line in an li after removing its marker.
// prefix returns the marker of the n-th line, 1-based.
func listToNode(tag string, b block.Block, prefix func(n int) string) (*htmlnode.Node, error) {
	lines := b.Lines()
	items := make([]*htmlnode.Node, 0, len(lines))
	for i, line := range lines {
		item, err := inlineParent("li", strings.TrimPrefix(line, prefix(i+1)))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return htmlnode.NewParent(tag, items), nil
}
