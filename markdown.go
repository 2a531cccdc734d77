package mdsite

import (
	"github.com/alnah/go-mdsite/internal/htmlnode"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Node is an HTML tree node produced by ToHTMLNode.
type Node = htmlnode.Node

// ToHTMLNode parses a Markdown document into a tree rooted at a div with
// one child per block. The first inline or block error aborts the document.
func ToHTMLNode(markdown string) (*Node, error) {
	return pipeline.BuildTree(markdown)
}

// ToHTML parses and renders a Markdown document.
// An empty document fails with ErrMissingChildren.
func ToHTML(markdown string) (string, error) {
	root, err := pipeline.BuildTree(markdown)
	if err != nil {
		return "", err
	}
	return root.Render()
}

// ExtractTitle returns the text of the first line starting with up to three
// spaces and "# ". Returns ErrNoHeadingFound when there is none.
func ExtractTitle(markdown string) (string, error) {
	return pipeline.ExtractTitle(markdown)
}
