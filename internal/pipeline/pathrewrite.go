package pipeline

import (
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rewrittenAttrs are the attributes that may hold a site-rooted URL.
var rewrittenAttrs = map[string]bool{
	"href": true,
	"src":  true,
}

// RootFolder returns the URL prefix for a deployment base path: "/" followed
// by the last path element, or "" when basePath is empty or "/".
//
// Examples:
//   - "" -> ""
//   - "/blog/" -> "/blog"
//   - "/srv/www/site" -> "/site"
func RootFolder(basePath string) string {
	trimmed := strings.TrimRight(basePath, "/")
	if trimmed == "" {
		return ""
	}
	return "/" + path.Base(trimmed)
}

// RewriteBasePath prefixes site-rooted href and src attributes ("/x") with
// RootFolder(basePath), so pages published under a sub-path keep working.
// If the root folder is empty, returns the HTML unchanged.
//
// Does NOT rewrite:
//   - relative paths and anchors
//   - URLs with a scheme
//   - protocol-relative URLs ("//host/x")
func RewriteBasePath(htmlContent, basePath string) (string, error) {
	root := RootFolder(basePath)
	if root == "" {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, root)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteNode walks the tree depth-first and rewrites every element.
func rewriteNode(n *html.Node, root string) {
	if n.Type == html.ElementNode {
		for i, attr := range n.Attr {
			if rewrittenAttrs[attr.Key] && isSiteRooted(attr.Val) {
				n.Attr[i].Val = root + attr.Val
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, root)
	}
}

// isSiteRooted reports whether p starts at the site root.
func isSiteRooted(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//")
}
