// Package htmlnode defines the HTML tree produced by the Markdown pipeline
// and renders it to an HTML string.
//
// A Node is either a Leaf (a tag wrapping a text value, or raw text when the
// tag is empty) or a Parent (a tag wrapping an ordered list of children).
// Trees are built once, rendered once, and never mutated in between.
package htmlnode

import (
	"fmt"
	"strings"
)

// Kind distinguishes the two node shapes.
type Kind int

const (
	// Leaf renders its value, optionally wrapped in a tag.
	Leaf Kind = iota
	// Parent renders its children wrapped in a tag.
	Parent
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "Leaf"
	case Parent:
		return "Parent"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Props is an ordered attribute list. Rendering follows insertion order.
type Props []Attr

// Node is an HTML tree node. Build nodes with NewLeaf, NewText and NewParent.
type Node struct {
	Kind     Kind
	Tag      string // empty on a Leaf means raw text
	Value    string
	Children []*Node
	Props    Props

	// hasValue separates an empty value from a missing one.
	hasValue bool
}

// NewLeaf creates a leaf node. An empty tag renders value verbatim.
func NewLeaf(tag, value string, props ...Attr) *Node {
	return &Node{
		Kind:     Leaf,
		Tag:      tag,
		Value:    value,
		Props:    props,
		hasValue: true,
	}
}

// NewText creates an untagged leaf holding raw text.
func NewText(value string) *Node {
	return NewLeaf("", value)
}

// NewParent creates a parent node wrapping children.
func NewParent(tag string, children []*Node, props ...Attr) *Node {
	return &Node{
		Kind:     Parent,
		Tag:      tag,
		Children: children,
		Props:    props,
	}
}

// HasValue reports whether a leaf value was set, even if empty.
func (n *Node) HasValue() bool {
	return n.hasValue
}

// String returns a debug representation of the node and its subtree.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(n.Kind.String())
	b.WriteByte('(')
	b.WriteString(n.Tag)
	if n.Kind == Leaf {
		fmt.Fprintf(&b, ", %q", n.Value)
	} else {
		b.WriteString(", [")
		for i, c := range n.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.String())
		}
		b.WriteByte(']')
	}
	fmt.Fprintf(&b, ", %v)", []Attr(n.Props))
	return b.String()
}
