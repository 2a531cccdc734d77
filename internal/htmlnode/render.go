package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for tree rendering.
var (
	ErrMissingValue    = errors.New("leaf node has no value")
	ErrMissingTag      = errors.New("parent node has no tag")
	ErrMissingChildren = errors.New("parent node has no children")
	ErrInvalidTag      = errors.New("invalid parent tag")
)

// selfClosingTag is rendered as <img .../> on a leaf and rejected on a parent.
const selfClosingTag = "img"

// Render returns the HTML for the node and its subtree.
// The first contract violation found depth-first aborts rendering.
func (n *Node) Render() (string, error) {
	var b strings.Builder
	if err := n.renderTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (n *Node) renderTo(b *strings.Builder) error {
	switch n.Kind {
	case Leaf:
		return n.renderLeaf(b)
	case Parent:
		return n.renderParent(b)
	default:
		return fmt.Errorf("htmlnode: unknown node kind %d", int(n.Kind))
	}
}

func (n *Node) renderLeaf(b *strings.Builder) error {
	if !n.hasValue {
		return fmt.Errorf("%w: <%s>", ErrMissingValue, n.Tag)
	}

	switch n.Tag {
	case "":
		b.WriteString(n.Value)
	case selfClosingTag:
		b.WriteString("<" + n.Tag)
		n.Props.writeTo(b)
		b.WriteString("/>")
	default:
		b.WriteString("<" + n.Tag)
		n.Props.writeTo(b)
		b.WriteString(">" + n.Value + "</" + n.Tag + ">")
	}
	return nil
}

func (n *Node) renderParent(b *strings.Builder) error {
	if n.Tag == "" {
		return ErrMissingTag
	}
	if len(n.Children) == 0 {
		return fmt.Errorf("%w: <%s>", ErrMissingChildren, n.Tag)
	}
	if n.Tag == selfClosingTag {
		return fmt.Errorf("%w: <%s> cannot wrap children", ErrInvalidTag, n.Tag)
	}

	b.WriteString("<" + n.Tag)
	n.Props.writeTo(b)
	b.WriteByte('>')
	for _, child := range n.Children {
		if err := child.renderTo(b); err != nil {
			return err
		}
	}
	b.WriteString("</" + n.Tag + ">")
	return nil
}

// HTML renders the props as ` key="value"` pairs in insertion order.
func (p Props) HTML() string {
	var b strings.Builder
	p.writeTo(&b)
	return b.String()
}

func (p Props) writeTo(b *strings.Builder) {
	for _, a := range p {
		b.WriteString(" " + a.Key + `="` + a.Value + `"`)
	}
}
