package vdom

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML serializes the VNode tree as HTML to w.
// Event handlers are never serialized. Boolean attributes are written with an
// empty value when true and dropped when false.
func RenderHTML(w io.Writer, n *VNode) error {
	if n == nil {
		return nil
	}
	return html.Render(w, toHTMLNode(n))
}

// HTML returns the serialized HTML of the VNode tree.
func HTML(n *VNode) (string, error) {
	var sb strings.Builder
	if err := RenderHTML(&sb, n); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return sb.String(), nil
}

func toHTMLNode(n *VNode) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	node := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttributes(n),
	}

	// <input> carries its content as a value attribute and cannot hold children.
	if n.Tag == "input" {
		return node
	}

	if n.Content != "" {
		node.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		node.AppendChild(toHTMLNode(child))
	}
	return node
}

func htmlAttributes(n *VNode) []html.Attribute {
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]html.Attribute, 0, len(keys)+1)
	for _, k := range keys {
		switch v := n.Attributes[k].(type) {
		case bool:
			if v {
				attrs = append(attrs, html.Attribute{Key: k})
			}
		case func(), func(any):
			// handlers are attached by the host, not rendered
		case nil:
		default:
			attrs = append(attrs, html.Attribute{Key: k, Val: fmt.Sprint(v)})
		}
	}
	if n.Tag == "input" && n.Content != "" {
		attrs = append(attrs, html.Attribute{Key: "value", Val: n.Content})
	}
	return attrs
}
