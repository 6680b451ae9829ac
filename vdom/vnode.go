package vdom

import "strings"

// TextTag is the tag used for bare text nodes.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name, or TextTag
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // Text content, rendered before children
	OnClick    func()         // Optional click event handler

	callbacks []any // host-side handles (js.Func) released on re-render
}

// NewVNode creates a new VNode.
// An "onClick" attribute holding a func() is moved to OnClick so it never
// reaches the rendered attribute list.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// Text creates a bare text node.
func Text(content string) *VNode {
	return NewVNode(TextTag, nil, nil, content)
}

// Paragraph creates a <p> VNode with the given text and attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Div creates a <div> VNode with the given children and attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Button creates a <button> VNode. Buttons default to type="button" so they
// never submit an enclosing form.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	if _, ok := attrs["type"]; !ok {
		attrs["type"] = "button"
	}
	return NewVNode("button", attrs, children, content)
}

// IsText reports whether v is a bare text node.
func (v *VNode) IsText() bool {
	return v != nil && v.Tag == TextTag
}

// TextContent returns the text of v and all of its descendants, in document order.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	if len(v.Children) == 0 {
		return v.Content
	}
	var sb strings.Builder
	sb.WriteString(v.Content)
	for _, child := range v.Children {
		sb.WriteString(child.TextContent())
	}
	return sb.String()
}

// Role returns the ARIA role of v. An explicit "role" attribute wins over the
// implicit role of the tag.
func (v *VNode) Role() string {
	if v == nil || v.IsText() {
		return ""
	}
	if r, ok := v.Attributes["role"].(string); ok && r != "" {
		return r
	}
	switch v.Tag {
	case "button":
		return "button"
	case "p":
		return "paragraph"
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return "heading"
	case "ul", "ol":
		return "list"
	case "li":
		return "listitem"
	case "input":
		if t, _ := v.Attributes["type"].(string); t == "checkbox" {
			return "checkbox"
		}
		return "textbox"
	}
	return ""
}

// Walk visits v and its descendants depth-first in pre-order.
// Returning false from fn stops the walk.
func (v *VNode) Walk(fn func(n *VNode) bool) bool {
	if v == nil {
		return true
	}
	if !fn(v) {
		return false
	}
	for _, child := range v.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// AddEventCallback stores a host handle so it can be released later.
func (v *VNode) AddEventCallback(cb any) {
	v.callbacks = append(v.callbacks, cb)
}

// GetEventCallbacks returns the host handles stored on v.
func (v *VNode) GetEventCallbacks() []any {
	return v.callbacks
}

// ClearEventCallbacks forgets all host handles stored on v.
func (v *VNode) ClearEventCallbacks() {
	v.callbacks = nil
}
