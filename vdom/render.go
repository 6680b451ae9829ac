//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-counter/console"
)

// releaseCallbacks releases every js.Func held by the tree rooted at v.
func releaseCallbacks(v *VNode) {
	v.Walk(func(n *VNode) bool {
		for _, cb := range n.GetEventCallbacks() {
			if fn, ok := cb.(js.Func); ok {
				fn.Release()
			}
		}
		n.ClearEventCallbacks()
		return true
	})
}

func mountElement(selector string) (js.Value, bool) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined(), false
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return js.Undefined(), false
	}
	return mount, true
}

// Clear empties the mount element and releases the callbacks of prev.
func Clear(selector string, prev *VNode) {
	if selector == "" {
		return
	}
	if prev != nil {
		releaseCallbacks(prev)
	}
	if mount, ok := mountElement(selector); ok {
		mount.Set("innerHTML", "")
	}
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}
	if mount, ok := mountElement(selector); ok {
		RenderTo(mount, n)
	}
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// Patch brings the mounted DOM from prev to next.
// The tree is small enough that remounting is the whole strategy.
func Patch(selector string, prev, next *VNode) {
	Clear(selector, prev)
	RenderToSelector(selector, next)
}

func setAttributeValue(el js.Value, key string, value any) {
	switch v := value.(type) {
	case bool:
		if v {
			el.Call("setAttribute", key, "")
		}
	case func(), func(any), nil:
	default:
		el.Call("setAttribute", key, v)
	}
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.IsText() {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}

	if n.Tag == "input" {
		if n.Content != "" {
			el.Set("value", n.Content)
		}
		return el
	}

	if n.Content != "" {
		el.Call("appendChild", doc.Call("createTextNode", n.Content))
	}
	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	if n.OnClick != nil {
		onClick := n.OnClick
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			onClick()
			return nil
		})
		el.Call("addEventListener", "click", cb)
		n.AddEventCallback(cb)
	}

	return el
}
