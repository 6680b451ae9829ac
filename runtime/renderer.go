package runtime

import "github.com/vcrobe/nojs-counter/vdom"

// Renderer is the set of runtime operations available to components.
// The browser renderer and the in-memory test renderer both implement it.
type Renderer interface {
	// RenderChild renders a child component, reusing the instance stored under key.
	RenderChild(key string, child Component) *vdom.VNode

	// ReRender re-runs the render cycle synchronously.
	ReRender()
}
