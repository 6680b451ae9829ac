package runtime

import "github.com/vcrobe/nojs-counter/vdom"

// Component is implemented by everything the renderer can mount.
// It carries no build tags so the same component compiles for the browser
// and for native tests.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	Render(r Renderer) *vdom.VNode

	// SetRenderer attaches the renderer so StateHasChanged can reach it.
	SetRenderer(r Renderer)
}

// Initializer is implemented by components that need setup before their first render.
type Initializer interface {
	OnInit()
}

// Cleaner is implemented by components that release resources when unmounted.
type Cleaner interface {
	OnDestroy()
}
