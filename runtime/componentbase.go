package runtime

import "github.com/vcrobe/nojs-counter/console"

// ComponentBase is embedded by components to gain StateHasChanged.
type ComponentBase struct {
	renderer Renderer
}

// SetRenderer is called by the renderer when the component is mounted.
// User code should not call it.
func (b *ComponentBase) SetRenderer(r Renderer) {
	b.renderer = r
}

// GetRenderer returns the renderer the component is mounted on, or nil.
func (b *ComponentBase) GetRenderer() Renderer {
	return b.renderer
}

// Mounted reports whether a renderer is attached.
func (b *ComponentBase) Mounted() bool {
	return b.renderer != nil
}

// StateHasChanged asks the renderer to re-render so the UI reflects the
// component's current state. It is a logged no-op on an unmounted component.
func (b *ComponentBase) StateHasChanged() {
	if b.renderer == nil {
		console.Warn("StateHasChanged called, but renderer is nil (component not mounted?)")
		return
	}
	b.renderer.ReRender()
}
