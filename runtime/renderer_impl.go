//go:build js && wasm

package runtime

import "github.com/vcrobe/nojs-counter/vdom"

const rootKey = "__root__"

var _ Renderer = (*RendererImpl)(nil)

// RendererImpl renders a root component into a DOM element and keeps
// child instances alive across renders.
type RendererImpl struct {
	instances   map[string]Component
	initialized map[string]bool
	activeKeys  map[string]bool
	current     Component
	mountID     string
	prevVDOM    *vdom.VNode
}

// NewRenderer creates a renderer mounting into the element matched by mountID.
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		mountID:     mountID,
	}
}

// SetCurrentComponent sets the root component. The previous root, if any,
// is destroyed.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	if r.current != nil && r.current != comp {
		r.destroy(r.current, rootKey)
	}
	r.current = comp
}

// RenderRoot runs a full render cycle of the root component.
func (r *RendererImpl) RenderRoot() {
	if r.current == nil {
		return
	}
	r.activeKeys = make(map[string]bool)

	r.current.SetRenderer(r)
	if !r.initialized[rootKey] {
		if initializer, ok := r.current.(Initializer); ok {
			r.callOnInit(initializer, rootKey)
		}
		r.initialized[rootKey] = true
	}

	next := r.current.Render(r)
	if r.prevVDOM == nil {
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, next)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, next)
	}
	r.prevVDOM = next

	r.cleanupUnmountedComponents()
}

// RenderChild renders the instance stored under key, storing child on first sight.
func (r *RendererImpl) RenderChild(key string, child Component) *vdom.VNode {
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	if !exists {
		instance = child
		r.instances[key] = instance
	}
	instance.SetRenderer(r)

	if !r.initialized[key] {
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
		r.initialized[key] = true
	}
	return instance.Render(r)
}

// ReRender re-runs the render cycle.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}

// Unmount destroys the root and every child, and clears the mount element.
func (r *RendererImpl) Unmount() {
	for key, instance := range r.instances {
		r.destroy(instance, key)
	}
	if r.current != nil {
		r.destroy(r.current, rootKey)
		r.current = nil
	}
	vdom.Clear(r.mountID, r.prevVDOM)
	r.prevVDOM = nil
}

func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if !r.activeKeys[key] {
			r.destroy(instance, key)
		}
	}
}

func (r *RendererImpl) destroy(instance Component, key string) {
	if cleaner, ok := instance.(Cleaner); ok {
		r.callOnDestroy(cleaner, key)
	}
	instance.SetRenderer(nil)
	delete(r.instances, key)
	delete(r.initialized, key)
}
