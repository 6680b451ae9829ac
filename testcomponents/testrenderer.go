// Package testcomponents mounts components in memory so they can be rendered,
// queried and clicked from native Go tests.
package testcomponents

import (
	"github.com/google/uuid"

	"github.com/vcrobe/nojs-counter/runtime"
	"github.com/vcrobe/nojs-counter/vdom"
)

// TestRenderer implements runtime.Renderer without a browser.
// It keeps the last rendered tree so tests can inspect it after
// StateHasChanged triggers a re-render.
type TestRenderer struct {
	id          string
	component   runtime.Component
	children    map[string]runtime.Component
	currentVDOM *vdom.VNode
	renders     int
	initialized bool
}

var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		id:        uuid.NewString(),
		component: comp,
		children:  make(map[string]runtime.Component),
	}
	comp.SetRenderer(r)
	return r
}

// ID identifies this mount.
func (r *TestRenderer) ID() string {
	return r.id
}

// RenderRoot performs the initial render, running OnInit first if the
// component has one.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	if !r.initialized {
		if initializer, ok := r.component.(runtime.Initializer); ok {
			initializer.OnInit()
		}
		r.initialized = true
	}
	r.render()
	return r.currentVDOM
}

// ReRender is called by StateHasChanged.
func (r *TestRenderer) ReRender() {
	r.render()
}

func (r *TestRenderer) render() {
	r.currentVDOM = r.component.Render(r)
	r.renders++
}

// GetCurrentVDOM returns the most recently rendered tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Renders returns how many times the root has been rendered.
func (r *TestRenderer) Renders() int {
	return r.renders
}

// RenderChild renders child, reusing the instance previously stored under key.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	instance, ok := r.children[key]
	if !ok {
		instance = child
		r.children[key] = instance
	}
	instance.SetRenderer(r)
	return instance.Render(r)
}

// Unmount destroys the root and its children and detaches them.
func (r *TestRenderer) Unmount() {
	for key, child := range r.children {
		if cleaner, ok := child.(runtime.Cleaner); ok {
			cleaner.OnDestroy()
		}
		child.SetRenderer(nil)
		delete(r.children, key)
	}
	if cleaner, ok := r.component.(runtime.Cleaner); ok {
		cleaner.OnDestroy()
	}
	r.component.SetRenderer(nil)
	r.currentVDOM = nil
}
