// Package counter implements a button that shows how many times it was clicked.
package counter

import (
	"strconv"

	"github.com/vcrobe/nojs-counter/console"
	"github.com/vcrobe/nojs-counter/runtime"
	"github.com/vcrobe/nojs-counter/signals"
	"github.com/vcrobe/nojs-counter/vdom"
)

// LabelPrefix precedes the count in the button text.
const LabelPrefix = "count is "

var (
	_ runtime.Component   = (*Counter)(nil)
	_ runtime.Initializer = (*Counter)(nil)
	_ runtime.Cleaner     = (*Counter)(nil)
)

// Counter renders a single button labelled "count is N" and increments N on
// every click. The count starts at 0 and is owned by the instance; the only
// way to change it is Activate.
type Counter struct {
	runtime.ComponentBase

	count       *signals.Signal[int]
	unsubscribe func()
}

// New returns a counter at zero.
func New() *Counter {
	c := &Counter{}
	c.state()
	return c
}

// state lazily creates the count signal so the zero Counter is usable.
func (c *Counter) state() *signals.Signal[int] {
	if c.count == nil {
		c.count = signals.NewSignal(0)
	}
	return c.count
}

// Count returns the current count.
func (c *Counter) Count() int {
	return c.state().Get()
}

// Label returns the button text for the current count.
func (c *Counter) Label() string {
	return LabelPrefix + strconv.Itoa(c.Count())
}

// Activate increments the count by one and re-renders.
func (c *Counter) Activate() {
	c.state().Update(func(n int) int { return n + 1 })
}

// Render implements runtime.Component.
func (c *Counter) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Button(c.Label(), map[string]any{
		"onClick": c.Activate,
	})
}

// OnInit subscribes the re-render to count changes. It runs on every mount,
// including a mount after OnDestroy, so a remounted counter stays live.
func (c *Counter) OnInit() {
	if c.unsubscribe == nil {
		c.unsubscribe = c.state().Subscribe(c.StateHasChanged)
	}
	console.Log("counter mounted at", c.Count())
}

func (c *Counter) OnDestroy() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	console.Log("counter destroyed at", c.Count())
}
