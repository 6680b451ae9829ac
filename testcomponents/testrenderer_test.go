package testcomponents

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/nojs-counter/runtime"
	"github.com/vcrobe/nojs-counter/vdom"
)

// tally renders its state as two paragraphs.
type tally struct {
	runtime.ComponentBase
	Count int
	Label string

	inits, destroys int
}

func (c *tally) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(nil,
		vdom.Paragraph("Count: "+strconv.Itoa(c.Count), nil),
		vdom.Paragraph("Label: "+c.Label, nil),
	)
}

func (c *tally) Increment() {
	c.Count++
	c.StateHasChanged()
}

func (c *tally) SetLabel(label string) {
	c.Label = label
	c.StateHasChanged()
}

func (c *tally) OnInit()    { c.inits++ }
func (c *tally) OnDestroy() { c.destroys++ }

func TestTestRenderer_InitialRender(t *testing.T) {
	c := &tally{Count: 5, Label: "Test Counter"}
	renderer := NewTestRenderer(c)

	vnode := renderer.RenderRoot()

	require.Equal(t, "div", vnode.Tag)
	require.Len(t, vnode.Children, 2)
	assert.Equal(t, "Count: 5", vnode.Children[0].Content)
	assert.Equal(t, "Label: Test Counter", vnode.Children[1].Content)
	assert.Equal(t, 1, c.inits)
	assert.Equal(t, 1, renderer.Renders())
}

func TestTestRenderer_StateHasChangedReRenders(t *testing.T) {
	c := &tally{Count: 3, Label: "Initial"}
	renderer := NewTestRenderer(c)
	renderer.RenderRoot()

	c.Increment()

	vnode := renderer.GetCurrentVDOM()
	assert.Equal(t, "Count: 4", vnode.Children[0].Content)
	assert.Equal(t, "Label: Initial", vnode.Children[1].Content)
	assert.Equal(t, 2, renderer.Renders())
}

func TestTestRenderer_MultipleUpdates(t *testing.T) {
	c := &tally{Count: 2, Label: "Start"}
	renderer := NewTestRenderer(c)
	renderer.RenderRoot()

	for i := 1; i <= 5; i++ {
		c.Increment()
		assert.Equal(t, "Count: "+strconv.Itoa(2+i), renderer.GetCurrentVDOM().Children[0].Content,
			"after %d increment(s)", i)
	}

	c.SetLabel("Updated")
	vnode := renderer.GetCurrentVDOM()
	assert.Equal(t, "Label: Updated", vnode.Children[1].Content)
	assert.Equal(t, "Count: 7", vnode.Children[0].Content)
}

func TestTestRenderer_RenderIsolation(t *testing.T) {
	first := &tally{Count: 10, Label: "First"}
	second := &tally{Count: 20, Label: "Second"}
	r1 := NewTestRenderer(first)
	r2 := NewTestRenderer(second)
	r1.RenderRoot()
	r2.RenderRoot()

	first.Increment()

	assert.Equal(t, "Count: 11", r1.GetCurrentVDOM().Children[0].Content)
	assert.Equal(t, "Count: 20", r2.GetCurrentVDOM().Children[0].Content)
	assert.NotEqual(t, r1.ID(), r2.ID())
}

func TestTestRenderer_RenderChildReusesInstance(t *testing.T) {
	renderer := NewTestRenderer(&tally{})
	original := &tally{Count: 1}

	renderer.RenderChild("child", original)
	vnode := renderer.RenderChild("child", &tally{Count: 99})

	assert.Equal(t, "Count: 1", vnode.Children[0].Content)
	assert.Same(t, renderer, original.GetRenderer())
}

func TestTestRenderer_Unmount(t *testing.T) {
	root := &tally{}
	child := &tally{}
	renderer := NewTestRenderer(root)
	renderer.RenderRoot()
	renderer.RenderChild("child", child)

	renderer.Unmount()

	assert.Equal(t, 1, root.destroys)
	assert.Equal(t, 1, child.destroys)
	assert.False(t, root.Mounted())
	assert.Nil(t, renderer.GetCurrentVDOM())

	root.Increment()
	assert.Nil(t, renderer.GetCurrentVDOM())
}
