package testcomponents

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/vcrobe/nojs-counter/runtime"
	"github.com/vcrobe/nojs-counter/vdom"
)

var (
	// ErrNotFound is returned when a query matches no element.
	ErrNotFound = errors.New("no element found")
	// ErrMultipleFound is returned when a single-element query matches more than one.
	ErrMultipleFound = errors.New("multiple elements found")
	// ErrNoHandler is returned when clicking an element without a click handler.
	ErrNoHandler = errors.New("element has no click handler")
)

// Screen queries the tree a TestRenderer currently holds. Every query reads
// the latest render, so elements must be looked up again after a click.
type Screen struct {
	*TestRenderer
}

// Render mounts comp on a fresh TestRenderer and performs the initial render.
func Render(comp runtime.Component) *Screen {
	s := &Screen{TestRenderer: NewTestRenderer(comp)}
	s.RenderRoot()
	return s
}

// GetByText returns the only element whose own text equals text after
// whitespace normalization.
func (s *Screen) GetByText(text string) (*vdom.VNode, error) {
	want := normalize(text)
	return single(fmt.Sprintf("text %q", text), s.findAll(func(n *vdom.VNode) bool {
		return normalize(ownText(n)) == want
	}))
}

// QueryByText is GetByText returning nil instead of ErrNotFound.
func (s *Screen) QueryByText(text string) *vdom.VNode {
	n, err := s.GetByText(text)
	if err != nil {
		return nil
	}
	return n
}

// GetByRole returns the only element with the given role whose accessible
// name matches name. A nil name matches any element with the role.
func (s *Screen) GetByRole(role string, name *regexp.Regexp) (*vdom.VNode, error) {
	desc := fmt.Sprintf("role %q", role)
	if name != nil {
		desc += fmt.Sprintf(" named %s", name)
	}
	return single(desc, s.findAll(func(n *vdom.VNode) bool {
		if n.Role() != role {
			return false
		}
		return name == nil || name.MatchString(AccessibleName(n))
	}))
}

// Click fires the click handler of n, as a user activation would.
func (s *Screen) Click(n *vdom.VNode) error {
	if n == nil {
		return fmt.Errorf("click: %w", ErrNotFound)
	}
	if n.OnClick == nil {
		return fmt.Errorf("click <%s>: %w", n.Tag, ErrNoHandler)
	}
	n.OnClick()
	return nil
}

// HTML serializes the current tree.
func (s *Screen) HTML() (string, error) {
	return vdom.HTML(s.GetCurrentVDOM())
}

// AccessibleName returns the aria-label of n, falling back to its text content.
func AccessibleName(n *vdom.VNode) string {
	if label, ok := n.Attributes["aria-label"].(string); ok && label != "" {
		return normalize(label)
	}
	return normalize(n.TextContent())
}

func (s *Screen) findAll(match func(n *vdom.VNode) bool) []*vdom.VNode {
	var found []*vdom.VNode
	s.GetCurrentVDOM().Walk(func(n *vdom.VNode) bool {
		if !n.IsText() && match(n) {
			found = append(found, n)
		}
		return true
	})
	return found
}

func single(desc string, found []*vdom.VNode) (*vdom.VNode, error) {
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%s: %w", desc, ErrNotFound)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("%s: %d matches: %w", desc, len(found), ErrMultipleFound)
	}
}

// ownText is the element's content plus its direct text children, which is
// what a user reads as the element's text.
func ownText(n *vdom.VNode) string {
	var sb strings.Builder
	sb.WriteString(n.Content)
	for _, child := range n.Children {
		if child.IsText() {
			sb.WriteString(child.Content)
		}
	}
	return sb.String()
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
