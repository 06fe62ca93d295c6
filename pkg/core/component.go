package core

import "github.com/go-canopy/canopy/pkg/lifecycle"

// Component is satisfied by any struct that embeds ComponentBase. Hooks
// accept Component so callers can pass their component directly.
type Component interface {
	Node() *lifecycle.Node
}

// Disposable is anything with a Dispose method. Controllers returned by
// UseDisposable are disposed when the owning component is destroyed.
type Disposable interface {
	Dispose()
}

// ComponentBase provides common functionality for components. Embed it in
// your component struct; the zero value is ready to use and owns a
// surfaceless lifecycle node until Mount is called.
type ComponentBase struct {
	node *lifecycle.Node
}

// Node returns the component's lifecycle node, creating a surfaceless one
// on first use.
func (c *ComponentBase) Node() *lifecycle.Node {
	if c.node == nil {
		c.node = lifecycle.NewNode(nil)
	}
	return c.node
}

// Mount binds the component to a render surface. Call it once during
// construction, before attaching children; a second Mount is a no-op.
func (c *ComponentBase) Mount(surface lifecycle.Surface) {
	c.Node().AttachSurface(surface)
}

// Surface returns the component's render surface, or nil before Mount.
func (c *ComponentBase) Surface() lifecycle.Surface {
	return c.Node().Surface()
}

// Own registers a cleanup on the component's node.
func (c *ComponentBase) Own(disposer func()) func() {
	return c.Node().Own(disposer)
}

// Add attaches children under the component's node; see lifecycle.Node.Add
// for the arity contract.
func (c *ComponentBase) Add(children ...lifecycle.Child) lifecycle.Child {
	return c.Node().Add(children...)
}

// Destroy tears the component down; safe to call more than once.
func (c *ComponentBase) Destroy(opts ...lifecycle.DestroyOptions) {
	c.Node().Destroy(opts...)
}
