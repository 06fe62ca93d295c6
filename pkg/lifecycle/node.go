package lifecycle

import "github.com/go-canopy/canopy/pkg/errors"

// Child is anything that can be attached under a node: it exposes the
// render surface to hang into the tree. Node itself is a Child.
type Child interface {
	Surface() Surface
}

// Destroyable is implemented by children with teardown. Add tracks such
// children for cascading destruction.
type Destroyable interface {
	Destroy(opts ...DestroyOptions)
}

// DestroyOptions controls Destroy. Remove detaches the node's surface from
// its parent after teardown.
type DestroyOptions struct {
	Remove bool
}

// Node is the ownership primitive. It holds cleanup callbacks and child
// nodes and guarantees cascading, idempotent teardown. Like the Store it is
// confined to the owning goroutine.
type Node struct {
	surface   Surface
	disposers []func()
	children  []Destroyable
	destroyed bool
}

// NewNode returns a node over the given surface. A nil surface is valid for
// pure owners that only hold disposers and children.
func NewNode(surface Surface) *Node {
	return &Node{surface: surface}
}

// Surface returns the node's render surface, which may be nil.
func (n *Node) Surface() Surface {
	return n.surface
}

// AttachSurface binds a render surface to a node created without one. It is
// a no-op if the node already has a surface.
func (n *Node) AttachSurface(s Surface) {
	if n.surface == nil {
		n.surface = s
	}
}

// Own appends a cleanup callback, run once at destruction in insertion
// order. It returns the same callback for convenience. If the node is
// already destroyed the callback runs immediately.
func (n *Node) Own(disposer func()) func() {
	if disposer == nil {
		return func() {}
	}
	if n.destroyed {
		disposer()
		return disposer
	}
	n.disposers = append(n.disposers, disposer)
	return disposer
}

// Add attaches each child's surface under this node's surface and, for any
// child exposing teardown, tracks it for cascading destruction. When called
// with exactly one child it returns that child, so chaining continues on
// the newly attached item; otherwise it returns the node itself.
func (n *Node) Add(children ...Child) Child {
	for _, child := range children {
		if child == nil {
			continue
		}
		if n.surface != nil && child.Surface() != nil {
			n.surface.AppendChild(child.Surface())
		}
		if d, ok := child.(Destroyable); ok {
			n.children = append(n.children, d)
		}
	}
	if len(children) == 1 {
		return children[0]
	}
	return n
}

// Destroy tears the node down exactly once: owned children first,
// depth-first, each detaching from its own parent; then the node's
// disposers in insertion order, each isolated so one panic cannot block the
// rest; finally, if opts request removal and the surface has a parent, the
// surface is detached. Subsequent calls are no-ops.
func (n *Node) Destroy(opts ...DestroyOptions) {
	if n.destroyed {
		return
	}
	n.destroyed = true

	var o DestroyOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	children := n.children
	n.children = nil
	for _, child := range children {
		n.destroyChild(child)
	}

	disposers := n.disposers
	n.disposers = nil
	for _, d := range disposers {
		n.runDisposer(d)
	}

	if o.Remove && n.surface != nil {
		if p := n.surface.Parent(); p != nil {
			p.RemoveChild(n.surface)
		}
	}
}

func (n *Node) destroyChild(child Destroyable) {
	defer errors.Recover("lifecycle.Destroy")
	child.Destroy(DestroyOptions{Remove: true})
}

func (n *Node) runDisposer(d func()) {
	defer errors.Recover("lifecycle.Destroy")
	d()
}

// IsDestroyed reports whether Destroy has run.
func (n *Node) IsDestroyed() bool {
	return n.destroyed
}
