package lifecycle

import "slices"

// Surface is the minimal render-surface contract a node attaches children
// under. In a browser host this wraps a DOM element; BasicSurface backs
// tests and headless use.
type Surface interface {
	// AppendChild attaches child under this surface.
	AppendChild(child Surface)
	// RemoveChild detaches child if it is attached here.
	RemoveChild(child Surface)
	// Parent returns the surface this one is attached under, or nil.
	Parent() Surface
	// SetParent records the parent; called by AppendChild/RemoveChild.
	SetParent(parent Surface)
}

// BasicSurface is an in-memory Surface.
type BasicSurface struct {
	parent   Surface
	children []Surface
}

// NewBasicSurface returns a detached surface.
func NewBasicSurface() *BasicSurface {
	return &BasicSurface{}
}

func (s *BasicSurface) AppendChild(child Surface) {
	if child == nil {
		return
	}
	if p := child.Parent(); p != nil {
		p.RemoveChild(child)
	}
	s.children = append(s.children, child)
	child.SetParent(s)
}

func (s *BasicSurface) RemoveChild(child Surface) {
	before := len(s.children)
	s.children = slices.DeleteFunc(s.children, func(c Surface) bool { return c == child })
	if len(s.children) != before {
		child.SetParent(nil)
	}
}

func (s *BasicSurface) Parent() Surface {
	return s.parent
}

func (s *BasicSurface) SetParent(parent Surface) {
	s.parent = parent
}

// Children returns the attached surfaces in attachment order.
func (s *BasicSurface) Children() []Surface {
	return slices.Clone(s.children)
}
