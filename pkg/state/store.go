package state

import "strconv"

// Store owns the current StateTree. All methods must be called from the
// goroutine that owns the store; see the package documentation.
type Store struct {
	tree Value

	nextID int
	global []globalEntry
	byPath map[string][]pathEntry

	// mutation pipeline state, see pipeline.go
	depth        int
	dirty        bool
	txActive     int
	pendingPaths []string
	pendingSeen  map[string]bool

	computed map[string]*computedDef
}

// NewStore creates a store holding the normalized form of initial.
func NewStore(initial any) (*Store, error) {
	tree, err := Normalize(initial)
	if err != nil {
		return nil, err
	}
	return &Store{
		tree:        tree,
		byPath:      make(map[string][]pathEntry),
		pendingSeen: make(map[string]bool),
		computed:    make(map[string]*computedDef),
	}, nil
}

// Get returns the current tree. The caller must treat the result as
// read-only; it is a snapshot that will never change.
func (s *Store) Get() Value {
	return s.tree
}

// GetPath returns the value at path, or (nil, false) when any intermediate
// segment is absent or not traversable. The empty path returns the whole
// tree.
func (s *Store) GetPath(path string) (Value, bool) {
	return At(s.tree, path)
}

// SetPath writes value at path, creating empty Objects for missing
// intermediates, and reports the change under path. The whole tree is
// cloned before the write and the root reference replaced in a single
// assignment. Fails with *ForbiddenKeyError if any segment is guarded; the
// tree is left untouched on any failure.
func (s *Store) SetPath(path string, value any) error {
	segs, err := splitPath(path)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return &PathSyntaxError{Path: path, Reason: "empty path, use Set for the whole tree"}
	}
	if err := checkForbidden(path, segs); err != nil {
		return err
	}
	v, err := Normalize(value)
	if err != nil {
		return err
	}
	next, err := setAt(Clone(s.tree), path, segs, v)
	if err != nil {
		return err
	}
	s.tree = next
	s.report(path)
	return nil
}

// UpdatePath rewrites the value at path as fn(current). A missing value is
// passed to fn as nil.
func (s *Store) UpdatePath(path string, fn func(prev Value) Value) error {
	prev, _ := s.GetPath(path)
	return s.SetPath(path, fn(prev))
}

// Set replaces the whole tree and reports the change under the wildcard
// path.
func (s *Store) Set(next any) error {
	v, err := Normalize(next)
	if err != nil {
		return err
	}
	s.tree = v
	s.report(Wildcard)
	return nil
}

// Merge shallow-merges partial into the root object and reports the change
// under the wildcard path. The root must be an Object (or nil, which merge
// treats as empty).
func (s *Store) Merge(partial any) error {
	v, err := Normalize(partial)
	if err != nil {
		return err
	}
	obj, ok := v.(*Object)
	if !ok {
		return &UnsupportedTypeError{Value: partial}
	}
	var root *Object
	switch t := s.tree.(type) {
	case *Object:
		root = t.Clone()
	case nil:
		root = NewObject()
	default:
		return &PathTypeError{Path: "", Reason: "root is not an object"}
	}
	obj.Range(func(k string, val Value) bool {
		root.Set(k, val)
		return true
	})
	s.tree = root
	s.report(Wildcard)
	return nil
}

// setAt assigns v at segs within root, which has already been cloned and may
// be mutated freely. It returns the (possibly replaced) root.
func setAt(root Value, path string, segs []string, v Value) (Value, error) {
	seg := segs[0]
	switch c := root.(type) {
	case *Object:
		if len(segs) == 1 {
			c.Set(seg, v)
			return c, nil
		}
		child, ok := c.Get(seg)
		if !ok || !traversable(child) {
			child = NewObject()
		}
		next, err := setAt(child, path, segs[1:], v)
		if err != nil {
			return nil, err
		}
		c.Set(seg, next)
		return c, nil
	case List:
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 {
			return nil, &PathTypeError{Path: path, Segment: seg, Reason: "sequence requires a non-negative numeric segment"}
		}
		for len(c) <= idx {
			c = append(c, nil)
		}
		if len(segs) == 1 {
			c[idx] = v
			return c, nil
		}
		child := c[idx]
		if !traversable(child) {
			child = NewObject()
		}
		next, err := setAt(child, path, segs[1:], v)
		if err != nil {
			return nil, err
		}
		c[idx] = next
		return c, nil
	default:
		// Scalar or nil in the way of the path: replace it with an empty
		// object, matching the missing-intermediate rule.
		return setAt(NewObject(), path, segs, v)
	}
}

func traversable(v Value) bool {
	switch v.(type) {
	case *Object, List:
		return true
	default:
		return false
	}
}
