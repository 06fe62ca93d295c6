package state

import "github.com/go-canopy/canopy/pkg/errors"

type computedDef struct {
	target string
	deps   []string
	fn     func(vals []Value) Value
}

// DefineComputed derives the value at target from the current values at
// deps: whenever any dependency path reports a change the definition
// recomputes fn over the dependency values and writes the result through
// the ordinary SetPath, so the recomputation is observable like any other
// write. The definition persists for the life of the store and the target
// is computed once at registration.
//
// A definition whose target is reachable from its own dependency set
// through already-registered definitions is rejected with
// *ComputeCycleError, and a second definition for the same target with
// *ComputeRedefinedError.
func (s *Store) DefineComputed(target string, deps []string, fn func(vals []Value) Value) error {
	segs, err := splitPath(target)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return &PathSyntaxError{Path: target, Reason: "empty computed target"}
	}
	if err := checkForbidden(target, segs); err != nil {
		return err
	}
	for _, dep := range deps {
		dsegs, err := splitPath(dep)
		if err != nil {
			return err
		}
		if len(dsegs) == 0 {
			return &PathSyntaxError{Path: dep, Reason: "empty computed dependency"}
		}
	}
	if _, ok := s.computed[target]; ok {
		return &ComputeRedefinedError{Target: target}
	}

	def := &computedDef{target: target, deps: deps, fn: fn}
	if via, ok := s.findCycle(def); ok {
		return &ComputeCycleError{Target: target, Via: via}
	}
	s.computed[target] = def

	for _, dep := range deps {
		s.SubscribePath(dep, func(_ Value, _ Value, _ string) {
			s.recompute(def)
		})
	}
	s.recompute(def)
	return nil
}

// findCycle reports whether def's target can trigger itself through the
// dependency edges of the registered definitions, def included. Only exact
// path identity is considered, mirroring the exact-path emission rule.
func (s *Store) findCycle(def *computedDef) (string, bool) {
	visited := map[string]bool{}
	var walk func(changed string) (string, bool)
	walk = func(changed string) (string, bool) {
		if visited[changed] {
			return "", false
		}
		visited[changed] = true
		for _, d := range s.allDefs(def) {
			for _, dep := range d.deps {
				if dep != changed {
					continue
				}
				if d.target == def.target {
					return changed, true
				}
				if via, ok := walk(d.target); ok {
					return via, true
				}
			}
		}
		return "", false
	}
	return walk(def.target)
}

func (s *Store) allDefs(extra *computedDef) []*computedDef {
	defs := make([]*computedDef, 0, len(s.computed)+1)
	for _, d := range s.computed {
		defs = append(defs, d)
	}
	return append(defs, extra)
}

func (s *Store) recompute(def *computedDef) {
	vals := make([]Value, len(def.deps))
	for i, dep := range def.deps {
		vals[i], _ = s.GetPath(dep)
	}

	var result Value
	ok := func() (done bool) {
		defer errors.Recover("state.recompute")
		result = def.fn(vals)
		return true
	}()
	if !ok {
		return
	}

	if err := s.SetPath(def.target, result); err != nil {
		errors.Report(&errors.CanopyError{
			Op:   "state.recompute",
			Kind: errors.KindCompute,
			Path: def.target,
			Err:  err,
		})
	}
}
