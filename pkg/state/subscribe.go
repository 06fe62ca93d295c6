package state

import (
	"slices"

	"github.com/go-canopy/canopy/pkg/errors"
)

// GlobalListener is fired on every committed change.
type GlobalListener func(state Value, path string)

// PathListener is fired for changes reported under its registration path.
// For wildcard registrations value is nil.
type PathListener func(value Value, state Value, path string)

type globalEntry struct {
	id int
	fn GlobalListener
}

type pathEntry struct {
	id int
	fn PathListener
}

// Subscribe registers a listener invoked on every commit, regardless of
// path. The returned disposer is idempotent.
func (s *Store) Subscribe(fn GlobalListener) func() {
	id := s.nextID
	s.nextID++
	s.global = append(s.global, globalEntry{id: id, fn: fn})
	return func() {
		s.global = slices.DeleteFunc(s.global, func(e globalEntry) bool { return e.id == id })
	}
}

// SubscribePath registers a listener scoped to one exact path, or to the
// literal Wildcard. The returned disposer is idempotent.
func (s *Store) SubscribePath(path string, fn PathListener) func() {
	id := s.nextID
	s.nextID++
	s.byPath[path] = append(s.byPath[path], pathEntry{id: id, fn: fn})
	return func() {
		s.byPath[path] = slices.DeleteFunc(s.byPath[path], func(e pathEntry) bool { return e.id == id })
	}
}

// emit fans a committed change out to listeners: globals first, then
// listeners registered exactly on path, then wildcard listeners. Each pass
// iterates a snapshot taken at its start, so a listener removing itself or
// a peer mid-emission neither skips nor double-fires anyone. A panicking
// listener is reported and skipped; it never blocks the rest of the pass.
func (s *Store) emit(path string) {
	state := s.tree

	globals := slices.Clone(s.global)
	for _, e := range globals {
		fn := e.fn
		s.invoke(func() { fn(state, path) })
	}

	if path != Wildcard {
		exact := slices.Clone(s.byPath[path])
		if len(exact) > 0 {
			value, _ := At(state, path)
			for _, e := range exact {
				fn := e.fn
				s.invoke(func() { fn(value, state, path) })
			}
		}
	}

	wild := slices.Clone(s.byPath[Wildcard])
	for _, e := range wild {
		fn := e.fn
		s.invoke(func() { fn(nil, state, path) })
	}
}

// invoke runs one listener with panic isolation.
func (s *Store) invoke(fn func()) {
	defer errors.Recover("state.emit")
	fn()
}
