package state

// report routes a committed change either straight to emission or into the
// pipeline bookkeeping when a batch or transaction frame is open.
func (s *Store) report(path string) {
	if s.depth == 0 {
		s.emit(path)
		return
	}
	s.dirty = true
	if s.txActive > 0 && !s.pendingSeen[path] {
		s.pendingSeen[path] = true
		s.pendingPaths = append(s.pendingPaths, path)
	}
}

// Batch runs fn with emission withheld. Nested writes commit into the tree
// immediately, but when the outermost frame closes exactly one emission is
// fired under the wildcard path. Listeners on specific exact paths are
// therefore not notified for changes made inside a batch; only global and
// wildcard-scoped listeners observe them.
func (s *Store) Batch(fn func()) {
	s.depth++
	defer func() {
		s.depth--
		if s.depth == 0 && s.dirty {
			s.dirty = false
			s.pendingPaths = nil
			clear(s.pendingSeen)
			s.emit(Wildcard)
		}
	}()
	fn()
}

// Transaction runs fn atomically. Writes commit into the tree as they
// happen, with every distinct written path tracked. If fn returns an error
// or panics, or any validator rejects the resulting state, the tree is
// restored verbatim to its pre-transaction snapshot, pending paths are
// dropped, and the triggering error propagates (a *ValidationFailedError
// for validator rejection) with nothing emitted. On success, when the
// outermost frame closes, one emission is fired per distinct changed path
// in first-write order.
func (s *Store) Transaction(fn func() error, validate ...func(state Value) bool) (err error) {
	// The current tree reference is itself a snapshot: clone-on-write means
	// it is never mutated after publication.
	snapshot := s.tree
	mark := len(s.pendingPaths)
	wasDirty := s.dirty
	s.depth++
	s.txActive++

	defer func() {
		s.depth--
		s.txActive--
		if r := recover(); r != nil {
			s.rollback(snapshot, mark, wasDirty)
			panic(r)
		}
		if err != nil {
			s.rollback(snapshot, mark, wasDirty)
			return
		}
		for _, v := range validate {
			if v != nil && !v(s.tree) {
				s.rollback(snapshot, mark, wasDirty)
				err = &ValidationFailedError{}
				return
			}
		}
		if s.depth == 0 {
			s.flushPending()
		}
	}()

	return fn()
}

// rollback undoes the frame's writes: the tree reverts to the entry
// snapshot, paths recorded since mark are dropped, and the dirty flag
// reverts to its entry value so undone writes cannot trigger a later flush.
func (s *Store) rollback(snapshot Value, mark int, wasDirty bool) {
	s.tree = snapshot
	for _, p := range s.pendingPaths[mark:] {
		delete(s.pendingSeen, p)
	}
	s.pendingPaths = s.pendingPaths[:mark]
	s.dirty = wasDirty
}

func (s *Store) flushPending() {
	paths := s.pendingPaths
	s.pendingPaths = nil
	clear(s.pendingSeen)
	s.dirty = false
	for _, p := range paths {
		s.emit(p)
	}
}
