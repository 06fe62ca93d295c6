package testing

import "github.com/go-canopy/canopy/pkg/state"

// Emission is one observed notification.
type Emission struct {
	// Path is the reported change path.
	Path string
	// Value is the value delivered to a path-scoped listener; nil for
	// global and wildcard observations.
	Value state.Value
	// State is the tree at emission time.
	State state.Value
	// Scope is the registration that observed the emission: "global" or
	// the subscribed path.
	Scope string
}

// Recorder records store emissions for assertions.
type Recorder struct {
	emissions []Emission
	disposers []func()
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Watch records every commit of the store through a global subscription.
func (r *Recorder) Watch(store *state.Store) *Recorder {
	unsub := store.Subscribe(func(s state.Value, path string) {
		r.emissions = append(r.emissions, Emission{Path: path, State: s, Scope: "global"})
	})
	r.disposers = append(r.disposers, unsub)
	return r
}

// WatchPath records emissions delivered to a path-scoped subscription,
// including the wildcard.
func (r *Recorder) WatchPath(store *state.Store, path string) *Recorder {
	unsub := store.SubscribePath(path, func(value, s state.Value, reported string) {
		r.emissions = append(r.emissions, Emission{Path: reported, Value: value, State: s, Scope: path})
	})
	r.disposers = append(r.disposers, unsub)
	return r
}

// Emissions returns everything recorded so far, in observation order.
func (r *Recorder) Emissions() []Emission {
	return r.emissions
}

// Paths returns just the reported paths, in observation order.
func (r *Recorder) Paths() []string {
	paths := make([]string, len(r.emissions))
	for i, e := range r.emissions {
		paths[i] = e.Path
	}
	return paths
}

// Len returns the number of recorded emissions.
func (r *Recorder) Len() int {
	return len(r.emissions)
}

// Reset discards recorded emissions but keeps subscriptions.
func (r *Recorder) Reset() {
	r.emissions = nil
}

// Close unsubscribes everything. Safe to call more than once.
func (r *Recorder) Close() {
	disposers := r.disposers
	r.disposers = nil
	for _, d := range disposers {
		d()
	}
}
