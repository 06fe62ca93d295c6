package core

import (
	"github.com/go-canopy/canopy/pkg/lifecycle"
	"github.com/go-canopy/canopy/pkg/state"
)

// App is the application context: one store, one root lifecycle node, and
// the resolved capability providers. Construct it explicitly and pass it
// where needed; components never reach for a process-wide instance.
type App struct {
	Store *state.Store
	Root  *lifecycle.Node
	Caps  Capabilities
}

// Options configures NewApp.
type Options struct {
	// Initial is the initial state; nil means an empty object.
	Initial any
	// RootSurface is the surface the root node renders under. Defaults to
	// a headless BasicSurface.
	RootSurface lifecycle.Surface
	// Caps lists the optional capability providers; nil fields become
	// no-op variants.
	Caps Capabilities
}

// NewApp builds the application context.
func NewApp(opts Options) (*App, error) {
	initial := opts.Initial
	if initial == nil {
		initial = map[string]any{}
	}
	store, err := state.NewStore(initial)
	if err != nil {
		return nil, err
	}
	surface := opts.RootSurface
	if surface == nil {
		surface = lifecycle.NewBasicSurface()
	}
	return &App{
		Store: store,
		Root:  lifecycle.NewNode(surface),
		Caps:  opts.Caps.resolved(),
	}, nil
}

// Close destroys the root node, cascading teardown through every component
// attached beneath it.
func (a *App) Close() {
	a.Root.Destroy()
}
