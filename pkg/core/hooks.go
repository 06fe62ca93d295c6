package core

import "github.com/go-canopy/canopy/pkg/state"

// UseDisposable creates a controller and registers it for automatic
// disposal when the component is destroyed.
//
// Example:
//
//	func newEditor(app *core.App) *editor {
//	    e := &editor{}
//	    e.poller = core.UseDisposable(e, func() *poller {
//	        return newPoller(app.Store)
//	    })
//	    return e
//	}
func UseDisposable[D Disposable](c Component, create func() D) D {
	controller := create()
	c.Node().Own(func() {
		controller.Dispose()
	})
	return controller
}

// WatchStore subscribes a component to every commit of the store. The
// subscription is owned by the component's node, so it is removed before
// the component is destroyed and can never fire afterwards.
func WatchStore(c Component, store *state.Store, fn state.GlobalListener) {
	unsub := store.Subscribe(fn)
	c.Node().Own(unsub)
}

// WatchPath subscribes a component to one exact path (or the wildcard).
// Like WatchStore, the disposer is owned by the component's node.
func WatchPath(c Component, store *state.Store, path string, fn state.PathListener) {
	unsub := store.SubscribePath(path, fn)
	c.Node().Own(unsub)
}
