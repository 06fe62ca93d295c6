// Package core provides the component base every widget builds on.
//
// ComponentBase ties a widget to the ownership tree: embed it in your
// component struct and register cleanups and subscriptions through the
// hooks, which route every disposer through the component's lifecycle node.
// When the node is destroyed the subscriptions are already gone, so a dead
// component's listeners never fire.
//
//	type counter struct {
//	    core.ComponentBase
//	    count int64
//	}
//
//	func newCounter(app *core.App) *counter {
//	    c := &counter{}
//	    core.WatchPath(c, app.Store, "count", func(value, _ state.Value, _ string) {
//	        c.count, _ = value.(int64)
//	    })
//	    return c
//	}
//
// An App is the explicitly constructed application context: the store, the
// root lifecycle node, and the capability providers for optional
// integrations. There is no hidden global registry; pass the App to whoever
// needs it.
package core
