// Package state implements the path-addressed application state container.
//
// A Store holds a single immutable StateTree value. Every mutation clones the
// whole tree, applies the change to the clone, and swaps the root reference in
// one assignment, so any reference obtained from Get is a permanent snapshot
// that will never change underneath its holder.
//
// # Values
//
// The tree is restricted to a closed union: nil, bool, int64, float64,
// string, List and *Object. Object is an insertion-ordered string map.
// Arbitrary Go input (map[string]any, []any, plain scalars) is converted
// through Normalize, which also strips the guarded prototype keys from input
// so attacker-controlled values cannot smuggle them into the tree.
//
// # Paths
//
// Paths are dot-separated segments ("user.profile.name"); numeric segments
// index into List values 0-based. The segments __proto__, prototype and
// constructor are rejected with ForbiddenKeyError.
//
// # Subscriptions
//
// Subscribe registers a global listener fired on every commit; SubscribePath
// scopes a listener to one exact path, or to the wildcard "*" which fires for
// whole-tree commits (Set, Merge, batch flushes). Listeners run synchronously
// on the writer's stack over a snapshot of the listener list, so a listener
// may unsubscribe itself or others mid-emission without skipping peers.
//
// # Batching
//
// Batch coalesces all writes inside it into a single wildcard emission.
// Transaction keeps per-path emissions but makes the group atomic: if the
// body returns an error, panics, or a validator rejects the result, the tree
// is restored to its pre-transaction snapshot and nothing is emitted. The two
// strategies are intentionally asymmetric.
//
// Store is not safe for concurrent use. Like the rest of the toolkit it is
// confined to a single goroutine; writers that live on other goroutines must
// hand their updates to the owning one.
package state
