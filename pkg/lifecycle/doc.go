// Package lifecycle provides the ownership and disposal primitive every
// component participates in.
//
// A Node owns cleanup callbacks registered with Own and child nodes
// attached with Add. Destroy tears the subtree down depth-first: children
// first, then the node's own disposers in insertion order, each isolated so
// one failure cannot block the rest. Destroy is idempotent; the internal
// lists are drained on the first call.
//
// Subscriptions registered through a node's Own are removed by the time the
// node is destroyed, so a destroyed component's listeners can never fire.
package lifecycle
