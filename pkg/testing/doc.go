// Package testing provides helpers for testing code built on the toolkit.
//
// Recorder subscribes to a store and records every emission it observes,
// so tests can assert on notification order and payloads without wiring
// ad-hoc callbacks.
package testing
