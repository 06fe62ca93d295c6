// Package snapshot serializes state trees to YAML and JSON and diffs them.
//
// Both codecs preserve key order: YAML goes through yaml.Node so document
// order survives a round trip, and the JSON codec walks tokens by hand for
// the same reason. Guarded prototype keys are dropped on decode, matching
// what the store accepts.
//
// Diffing comes in two flavors: RFC 7386 merge patches for machine
// consumption and a character-level text diff of the YAML renderings for
// humans.
package snapshot
