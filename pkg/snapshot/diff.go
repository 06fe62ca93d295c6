package snapshot

import (
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/go-canopy/canopy/pkg/state"
)

// CreateMergePatch computes the RFC 7386 merge patch that transforms a
// into b, as JSON bytes.
func CreateMergePatch(a, b state.Value) ([]byte, error) {
	aj, err := EncodeJSON(a)
	if err != nil {
		return nil, err
	}
	bj, err := EncodeJSON(b)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(aj, bj)
}

// ApplyMergePatch applies an RFC 7386 merge patch to v and returns the
// patched tree.
func ApplyMergePatch(v state.Value, patch []byte) (state.Value, error) {
	doc, err := EncodeJSON(v)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return nil, err
	}
	return DecodeJSON(out)
}

// TextDiff returns a semantic character diff between the YAML renderings
// of a and b, for human consumption.
func TextDiff(a, b state.Value) ([]diffmatchpatch.Diff, error) {
	ay, err := EncodeYAML(a)
	if err != nil {
		return nil, err
	}
	by, err := EncodeYAML(b)
	if err != nil {
		return nil, err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(ay), string(by), false)
	return dmp.DiffCleanupSemantic(diffs), nil
}
