package snapshot

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/go-canopy/canopy/pkg/state"
)

func tree(t *testing.T, in any) state.Value {
	t.Helper()
	v, err := state.Normalize(in)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	return v
}

func TestYAMLRoundTrip(t *testing.T) {
	v := tree(t, map[string]any{
		"name":  "canopy",
		"count": 3,
		"ratio": 0.5,
		"tags":  []any{"a", "b"},
		"meta":  map[string]any{"ok": true, "note": nil},
	})

	data, err := EncodeYAML(v)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}
	back, err := DecodeYAML(data)
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	if !state.Equal(v, back) {
		t.Errorf("round trip mismatch:\n%s", data)
	}
}

func TestYAMLPreservesOrder(t *testing.T) {
	o := state.NewObject()
	o.Set("zebra", int64(1))
	o.Set("alpha", int64(2))
	o.Set("mid", int64(3))

	data, err := EncodeYAML(o)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}
	s := string(data)
	if !(strings.Index(s, "zebra") < strings.Index(s, "alpha") && strings.Index(s, "alpha") < strings.Index(s, "mid")) {
		t.Errorf("insertion order lost:\n%s", s)
	}

	back, err := DecodeYAML(data)
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	keys := back.(*state.Object).Keys()
	want := []string{"zebra", "alpha", "mid"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("decoded order %v, want %v", keys, want)
		}
	}
}

func TestYAMLDropsGuardedKeys(t *testing.T) {
	back, err := DecodeYAML([]byte("__proto__: {x: 1}\nok: 2\n"))
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	o := back.(*state.Object)
	if _, ok := o.Get("__proto__"); ok {
		t.Error("guarded key must be dropped on decode")
	}
	if v, _ := o.Get("ok"); v != int64(2) {
		t.Errorf("expected ok=2, got %v", v)
	}
}

func TestJSONRoundTripOrdered(t *testing.T) {
	o := state.NewObject()
	o.Set("b", int64(1))
	o.Set("a", state.List{int64(1), "two", nil, true})
	inner := state.NewObject()
	inner.Set("z", 1.25)
	o.Set("obj", inner)

	data, err := EncodeJSON(o)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	want := `{"b":1,"a":[1,"two",null,true],"obj":{"z":1.25}}`
	if string(data) != want {
		t.Errorf("encoded %s, want %s", data, want)
	}

	back, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if !state.Equal(o, back) {
		t.Error("round trip mismatch")
	}
	keys := back.(*state.Object).Keys()
	if keys[0] != "b" || keys[1] != "a" || keys[2] != "obj" {
		t.Errorf("decoded order %v", keys)
	}
}

func TestJSONDecodeOverflowingInteger(t *testing.T) {
	back, err := DecodeJSON([]byte(`{"n":123456789012345678901234567890}`))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	v, _ := back.(*state.Object).Get("n")
	f, ok := v.(float64)
	if !ok {
		t.Fatalf("expected a float64 fallback for an integer wider than int64, got %T", v)
	}
	if f < 1.234e29 || f > 1.235e29 {
		t.Errorf("unexpected value %v", f)
	}
}

func TestJSONDecodeRejectsTrailing(t *testing.T) {
	if _, err := DecodeJSON([]byte(`{"a":1} {"b":2}`)); err == nil {
		t.Error("expected an error for trailing data")
	}
}

func TestMergePatchRoundTrip(t *testing.T) {
	a := tree(t, map[string]any{"name": "old", "keep": 1, "drop": true})
	b := tree(t, map[string]any{"name": "new", "keep": 1})

	patch, err := CreateMergePatch(a, b)
	if err != nil {
		t.Fatalf("CreateMergePatch: %v", err)
	}
	got, err := ApplyMergePatch(a, patch)
	if err != nil {
		t.Fatalf("ApplyMergePatch: %v", err)
	}
	if !state.Equal(got, b) {
		t.Errorf("patched tree mismatch: %s", patch)
	}
}

func TestTextDiff(t *testing.T) {
	a := tree(t, map[string]any{"count": 1})
	b := tree(t, map[string]any{"count": 2})

	diffs, err := TextDiff(a, b)
	if err != nil {
		t.Fatalf("TextDiff: %v", err)
	}
	var sawInsert, sawDelete bool
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			sawInsert = true
		case diffmatchpatch.DiffDelete:
			sawDelete = true
		}
	}
	if !sawInsert || !sawDelete {
		t.Errorf("expected both an insert and a delete, got %v", diffs)
	}
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	v := tree(t, map[string]any{"a": 1, "b": []any{"x"}})

	for _, name := range []string{"snap.yaml", "snap.json"} {
		path := filepath.Join(dir, name)
		if err := Save(path, v); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		back, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		if !state.Equal(v, back) {
			t.Errorf("%s: round trip mismatch", name)
		}
	}

	if err := Save(filepath.Join(dir, "snap.txt"), v); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}
