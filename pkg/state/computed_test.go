package state

import (
	"errors"
	"testing"
)

func TestComputedInitialAndRecompute(t *testing.T) {
	s := mustStore(t, map[string]any{"a": 2, "b": 3})

	err := s.DefineComputed("sum", []string{"a", "b"}, func(vals []Value) Value {
		return vals[0].(int64) + vals[1].(int64)
	})
	if err != nil {
		t.Fatalf("DefineComputed: %v", err)
	}

	if v, _ := s.GetPath("sum"); v != int64(5) {
		t.Errorf("expected initial computation 5, got %v", v)
	}

	if err := s.SetPath("a", 10); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	if v, _ := s.GetPath("sum"); v != int64(13) {
		t.Errorf("expected recomputed 13, got %v", v)
	}
}

func TestComputedIsObservable(t *testing.T) {
	s := mustStore(t, map[string]any{"n": 1})

	if err := s.DefineComputed("double", []string{"n"}, func(vals []Value) Value {
		return vals[0].(int64) * 2
	}); err != nil {
		t.Fatalf("DefineComputed: %v", err)
	}

	var seen []Value
	s.SubscribePath("double", func(value, _ Value, _ string) { seen = append(seen, value) })

	if err := s.SetPath("n", 4); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	if len(seen) != 1 || seen[0] != int64(8) {
		t.Errorf("computed writes must flow through normal emission, got %v", seen)
	}
}

func TestComputedChain(t *testing.T) {
	s := mustStore(t, map[string]any{"n": 1})

	s.DefineComputed("a", []string{"n"}, func(vals []Value) Value {
		return vals[0].(int64) + 1
	})
	s.DefineComputed("b", []string{"a"}, func(vals []Value) Value {
		return vals[0].(int64) * 10
	})

	if err := s.SetPath("n", 5); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	if v, _ := s.GetPath("a"); v != int64(6) {
		t.Errorf("expected a=6, got %v", v)
	}
	if v, _ := s.GetPath("b"); v != int64(60) {
		t.Errorf("expected b=60, got %v", v)
	}
}

func TestComputedCycleRejected(t *testing.T) {
	s := mustStore(t, map[string]any{"x": 1})

	err := s.DefineComputed("x", []string{"x"}, func(vals []Value) Value { return vals[0] })
	var cycle *ComputeCycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("expected ComputeCycleError for a self-dependency, got %v", err)
	}

	// Mutual cycle through an intermediate definition.
	if err := s.DefineComputed("p", []string{"q"}, func(vals []Value) Value { return vals[0] }); err != nil {
		t.Fatalf("DefineComputed p: %v", err)
	}
	err = s.DefineComputed("q", []string{"p"}, func(vals []Value) Value { return vals[0] })
	if !errors.As(err, &cycle) {
		t.Fatalf("expected ComputeCycleError for a mutual cycle, got %v", err)
	}
}

func TestComputedRedefinitionRejected(t *testing.T) {
	s := mustStore(t, map[string]any{"n": 1})

	id := func(vals []Value) Value { return vals[0] }
	if err := s.DefineComputed("c", []string{"n"}, id); err != nil {
		t.Fatalf("DefineComputed: %v", err)
	}
	err := s.DefineComputed("c", []string{"n"}, id)
	var redef *ComputeRedefinedError
	if !errors.As(err, &redef) {
		t.Fatalf("expected ComputeRedefinedError, got %v", err)
	}
}

func TestComputedGuardedTargetRejected(t *testing.T) {
	s := mustStore(t, map[string]any{"n": 1})
	err := s.DefineComputed("__proto__.c", []string{"n"}, func(vals []Value) Value { return vals[0] })
	var fk *ForbiddenKeyError
	if !errors.As(err, &fk) {
		t.Fatalf("expected ForbiddenKeyError, got %v", err)
	}
}

func TestComputedPanicIsolated(t *testing.T) {
	s := mustStore(t, map[string]any{"n": 1})

	s.DefineComputed("bad", []string{"n"}, func(vals []Value) Value {
		panic("compute boom")
	})

	// The panic is reported, not propagated, and the write is skipped.
	if err := s.SetPath("n", 2); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	if v, _ := s.GetPath("n"); v != int64(2) {
		t.Errorf("the triggering write must still land, got %v", v)
	}
}

func TestExprComputed(t *testing.T) {
	s := mustStore(t, map[string]any{
		"price": 10,
		"qty":   3,
	})

	err := s.DefineExprComputed("total", map[string]string{
		"price": "price",
		"qty":   "qty",
	}, "price * qty")
	if err != nil {
		t.Fatalf("DefineExprComputed: %v", err)
	}

	if v, _ := s.GetPath("total"); !Equal(v, int64(30)) {
		t.Errorf("expected 30, got %v", v)
	}

	if err := s.SetPath("qty", 5); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	if v, _ := s.GetPath("total"); !Equal(v, int64(50)) {
		t.Errorf("expected recomputed 50, got %v", v)
	}
}

func TestExprComputedCompileError(t *testing.T) {
	s := mustStore(t, map[string]any{"n": 1})
	if err := s.DefineExprComputed("t", map[string]string{"n": "n"}, "n +"); err == nil {
		t.Error("expected a compile error for a malformed expression")
	}
}
