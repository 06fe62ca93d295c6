package state

import (
	"maps"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/go-canopy/canopy/pkg/errors"
)

// DefineExprComputed is DefineComputed with the derivation written as an
// expression instead of a Go function. vars maps expression variable names
// to the dependency paths whose values they carry:
//
//	store.DefineExprComputed("cart.total", map[string]string{
//	    "items": "cart.items",
//	    "tax":   "config.taxRate",
//	}, "sum(map(items, .price)) * (1 + tax)")
//
// The expression is compiled once at registration; evaluation errors are
// reported to the error handler and leave the target unchanged.
func (s *Store) DefineExprComputed(target string, vars map[string]string, src string) error {
	program, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return err
	}

	names := slices.Sorted(maps.Keys(vars))
	deps := make([]string, len(names))
	for i, n := range names {
		deps[i] = vars[n]
	}

	return s.DefineComputed(target, deps, func(vals []Value) Value {
		env := make(map[string]any, len(names))
		for i, n := range names {
			env[n] = ToGo(vals[i])
		}
		out, err := runProgram(program, env)
		if err != nil {
			errors.Report(&errors.CanopyError{
				Op:   "state.exprComputed",
				Kind: errors.KindCompute,
				Path: target,
				Err:  err,
			})
			return nil
		}
		v, err := Normalize(out)
		if err != nil {
			errors.Report(&errors.CanopyError{
				Op:   "state.exprComputed",
				Kind: errors.KindCompute,
				Path: target,
				Err:  err,
			})
			return nil
		}
		return v
	})
}

func runProgram(program *vm.Program, env map[string]any) (any, error) {
	return expr.Run(program, env)
}
