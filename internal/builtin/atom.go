package builtin

import (
	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/value"
)

func registerAtom(r *Registry) {
	r.Register(&Primitive{
		Name:          "atom",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("atom", args, 1, 1); err != nil {
				return nil, nil, err
			}
			return value.NewAtom(args[0]), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "atom?",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("atom?", args, 1, 1); err != nil {
				return nil, nil, err
			}
			_, ok := args[0].(*value.Atom)
			return value.Bool(ok), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "deref",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("deref", args, 1, 1); err != nil {
				return nil, nil, err
			}
			a, err := asAtom("deref", args[0])
			if err != nil {
				return nil, nil, err
			}
			return a.Value, nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "reset!",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("reset!", args, 2, 2); err != nil {
				return nil, nil, err
			}
			a, err := asAtom("reset!", args[0])
			if err != nil {
				return nil, nil, err
			}
			a.Value = args[1]
			return a.Value, nil, nil
		},
	})

	// swap! reads the atom's current value, releases any borrow on it
	// (there is none in this single-threaded interpreter, but the read
	// happens before the call per spec.md's resource model), applies fn to
	// that value plus any extra arguments, then writes and returns the
	// result. Re-entrant swap! on the same atom from within fn is
	// last-writer-wins, per spec.
	r.Register(&Primitive{
		Name:          "swap!",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("swap!", args, 2, -1); err != nil {
				return nil, nil, err
			}
			a, err := asAtom("swap!", args[0])
			if err != nil {
				return nil, nil, err
			}
			fnArgs := make([]value.Value, 0, len(args)-1)
			fnArgs = append(fnArgs, a.Value)
			fnArgs = append(fnArgs, args[2:]...)
			result, err := ev.Apply(args[1], fnArgs, e)
			if err != nil {
				return nil, nil, err
			}
			a.Value = result
			return result, nil, nil
		},
	})
}
