package builtin

import (
	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/value"
)

func registerReflection(r *Registry) {
	r.Register(&Primitive{
		Name:          "number?",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("number?", args, 1, 1); err != nil {
				return nil, nil, err
			}
			_, ok := args[0].(value.Int)
			return value.Bool(ok), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "fn?",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("fn?", args, 1, 1); err != nil {
				return nil, nil, err
			}
			switch v := args[0].(type) {
			case value.FunctionPtr:
				return value.Bool(true), nil, nil
			case *value.Lambda:
				return value.Bool(!v.IsMacro), nil, nil
			default:
				return value.Bool(false), nil, nil
			}
		},
	})

	r.Register(&Primitive{
		Name:          "macro?",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("macro?", args, 1, 1); err != nil {
				return nil, nil, err
			}
			l, ok := args[0].(*value.Lambda)
			return value.Bool(ok && l.IsMacro), nil, nil
		},
	})
}
