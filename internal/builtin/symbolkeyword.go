package builtin

import (
	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/value"
)

func registerSymbolKeyword(r *Registry) {
	r.Register(&Primitive{
		Name:          "symbol",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("symbol", args, 1, 1); err != nil {
				return nil, nil, err
			}
			s, err := asString("symbol", args[0])
			if err != nil {
				return nil, nil, err
			}
			return value.Symbol(string(s)), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "symbol?",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("symbol?", args, 1, 1); err != nil {
				return nil, nil, err
			}
			_, ok := args[0].(value.Symbol)
			return value.Bool(ok), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "keyword",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("keyword", args, 1, 1); err != nil {
				return nil, nil, err
			}
			s, err := asString("keyword", args[0])
			if err != nil {
				return nil, nil, err
			}
			if value.IsKeyword(s) {
				return s, nil, nil
			}
			return value.NewKeyword(string(s)), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "keyword?",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("keyword?", args, 1, 1); err != nil {
				return nil, nil, err
			}
			s, ok := args[0].(value.String)
			return value.Bool(ok && value.IsKeyword(s)), nil, nil
		},
	})
}
