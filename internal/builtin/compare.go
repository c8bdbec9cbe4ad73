package builtin

import (
	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/value"
)

func registerComparison(r *Registry) {
	r.Register(comparePrim("<", func(a, b int64) bool { return a < b }))
	r.Register(comparePrim("<=", func(a, b int64) bool { return a <= b }))
	r.Register(comparePrim(">", func(a, b int64) bool { return a > b }))
	r.Register(comparePrim(">=", func(a, b int64) bool { return a >= b }))

	r.Register(&Primitive{
		Name:          "=",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("=", args, 2, 2); err != nil {
				return nil, nil, err
			}
			return value.Bool(value.Equal(args[0], args[1])), nil, nil
		},
	})
}

func comparePrim(name string, op func(a, b int64) bool) *Primitive {
	return &Primitive{
		Name:          name,
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount(name, args, 2, 2); err != nil {
				return nil, nil, err
			}
			a, err := asInt(name, args[0])
			if err != nil {
				return nil, nil, err
			}
			b, err := asInt(name, args[1])
			if err != nil {
				return nil, nil, err
			}
			return value.Bool(op(int64(a), int64(b))), nil, nil
		},
	}
}
