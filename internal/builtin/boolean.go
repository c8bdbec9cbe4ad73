package builtin

import (
	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/value"
)

func registerBoolean(r *Registry) {
	r.Register(boolPrim("and", func(a, b bool) bool { return a && b }))
	r.Register(boolPrim("or", func(a, b bool) bool { return a || b }))
	r.Register(boolPrim("nand", func(a, b bool) bool { return !(a && b) }))
	r.Register(boolPrim("nor", func(a, b bool) bool { return !(a || b) }))
	r.Register(boolPrim("xor", func(a, b bool) bool { return a != b }))

	r.Register(&Primitive{
		Name:          "not",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("not", args, 1, 1); err != nil {
				return nil, nil, err
			}
			return value.Bool(!value.IsTruthy(args[0])), nil, nil
		},
	})
}

func boolPrim(name string, op func(a, b bool) bool) *Primitive {
	return &Primitive{
		Name:          name,
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount(name, args, 2, 2); err != nil {
				return nil, nil, err
			}
			a, err := asBool(name, args[0])
			if err != nil {
				return nil, nil, err
			}
			b, err := asBool(name, args[1])
			if err != nil {
				return nil, nil, err
			}
			return value.Bool(op(bool(a), bool(b))), nil, nil
		},
	}
}
