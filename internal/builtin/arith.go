package builtin

import (
	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/evalerr"
	"github.com/lumen-lang/lumen/internal/value"
)

func registerArithmetic(r *Registry) {
	r.Register(arithPrim("+", func(a, b int64) int64 { return a + b }))
	r.Register(arithPrim("-", func(a, b int64) int64 { return a - b }))
	r.Register(arithPrim("*", func(a, b int64) int64 { return a * b }))
	r.Register(divisionPrim())
}

func divisionPrim() *Primitive {
	return &Primitive{
		Name:          "/",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("/", args, 2, 2); err != nil {
				return nil, nil, err
			}
			a, err := asInt("/", args[0])
			if err != nil {
				return nil, nil, err
			}
			b, err := asInt("/", args[1])
			if err != nil {
				return nil, nil, err
			}
			if b == 0 {
				return nil, nil, &evalerr.TypeError{Context: "/", Expected: "non-zero divisor", Got: args[1]}
			}
			return value.Int(int64(a) / int64(b)), nil, nil
		},
	}
}

func arithPrim(name string, op func(a, b int64) int64) *Primitive {
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
			return value.Int(op(int64(a), int64(b))), nil, nil
		},
	}
}
