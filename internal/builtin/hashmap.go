package builtin

import (
	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/evalerr"
	"github.com/lumen-lang/lumen/internal/value"
)

func isNil(v value.Value) bool {
	_, ok := v.(value.Nil)
	return ok
}

func registerHashMap(r *Registry) {
	r.Register(&Primitive{
		Name:          "map?",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("map?", args, 1, 1); err != nil {
				return nil, nil, err
			}
			_, ok := args[0].(value.HashMap)
			return value.Bool(ok), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "assoc",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("assoc", args, 1, -1); err != nil {
				return nil, nil, err
			}
			if isNil(args[0]) {
				return value.NilValue, nil, nil
			}
			m, err := asHashMap("assoc", args[0])
			if err != nil {
				return nil, nil, err
			}
			rest := args[1:]
			if len(rest)%2 != 0 {
				return nil, nil, &evalerr.TypeError{Context: "assoc", Expected: "an even number of key/value arguments", Got: args[len(args)-1]}
			}
			out := make(value.HashMap, len(m)+len(rest)/2)
			for k, v := range m {
				out[k] = v
			}
			for i := 0; i < len(rest); i += 2 {
				k, err := asString("assoc", rest[i])
				if err != nil {
					return nil, nil, err
				}
				out[k] = rest[i+1]
			}
			return out, nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "dissoc",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("dissoc", args, 1, -1); err != nil {
				return nil, nil, err
			}
			if isNil(args[0]) {
				return value.NilValue, nil, nil
			}
			m, err := asHashMap("dissoc", args[0])
			if err != nil {
				return nil, nil, err
			}
			out := make(value.HashMap, len(m))
			for k, v := range m {
				out[k] = v
			}
			for _, a := range args[1:] {
				k, err := asString("dissoc", a)
				if err != nil {
					return nil, nil, err
				}
				delete(out, k)
			}
			return out, nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "get",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("get", args, 2, 2); err != nil {
				return nil, nil, err
			}
			if isNil(args[0]) {
				return value.NilValue, nil, nil
			}
			m, err := asHashMap("get", args[0])
			if err != nil {
				return nil, nil, err
			}
			k, err := asString("get", args[1])
			if err != nil {
				return nil, nil, err
			}
			if v, ok := m[k]; ok {
				return v, nil, nil
			}
			return value.NilValue, nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "contains?",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("contains?", args, 2, 2); err != nil {
				return nil, nil, err
			}
			if isNil(args[0]) {
				return value.Bool(false), nil, nil
			}
			m, err := asHashMap("contains?", args[0])
			if err != nil {
				return nil, nil, err
			}
			k, err := asString("contains?", args[1])
			if err != nil {
				return nil, nil, err
			}
			_, ok := m[k]
			return value.Bool(ok), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "keys",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("keys", args, 1, 1); err != nil {
				return nil, nil, err
			}
			if isNil(args[0]) {
				return value.List{}, nil, nil
			}
			m, err := asHashMap("keys", args[0])
			if err != nil {
				return nil, nil, err
			}
			out := make([]value.Value, 0, len(m))
			for k := range m {
				out = append(out, k)
			}
			return value.List(out), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "vals",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("vals", args, 1, 1); err != nil {
				return nil, nil, err
			}
			if isNil(args[0]) {
				return value.List{}, nil, nil
			}
			m, err := asHashMap("vals", args[0])
			if err != nil {
				return nil, nil, err
			}
			out := make([]value.Value, 0, len(m))
			for _, v := range m {
				out = append(out, v)
			}
			return value.List(out), nil, nil
		},
	})
}
