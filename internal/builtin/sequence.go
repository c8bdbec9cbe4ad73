package builtin

import (
	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/evalerr"
	"github.com/lumen-lang/lumen/internal/value"
)

func registerSequence(r *Registry) {
	r.Register(&Primitive{
		Name:          "list",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			return value.List(append([]value.Value{}, args...)), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "list?",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("list?", args, 1, 1); err != nil {
				return nil, nil, err
			}
			_, ok := args[0].(value.List)
			return value.Bool(ok), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "vector?",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("vector?", args, 1, 1); err != nil {
				return nil, nil, err
			}
			_, ok := args[0].(value.Vector)
			return value.Bool(ok), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "vec",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("vec", args, 1, 1); err != nil {
				return nil, nil, err
			}
			items, err := asSeq("vec", args[0])
			if err != nil {
				return nil, nil, err
			}
			return value.Vector(append([]value.Value{}, items...)), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "count",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("count", args, 1, 1); err != nil {
				return nil, nil, err
			}
			if _, ok := args[0].(value.Nil); ok {
				return value.Int(0), nil, nil
			}
			items, err := asSeq("count", args[0])
			if err != nil {
				return nil, nil, err
			}
			return value.Int(len(items)), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "nth",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("nth", args, 2, 2); err != nil {
				return nil, nil, err
			}
			items, err := asSeq("nth", args[0])
			if err != nil {
				return nil, nil, err
			}
			idx, err := asInt("nth", args[1])
			if err != nil {
				return nil, nil, err
			}
			if idx < 0 || int(idx) >= len(items) {
				return nil, nil, &evalerr.TypeError{Context: "nth", Expected: "index in range", Got: args[1]}
			}
			return items[idx], nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "rest",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("rest", args, 1, 1); err != nil {
				return nil, nil, err
			}
			if _, ok := args[0].(value.Nil); ok {
				return value.List{}, nil, nil
			}
			items, err := asSeq("rest", args[0])
			if err != nil {
				return nil, nil, err
			}
			if len(items) == 0 {
				return value.List{}, nil, nil
			}
			return value.List(append([]value.Value{}, items[1:]...)), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "cons",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("cons", args, 2, 2); err != nil {
				return nil, nil, err
			}
			items, err := asSeq("cons", args[1])
			if err != nil {
				return nil, nil, err
			}
			out := make([]value.Value, 0, len(items)+1)
			out = append(out, args[0])
			out = append(out, items...)
			return value.List(out), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "concat",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			var out []value.Value
			for _, a := range args {
				items, err := asSeq("concat", a)
				if err != nil {
					return nil, nil, err
				}
				out = append(out, items...)
			}
			return value.List(out), nil, nil
		},
	})
}
