package builtin

import (
	"fmt"
	"io"
	"strings"

	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/printer"
	"github.com/lumen-lang/lumen/internal/value"
)

func registerStringPrint(r *Registry, stdout io.Writer) {
	r.Register(&Primitive{
		Name:          "pr-str",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			return value.String(joinWith(args, printer.Repr, " ")), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "str",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			return value.String(joinWith(args, printer.Readable, "")), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "prn",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			fmt.Fprintln(stdout, joinWith(args, printer.Repr, " "))
			return value.NilValue, nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "println",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			fmt.Fprintln(stdout, joinWith(args, printer.Readable, " "))
			return value.NilValue, nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "string?",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("string?", args, 1, 1); err != nil {
				return nil, nil, err
			}
			s, ok := args[0].(value.String)
			return value.Bool(ok && !value.IsKeyword(s)), nil, nil
		},
	})
}

func joinWith(args []value.Value, render func(value.Value) string, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = render(a)
	}
	return strings.Join(parts, sep)
}
