package builtin

import (
	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/evalerr"
	"github.com/lumen-lang/lumen/internal/ioreader"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/parser"
	"github.com/lumen-lang/lumen/internal/value"
)

func registerMeta(r *Registry, host Host) {
	// eval tail-calls its argument into the root of the current chain,
	// per the adopted resolution of the eval-environment open question.
	r.Register(&Primitive{
		Name:          "eval",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("eval", args, 1, 1); err != nil {
				return nil, nil, err
			}
			return nil, &TailCall{AST: args[0], Env: e.Root()}, nil
		},
	})

	r.Register(&Primitive{
		Name:          "read-string",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("read-string", args, 1, 1); err != nil {
				return nil, nil, err
			}
			s, err := asString("read-string", args[0])
			if err != nil {
				return nil, nil, err
			}

			v, err := ReadOneForm(string(s))
			if err != nil {
				return nil, nil, &evalerr.CustomException{Value: value.String(err.Error())}
			}
			return v, nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "slurp",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("slurp", args, 1, 1); err != nil {
				return nil, nil, err
			}
			path, err := asString("slurp", args[0])
			if err != nil {
				return nil, nil, err
			}
			contents, ok := host.Slurp(string(path))
			if !ok {
				return value.NilValue, nil, nil
			}
			return value.String(contents), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "readline",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("readline", args, 0, 1); err != nil {
				return nil, nil, err
			}
			prompt := ""
			if len(args) == 1 {
				s, err := asString("readline", args[0])
				if err != nil {
					return nil, nil, err
				}
				prompt = string(s)
			}
			line, ok := host.ReadLine(prompt)
			if !ok {
				return value.NilValue, nil, nil
			}
			return value.String(line), nil, nil
		},
	})

	r.Register(&Primitive{
		Name:          "get-argv",
		EvaluatesArgs: true,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("get-argv", args, 0, 0); err != nil {
				return nil, nil, err
			}
			argv := host.Argv()
			out := make([]value.Value, len(argv))
			for i, a := range argv {
				out[i] = value.String(a)
			}
			return value.List(out), nil, nil
		},
	})
}

// ReadOneForm parses exactly one top-level form from text, the way
// read-string needs to. internal/host's startup loader does not use it: it
// reads every form of its file through its own parser.
func ReadOneForm(text string) (value.Value, error) {
	rd := ioreader.New(ioreader.NewStringSource(text))
	l := lexer.New(rd)
	tCh, doneCh := l.Tokens()
	p := parser.New(tCh, doneCh)
	defer p.Close()
	return p.ReadForm(false)
}
