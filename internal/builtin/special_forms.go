package builtin

import (
	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/evalerr"
	"github.com/lumen-lang/lumen/internal/value"
)

func registerSpecialForms(r *Registry) {
	r.Register(defBangPrim())
	r.Register(letStarPrim())
	r.Register(ifPrim())
	r.Register(doPrim())
	r.Register(fnStarPrim())
	r.Register(defmacroBangPrim())
	r.Register(quotePrim())
	r.Register(quasiquotePrim())
	r.Register(tryStarPrim())
	r.Register(throwPrim())
}

func defBangPrim() *Primitive {
	return &Primitive{
		Name:          "def!",
		EvaluatesArgs: false,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("def!", args, 2, 2); err != nil {
				return nil, nil, err
			}
			sym, err := asSymbol("def!", args[0])
			if err != nil {
				return nil, nil, err
			}
			v, err := ev.Eval(args[1], e)
			if err != nil {
				return nil, nil, err
			}
			e.Root().Set(&env.Entry{Name: string(sym), Value: v})
			return v, nil, nil
		},
	}
}

func letStarPrim() *Primitive {
	return &Primitive{
		Name:          "let*",
		EvaluatesArgs: false,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("let*", args, 2, 2); err != nil {
				return nil, nil, err
			}
			bindings, err := asSeq("let*", args[0])
			if err != nil {
				return nil, nil, err
			}
			if len(bindings)%2 != 0 {
				return nil, nil, &evalerr.TypeError{Context: "let*", Expected: "an even number of binding forms", Got: args[0]}
			}

			child := env.NewChild(e)
			for i := 0; i < len(bindings); i += 2 {
				name, err := asSymbol("let*", bindings[i])
				if err != nil {
					return nil, nil, err
				}
				v, err := ev.Eval(bindings[i+1], child)
				if err != nil {
					return nil, nil, err
				}
				child.Set(&env.Entry{Name: string(name), Value: v})
			}

			return nil, &TailCall{AST: args[1], Env: child}, nil
		},
	}
}

func ifPrim() *Primitive {
	return &Primitive{
		Name:          "if",
		EvaluatesArgs: false,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("if", args, 2, 3); err != nil {
				return nil, nil, err
			}
			cond, err := ev.Eval(args[0], e)
			if err != nil {
				return nil, nil, err
			}
			if value.IsTruthy(cond) {
				return nil, &TailCall{AST: args[1], Env: e}, nil
			}
			if len(args) == 3 {
				return nil, &TailCall{AST: args[2], Env: e}, nil
			}
			return value.NilValue, nil, nil
		},
	}
}

func doPrim() *Primitive {
	return &Primitive{
		Name:          "do",
		EvaluatesArgs: false,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if len(args) == 0 {
				return value.NilValue, nil, nil
			}
			for _, form := range args[:len(args)-1] {
				if _, err := ev.Eval(form, e); err != nil {
					return nil, nil, err
				}
			}
			return nil, &TailCall{AST: args[len(args)-1], Env: e}, nil
		},
	}
}

func fnStarPrim() *Primitive {
	return &Primitive{
		Name:          "fn*",
		EvaluatesArgs: false,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("fn*", args, 2, 2); err != nil {
				return nil, nil, err
			}
			paramForms, err := asSeq("fn*", args[0])
			if err != nil {
				return nil, nil, err
			}
			params, rest, hasRest, err := parseParams(paramForms)
			if err != nil {
				return nil, nil, err
			}
			return value.NewLambda(params, rest, hasRest, args[1], e), nil, nil
		},
	}
}

// parseParams splits a fn*/defmacro! parameter list into its plain names
// and, if present, the rest-parameter name following '&'. '&' must be the
// second-to-last form.
func parseParams(forms []value.Value) (params []string, rest string, hasRest bool, err error) {
	ampIdx := -1
	names := make([]string, 0, len(forms))
	for i, f := range forms {
		sym, ok := f.(value.Symbol)
		if !ok {
			return nil, "", false, &evalerr.TypeError{Context: "fn*", Expected: "a symbol in the parameter list", Got: f}
		}
		if string(sym) == "&" {
			ampIdx = i
			break
		}
		names = append(names, string(sym))
	}

	if ampIdx == -1 {
		return names, "", false, nil
	}
	if ampIdx != len(forms)-2 {
		return nil, "", false, &evalerr.TypeError{Context: "fn*", Expected: "'&' in the penultimate parameter position", Got: forms[ampIdx]}
	}
	restSym, ok := forms[ampIdx+1].(value.Symbol)
	if !ok {
		return nil, "", false, &evalerr.TypeError{Context: "fn*", Expected: "a symbol after '&'", Got: forms[ampIdx+1]}
	}
	return names, string(restSym), true, nil
}

func defmacroBangPrim() *Primitive {
	return &Primitive{
		Name:          "defmacro!",
		EvaluatesArgs: false,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("defmacro!", args, 2, 2); err != nil {
				return nil, nil, err
			}
			sym, err := asSymbol("defmacro!", args[0])
			if err != nil {
				return nil, nil, err
			}
			v, err := ev.Eval(args[1], e)
			if err != nil {
				return nil, nil, err
			}
			lam, err := asLambda("defmacro!", v)
			if err != nil {
				return nil, nil, err
			}
			macro := lam.AsMacro()
			e.Root().Set(&env.Entry{Name: string(sym), Value: macro})
			return macro, nil, nil
		},
	}
}

func quotePrim() *Primitive {
	return &Primitive{
		Name:          "quote",
		EvaluatesArgs: false,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("quote", args, 1, 1); err != nil {
				return nil, nil, err
			}
			return args[0], nil, nil
		},
	}
}

func quasiquotePrim() *Primitive {
	return &Primitive{
		Name:          "quasiquote",
		EvaluatesArgs: false,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("quasiquote", args, 1, 1); err != nil {
				return nil, nil, err
			}
			v, err := quasiExpand(args[0], e, ev)
			if err != nil {
				return nil, nil, err
			}
			return v, nil, nil
		},
	}
}

// quasiExpand walks x, substituting evaluated unquote forms in place and
// splicing evaluated splice-unquote forms into the surrounding sequence.
// Hash-map values are walked the same way as list/vector elements; splice-
// unquote is not meaningful directly inside a hash-map, so a hash-map value
// that is a splice-unquote form is rejected.
func quasiExpand(x value.Value, e *env.Env, ev Evaluator) (value.Value, error) {
	switch n := x.(type) {
	case value.List:
		if isForm(n, "unquote") {
			return ev.Eval(n[1], e)
		}
		items, err := quasiExpandSeq([]value.Value(n), e, ev)
		if err != nil {
			return nil, err
		}
		return value.List(items), nil
	case value.Vector:
		items, err := quasiExpandSeq([]value.Value(n), e, ev)
		if err != nil {
			return nil, err
		}
		return value.Vector(items), nil
	case value.HashMap:
		out := make(value.HashMap, len(n))
		for k, v := range n {
			if l, ok := v.(value.List); ok && isForm(l, "splice-unquote") {
				return nil, &evalerr.TypeError{Context: "splice-unquote", Expected: "a list or vector context, not a hash-map value", Got: v}
			}
			ev2, err := quasiExpand(v, e, ev)
			if err != nil {
				return nil, err
			}
			out[k] = ev2
		}
		return out, nil
	default:
		return x, nil
	}
}

func quasiExpandSeq(items []value.Value, e *env.Env, ev Evaluator) ([]value.Value, error) {
	var out []value.Value
	for _, item := range items {
		if l, ok := item.(value.List); ok && isForm(l, "splice-unquote") {
			spliced, err := ev.Eval(l[1], e)
			if err != nil {
				return nil, err
			}
			elems, ok := spliced.(value.List)
			if !ok {
				return nil, &evalerr.TypeError{Context: "splice-unquote", Expected: "a list", Got: spliced}
			}
			out = append(out, []value.Value(elems)...)
			continue
		}

		expanded, err := quasiExpand(item, e, ev)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	return out, nil
}

func isForm(l value.List, head string) bool {
	if len(l) != 2 {
		return false
	}
	sym, ok := l[0].(value.Symbol)
	return ok && string(sym) == head
}

func tryStarPrim() *Primitive {
	return &Primitive{
		Name:          "try*",
		EvaluatesArgs: false,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("try*", args, 2, 2); err != nil {
				return nil, nil, err
			}
			catchForm, ok := args[1].(value.List)
			if !ok || len(catchForm) != 3 {
				return nil, nil, &evalerr.TypeError{Context: "try*", Expected: "a (catch* sym handler) form", Got: args[1]}
			}
			head, ok := catchForm[0].(value.Symbol)
			if !ok || string(head) != "catch*" {
				return nil, nil, &evalerr.TypeError{Context: "try*", Expected: "a (catch* sym handler) form", Got: args[1]}
			}
			sym, err := asSymbol("try*", catchForm[1])
			if err != nil {
				return nil, nil, err
			}
			handler := catchForm[2]

			v, evalErr := ev.Eval(args[0], e)
			if evalErr == nil {
				return v, nil, nil
			}

			reified, ok := evalerr.Reify(evalErr)
			if !ok {
				return nil, nil, evalErr
			}

			child := env.NewChild(e)
			child.Set(&env.Entry{Name: string(sym), Value: reified})
			return nil, &TailCall{AST: handler, Env: child}, nil
		},
	}
}

func throwPrim() *Primitive {
	return &Primitive{
		Name:          "throw",
		EvaluatesArgs: false,
		Run: func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error) {
			if err := checkArgCount("throw", args, 1, 1); err != nil {
				return nil, nil, err
			}
			v, err := ev.Eval(args[0], e)
			if err != nil {
				return nil, nil, err
			}
			return nil, nil, &evalerr.CustomException{Value: v}
		},
	}
}
