// Package evaluator implements the trampolining tree-walking interpreter:
// Eval dispatches on a value.Value, apply calls a FunctionPtr or Lambda, and
// both feed a loop that consumes tail-call requests instead of recursing so
// host-stack depth never grows with the number of language-level tail
// calls. Grounded on the original Rust implementation's eval_funcall /
// FunctionCallResultSuccess::{Value,TailCall} trampoline and, for the Go
// type-switch dispatch idiom, on copper's evaluator.Evaluator.eval.
package evaluator

import (
	"github.com/lumen-lang/lumen/internal/builtin"
	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/evalerr"
	"github.com/lumen-lang/lumen/internal/value"
)

// Evaluator holds no state of its own beyond an optional trace hook; it
// exists as a receiver so primitives can re-enter evaluation through the
// builtin.Evaluator interface without this package and internal/builtin
// importing each other.
type Evaluator struct {
	// Trace, if set, is called once per trampoline bounce, that is, once
	// for each non-empty list form Eval applies, whether its head is a
	// primitive or a lambda. It exists so cmd/lumen can log --trace
	// output through logrus without this package importing a logger
	// itself.
	Trace func(ast value.Value, e *env.Env)
}

// New returns an Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Eval evaluates ast against e, running the trampoline loop until a special
// form or function application yields a final value rather than another
// tail-call request.
func (ev *Evaluator) Eval(ast value.Value, e *env.Env) (value.Value, error) {
	for {
		list, isList := ast.(value.List)
		if !isList {
			return ev.evalAtom(ast, e)
		}
		if len(list) == 0 {
			return list, nil
		}
		if ev.Trace != nil {
			ev.Trace(ast, e)
		}

		v, tail, err := ev.evalList(list, e)
		if err != nil {
			return nil, err
		}
		if tail == nil {
			return v, nil
		}
		ast, e = tail.AST, tail.Env
	}
}

// Apply invokes fn (already evaluated, a FunctionPtr or *Lambda) on args
// (already evaluated) and runs to a final value. swap! uses this to call
// its function argument without re-evaluating already-concrete arguments
// through eval's argument-evaluation path, which would misinterpret list-
// shaped data as a nested call.
func (ev *Evaluator) Apply(fn value.Value, args []value.Value, e *env.Env) (value.Value, error) {
	switch h := fn.(type) {
	case value.FunctionPtr:
		prim := primitiveOf(h)
		v, tail, err := prim.Run(args, e, ev)
		if err != nil {
			return nil, err
		}
		if tail != nil {
			return ev.Eval(tail.AST, tail.Env)
		}
		return v, nil
	case *value.Lambda:
		newEnv, err := bindLambdaArgs(h, args)
		if err != nil {
			return nil, err
		}
		if !h.IsMacro {
			return ev.Eval(h.Body, newEnv)
		}
		expanded, err := ev.Eval(h.Body, newEnv)
		if err != nil {
			return nil, err
		}
		return ev.Eval(expanded, e)
	default:
		return nil, &evalerr.InvalidFunctionCallNodeType{Value: fn}
	}
}

func (ev *Evaluator) evalAtom(v value.Value, e *env.Env) (value.Value, error) {
	switch n := v.(type) {
	case value.Symbol:
		return ev.lookup(string(n), e)
	case value.Vector:
		out := make(value.Vector, len(n))
		for i, el := range n {
			r, err := ev.Eval(el, e)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	case value.HashMap:
		out := make(value.HashMap, len(n))
		for k, val := range n {
			r, err := ev.Eval(val, e)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	default:
		// Int, String, Bool, Nil, FunctionPtr, *Lambda, *Atom: self-evaluating.
		return v, nil
	}
}

func (ev *Evaluator) lookup(name string, e *env.Env) (value.Value, error) {
	entry, ok := e.Find(name)
	if !ok {
		return nil, &evalerr.SymbolNotFound{Name: name}
	}
	if entry.IsPrimitive {
		return value.FunctionPtr{Name: entry.Name, Entry: entry}, nil
	}
	bound, _ := entry.Value.(value.Value)
	return bound, nil
}

// evalList implements apply: evaluate the head, then either invoke a
// primitive (evaluating arguments first unless the primitive opts out) or
// bind a Lambda's parameters and hand back a tail-call into its body.
func (ev *Evaluator) evalList(list value.List, e *env.Env) (value.Value, *builtin.TailCall, error) {
	head, err := ev.Eval(list[0], e)
	if err != nil {
		return nil, nil, err
	}
	rawArgs := list[1:]

	switch h := head.(type) {
	case value.FunctionPtr:
		prim := primitiveOf(h)

		var args []value.Value
		if prim.EvaluatesArgs {
			args = make([]value.Value, len(rawArgs))
			for i, a := range rawArgs {
				v, err := ev.Eval(a, e)
				if err != nil {
					return nil, nil, err
				}
				args[i] = v
			}
		} else {
			args = rawArgs
		}

		return prim.Run(args, e, ev)

	case *value.Lambda:
		args := make([]value.Value, len(rawArgs))
		for i, a := range rawArgs {
			v, err := ev.Eval(a, e)
			if err != nil {
				return nil, nil, err
			}
			args[i] = v
		}

		newEnv, err := bindLambdaArgs(h, args)
		if err != nil {
			return nil, nil, err
		}

		if !h.IsMacro {
			return nil, &builtin.TailCall{AST: h.Body, Env: newEnv}, nil
		}

		expanded, err := ev.Eval(h.Body, newEnv)
		if err != nil {
			return nil, nil, err
		}
		return nil, &builtin.TailCall{AST: expanded, Env: e}, nil

	default:
		return nil, nil, &evalerr.InvalidFunctionCallNodeType{Value: head}
	}
}

func primitiveOf(fp value.FunctionPtr) *builtin.Primitive {
	return fp.Entry.Value.(*builtin.Primitive)
}

// bindLambdaArgs creates a child of l's captured environment and binds its
// formals to args, consuming the rest parameter (if any) as a List of the
// remaining evaluated arguments.
func bindLambdaArgs(l *value.Lambda, args []value.Value) (*env.Env, error) {
	min := len(l.Params)
	max := min
	if l.HasRest {
		max = -1
	}
	if len(args) < min || (max >= 0 && len(args) > max) {
		return nil, &evalerr.ParameterCountError{Name: "#<function>", Min: min, Max: max, Got: len(args)}
	}

	child := env.NewChild(l.Env)
	for i, name := range l.Params {
		child.Set(&env.Entry{Name: name, Value: args[i]})
	}
	if l.HasRest {
		child.Set(&env.Entry{Name: l.Rest, Value: value.List(append([]value.Value{}, args[len(l.Params):]...))})
	}
	return child, nil
}
