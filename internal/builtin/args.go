package builtin

import (
	"github.com/lumen-lang/lumen/internal/evalerr"
	"github.com/lumen-lang/lumen/internal/value"
)

// checkArgCount enforces a primitive's arity, max < 0 meaning unbounded.
func checkArgCount(name string, args []value.Value, min, max int) error {
	n := len(args)
	if n < min || (max >= 0 && n > max) {
		return &evalerr.ParameterCountError{Name: name, Min: min, Max: max, Got: n}
	}
	return nil
}

// asInt unwraps an Int argument, total over every Value.
func asInt(ctx string, v value.Value) (value.Int, error) {
	n, ok := v.(value.Int)
	if !ok {
		return 0, &evalerr.TypeError{Context: ctx, Expected: "integer", Got: v}
	}
	return n, nil
}

func asBool(ctx string, v value.Value) (value.Bool, error) {
	b, ok := v.(value.Bool)
	if !ok {
		return false, &evalerr.TypeError{Context: ctx, Expected: "boolean", Got: v}
	}
	return b, nil
}

func asString(ctx string, v value.Value) (value.String, error) {
	s, ok := v.(value.String)
	if !ok {
		return "", &evalerr.TypeError{Context: ctx, Expected: "string", Got: v}
	}
	return s, nil
}

func asSymbol(ctx string, v value.Value) (value.Symbol, error) {
	s, ok := v.(value.Symbol)
	if !ok {
		return "", &evalerr.TypeError{Context: ctx, Expected: "symbol", Got: v}
	}
	return s, nil
}

func asSeq(ctx string, v value.Value) ([]value.Value, error) {
	s, ok := value.Seq(v)
	if !ok {
		return nil, &evalerr.TypeError{Context: ctx, Expected: "list or vector", Got: v}
	}
	return s, nil
}

func asAtom(ctx string, v value.Value) (*value.Atom, error) {
	a, ok := v.(*value.Atom)
	if !ok {
		return nil, &evalerr.TypeError{Context: ctx, Expected: "atom", Got: v}
	}
	return a, nil
}

func asHashMap(ctx string, v value.Value) (value.HashMap, error) {
	m, ok := v.(value.HashMap)
	if !ok {
		return nil, &evalerr.TypeError{Context: ctx, Expected: "hash-map", Got: v}
	}
	return m, nil
}

func asLambda(ctx string, v value.Value) (*value.Lambda, error) {
	l, ok := v.(*value.Lambda)
	if !ok {
		return nil, &evalerr.TypeError{Context: ctx, Expected: "function", Got: v}
	}
	return l, nil
}
