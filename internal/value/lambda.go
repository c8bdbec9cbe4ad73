package value

import (
	"github.com/gofrs/uuid"

	"github.com/lumen-lang/lumen/internal/env"
)

// Lambda is a closure: a parameter list, an optional rest parameter, a body
// form, and the environment captured at the point of fn*. IsMacro marks a
// Lambda that defmacro! produced; macros share every other field with the
// Lambda they were copied from, so a macro's closure, parameters and body
// evaluate exactly like the function they started as.
type Lambda struct {
	// id is a debug tag only, as with Atom.
	id uuid.UUID

	Params  []string
	Rest    string
	HasRest bool
	Body    Value
	Env     *env.Env
	IsMacro bool
}

func (*Lambda) value() {}

// NewLambda returns a non-macro Lambda closing over env.
func NewLambda(params []string, rest string, hasRest bool, body Value, closure *env.Env) *Lambda {
	id, err := uuid.NewV4()
	if err != nil {
		id = uuid.Nil
	}
	return &Lambda{
		id:      id,
		Params:  params,
		Rest:    rest,
		HasRest: hasRest,
		Body:    body,
		Env:     closure,
	}
}

// AsMacro returns a copy of l with IsMacro set, as defmacro! requires:
// defmacro! never mutates the function value it was given, it produces a
// distinct macro value from the same closure, parameters and body.
func (l *Lambda) AsMacro() *Lambda {
	id, err := uuid.NewV4()
	if err != nil {
		id = uuid.Nil
	}
	return &Lambda{
		id:      id,
		Params:  l.Params,
		Rest:    l.Rest,
		HasRest: l.HasRest,
		Body:    l.Body,
		Env:     l.Env,
		IsMacro: true,
	}
}

// DebugID returns the lambda's debug tag, for use by DebugString only.
func (l *Lambda) DebugID() uuid.UUID {
	return l.id
}
