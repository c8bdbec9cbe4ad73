package value

import (
	"testing"

	"github.com/matryer/is"
)

func TestIsTruthy(t *testing.T) {
	is := is.New(t)

	is.True(!IsTruthy(NilValue))
	is.True(!IsTruthy(Bool(false)))
	is.True(IsTruthy(Bool(true)))
	is.True(IsTruthy(Int(0)))
	is.True(IsTruthy(String("")))
	is.True(IsTruthy(List{}))
}

func TestSeq(t *testing.T) {
	is := is.New(t)

	elems, ok := Seq(List{Int(1), Int(2)})
	is.True(ok)
	is.Equal(elems, []Value{Int(1), Int(2)})

	elems, ok = Seq(Vector{Int(3)})
	is.True(ok)
	is.Equal(elems, []Value{Int(3)})

	_, ok = Seq(Int(1))
	is.True(!ok)
}

func TestDebugString_CarriesIdentityTagsDistinctFromRepr(t *testing.T) {
	is := is.New(t)

	a := NewAtom(Int(5))
	l := NewLambda([]string{"x"}, "", false, Symbol("x"), nil)

	is.True(a.DebugID() != l.DebugID())
	is.True(DebugString(a) != "(atom 5)")
	is.True(DebugString(l) != "#<function>")
}
