package evalerr

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/lumen-lang/lumen/internal/value"
)

func TestReify_SymbolNotFoundIsPlainString(t *testing.T) {
	is := is.New(t)

	v, ok := Reify(&SymbolNotFound{Name: "x"})
	is.True(ok)
	is.Equal(v, value.String("'x' not found"))
}

func TestReify_ParameterCountHasNoExtraData(t *testing.T) {
	is := is.New(t)

	v, ok := Reify(&ParameterCountError{Name: "f", Min: 1, Max: 1, Got: 2})
	is.True(ok)
	is.Equal(v, value.List{value.NewKeyword("ParameterCount")})
}

func TestReify_TypeErrorCarriesExpectedAndGot(t *testing.T) {
	is := is.New(t)

	v, ok := Reify(&TypeError{Context: "nth", Expected: "an integer", Got: value.String("x")})
	is.True(ok)
	is.Equal(v, value.List{value.NewKeyword("TypeError"), value.String("an integer"), value.String("x")})
}

func TestReify_CustomExceptionUnwrapsValueUnchanged(t *testing.T) {
	is := is.New(t)

	thrown := value.List{value.Int(1), value.Int(2)}
	v, ok := Reify(&CustomException{Value: thrown})
	is.True(ok)
	is.Equal(v, thrown)
}

func TestReify_UnknownErrorIsNotCatchable(t *testing.T) {
	is := is.New(t)

	_, ok := Reify(errors.New("boom"))
	is.True(!ok)
}
