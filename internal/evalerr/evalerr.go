// Package evalerr defines the taxonomy of errors the evaluator and
// primitives raise, and the rules for reifying one into a catchable value
// for try*/catch*. It sits below both internal/builtin and
// internal/evaluator so either can raise or reify any member without the
// two packages importing each other.
package evalerr

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/value"
)

// SymbolNotFound is raised when a Symbol has no binding anywhere in the
// current environment chain.
type SymbolNotFound struct {
	Name string
}

func (e *SymbolNotFound) Error() string {
	return fmt.Sprintf("'%s' not found", e.Name)
}

// InvalidFunctionCallNodeType is raised when a List's evaluated head is
// neither a FunctionPtr nor a Lambda.
type InvalidFunctionCallNodeType struct {
	Value value.Value
}

func (e *InvalidFunctionCallNodeType) Error() string {
	return "cannot call a non-function value"
}

// ParameterCountError is raised when a call's argument count falls outside
// what the callee accepts. Max of -1 means unbounded.
type ParameterCountError struct {
	Name     string
	Min, Max int
	Got      int
}

func (e *ParameterCountError) Error() string {
	if e.Max < 0 {
		return fmt.Sprintf("%s: expected at least %d argument(s), got %d", e.Name, e.Min, e.Got)
	}
	if e.Min == e.Max {
		return fmt.Sprintf("%s: expected %d argument(s), got %d", e.Name, e.Min, e.Got)
	}
	return fmt.Sprintf("%s: expected %d to %d argument(s), got %d", e.Name, e.Min, e.Max, e.Got)
}

// TypeError is raised when a value of the wrong kind is passed where
// Expected was required.
type TypeError struct {
	Context  string
	Expected string
	Got      value.Value
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s", e.Context, e.Expected)
}

// CustomException is raised by throw, carrying the arbitrary thrown value.
type CustomException struct {
	Value value.Value
}

func (e *CustomException) Error() string {
	return "uncaught exception"
}

// keyword tags used by Reify's InvalidFunctionCallNodeType/ParameterCount/
// TypeError shapes. try*/catch* binds whichever of these a catch* handler
// receives.
var (
	kindInvalidCallNode = value.NewKeyword("InvalidFunctionCallNodeType")
	kindParameterCount  = value.NewKeyword("ParameterCount")
	kindTypeError       = value.NewKeyword("TypeError")
)

// Reify converts an evaluator/primitive error into the value a catch*
// handler receives, reporting whether err was one of this package's
// taxonomy members at all (non-members, e.g. a Go I/O error from host code,
// are not catchable and should simply propagate).
func Reify(err error) (value.Value, bool) {
	switch e := err.(type) {
	case *SymbolNotFound:
		return value.String(fmt.Sprintf("'%s' not found", e.Name)), true
	case *InvalidFunctionCallNodeType:
		return value.List{kindInvalidCallNode, e.Value}, true
	case *ParameterCountError:
		return value.List{kindParameterCount}, true
	case *TypeError:
		return value.List{kindTypeError, value.String(e.Expected), e.Got}, true
	case *CustomException:
		return e.Value, true
	default:
		return nil, false
	}
}
