// Package value implements the closed data model the interpreter evaluates
// and prints: the same tree that is read in is the tree that is evaluated,
// so there is exactly one sealed universe of node types here rather than a
// separate AST and runtime-value hierarchy.
package value

// Value is the sealed tagged union of every kind of data the interpreter can
// hold: Int, String, Bool, Nil, Symbol, List, Vector, HashMap, *Atom,
// *Lambda, FunctionPtr. value() is unexported so no type outside this
// package can implement Value, mirroring copper's expression()/statement()
// marker-method pattern.
type Value interface {
	value()
}

// Seq returns the elements of a List or Vector, and reports whether v was
// one of those two sequence kinds. Callers that accept "any sequence" per
// spec.md's List/Vector interchangeability (e.g. let*'s bindings form, fn*'s
// parameter list) use this instead of a type switch.
func Seq(v Value) ([]Value, bool) {
	switch s := v.(type) {
	case List:
		return []Value(s), true
	case Vector:
		return []Value(s), true
	default:
		return nil, false
	}
}

// IsTruthy reports whether v counts as true for if's branch selection.
// Everything is truthy except Nil and Bool(false).
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(t)
	default:
		return true
	}
}
