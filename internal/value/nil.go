package value

// Nil is the single absence-of-value literal. It has one zero-size
// instance, NilValue, so callers never need to construct one themselves.
type Nil struct{}

func (Nil) value() {}

// NilValue is the canonical Nil instance.
var NilValue = Nil{}
