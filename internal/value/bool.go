package value

// Bool is a boolean literal.
type Bool bool

func (Bool) value() {}
