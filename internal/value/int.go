package value

// Int is a signed 64-bit integer literal.
type Int int64

func (Int) value() {}
