package value

// List is an ordered, evaluable sequence: as data it prints as (a b c), and
// as code its head names the operation to apply to its tail.
type List []Value

func (List) value() {}
