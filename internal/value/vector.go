package value

// Vector is an ordered sequence that, unlike List, is never treated as a
// function call when it appears in evaluated position: its elements are
// evaluated in place and a new Vector of the results is returned.
type Vector []Value

func (Vector) value() {}
