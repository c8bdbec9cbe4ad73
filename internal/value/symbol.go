package value

// Symbol is an unresolved identifier awaiting lookup in an environment.
type Symbol string

func (Symbol) value() {}
