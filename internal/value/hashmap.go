package value

// HashMap maps string or keyword keys (stored by their String encoding,
// keyword prefix byte included) to values.
type HashMap map[String]Value

func (HashMap) value() {}
