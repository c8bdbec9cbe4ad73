package value

import "github.com/lumen-lang/lumen/internal/env"

// FunctionPtr is the value a Symbol resolves to when its environment entry
// names a primitive rather than a bound value: an immutable handle onto
// that entry. Two FunctionPtrs are equal exactly when they reference the
// same entry.
type FunctionPtr struct {
	Name  string
	Entry *env.Entry
}

func (FunctionPtr) value() {}
