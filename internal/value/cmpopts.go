package value

import "github.com/google/go-cmp/cmp"

// CmpOptions makes go-cmp compare *Atom, *Lambda and FunctionPtr the same
// way Equal does: by identity, not by walking their fields. Without this,
// cmp's default field-by-field walk panics on the unexported fields of
// *Atom and *Lambda (their debug id, a Lambda's captured *env.Env), and
// reports a FunctionPtr unequal even to itself when its Entry holds a
// Primitive, since cmp never treats two non-nil funcs (Run) as equal.
var CmpOptions = cmp.Options{
	cmp.Comparer(func(a, b *Atom) bool { return a == b }),
	cmp.Comparer(func(a, b *Lambda) bool { return a == b }),
	cmp.Comparer(func(a, b FunctionPtr) bool { return a.Entry == b.Entry }),
}
