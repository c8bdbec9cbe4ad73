package value

// Equal reports structural equality, recursing into List/Vector/HashMap
// contents. List and Vector compare equal to each other when their
// elements match, since spec code treats the two as interchangeable
// sequences everywhere but construction. Atom, Lambda and FunctionPtr
// compare by identity: two atoms with equal contents are still different
// atoms.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case List:
		return equalSeq([]Value(av), b)
	case Vector:
		return equalSeq([]Value(av), b)
	case HashMap:
		bv, ok := b.(HashMap)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bval, ok := bv[k]
			if !ok || !Equal(v, bval) {
				return false
			}
		}
		return true
	case *Atom:
		bv, ok := b.(*Atom)
		return ok && av == bv
	case *Lambda:
		bv, ok := b.(*Lambda)
		return ok && av == bv
	case FunctionPtr:
		bv, ok := b.(FunctionPtr)
		return ok && av.Entry == bv.Entry
	default:
		return false
	}
}

func equalSeq(a []Value, b Value) bool {
	bs, ok := Seq(b)
	if !ok || len(a) != len(bs) {
		return false
	}
	for i := range a {
		if !Equal(a[i], bs[i]) {
			return false
		}
	}
	return true
}
