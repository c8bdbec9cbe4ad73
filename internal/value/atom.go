package value

import "github.com/gofrs/uuid"

// Atom is a mutable reference cell. Equality and identity for atoms is
// always pointer identity, never the identity of whatever Value currently
// sits inside — two atoms holding equal contents are still distinct atoms.
type Atom struct {
	// id is a debug tag only; nothing in this package or the evaluator
	// compares atoms by id, and it is never observable from language code.
	id uuid.UUID

	Value Value
}

func (*Atom) value() {}

// NewAtom returns a fresh atom holding v.
func NewAtom(v Value) *Atom {
	id, err := uuid.NewV4()
	if err != nil {
		// uuid.NewV4 only fails if crypto/rand is broken; fall back to the
		// nil UUID rather than propagating an error through every atom
		// call for a tag that is never used for identity.
		id = uuid.Nil
	}
	return &Atom{id: id, Value: v}
}

// DebugID returns the atom's debug tag, for use by DebugString only.
func (a *Atom) DebugID() uuid.UUID {
	return a.id
}
