package env

import (
	"testing"

	"github.com/matryer/is"
)

func TestFind_Chained(t *testing.T) {
	is := is.New(t)

	root := New()
	root.Set(&Entry{Name: "x", Value: 3})

	child := NewChild(root)
	child.Set(&Entry{Name: "y", Value: 42})

	e, ok := child.Find("x")
	is.True(ok)
	is.Equal(e.Value, 3)

	e, ok = child.Find("y")
	is.True(ok)
	is.Equal(e.Value, 42)

	_, ok = root.Find("y")
	is.True(!ok) // parent never sees a child binding
}

func TestSet_NeverWalksToParent(t *testing.T) {
	is := is.New(t)

	root := New()
	root.Set(&Entry{Name: "x", Value: 1})

	child := NewChild(root)
	child.Set(&Entry{Name: "x", Value: 2})

	rootEntry, _ := root.Find("x")
	childEntry, _ := child.Find("x")

	is.Equal(rootEntry.Value, 1)
	is.Equal(childEntry.Value, 2)
}

func TestRoot(t *testing.T) {
	is := is.New(t)

	root := New()
	mid := NewChild(root)
	leaf := NewChild(mid)

	is.Equal(leaf.Root(), root)
	is.Equal(mid.Parent(), root)
	is.Equal(root.Parent(), (*Env)(nil))
}
