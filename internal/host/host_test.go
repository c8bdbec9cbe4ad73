package host

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/lumen-lang/lumen/internal/builtin"
	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/value"
)

func TestSlurp_MissingFileIsNotOk(t *testing.T) {
	is := is.New(t)

	h := New([]string{"lumen"})
	_, ok := h.Slurp(filepath.Join(t.TempDir(), "does-not-exist.lisp"))
	is.True(!ok)
}

func TestSlurp_ReadsWholeFile(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "f.lisp")
	is.NoErr(os.WriteFile(path, []byte("(+ 1 2)"), 0o644))

	h := New([]string{"lumen"})
	content, ok := h.Slurp(path)
	is.True(ok)
	is.Equal(content, "(+ 1 2)")
}

func TestArgv(t *testing.T) {
	is := is.New(t)

	h := New([]string{"lumen", "script.lisp", "x"})
	is.Equal(h.Argv(), []string{"lumen", "script.lisp", "x"})
}

func TestLoadStartup_EvaluatesEveryForm(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "startup.lisp")
	is.NoErr(os.WriteFile(path, []byte("(def! a 1) (def! b 2)"), 0o644))

	root := builtin.NewRootEnv(&bytes.Buffer{}, New([]string{"lumen"}))
	ev := evaluator.New()

	err := LoadStartup(path, root, ev)
	is.NoErr(err)

	_, ok := root.Find("a")
	is.True(ok)
	_, ok = root.Find("b")
	is.True(ok)
}

func TestLoadStartup_AggregatesEveryFailingForm(t *testing.T) {
	is := is.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "startup.lisp")
	is.NoErr(os.WriteFile(path, []byte("(undefined-one) (undefined-two)"), 0o644))

	root := builtin.NewRootEnv(&bytes.Buffer{}, New([]string{"lumen"}))
	ev := evaluator.New()

	err := LoadStartup(path, root, ev)
	is.True(err != nil)
	is.True(len(err.Error()) > 0)
	is.True(strings.Contains(err.Error(), "undefined-one"))
	is.True(strings.Contains(err.Error(), "undefined-two"))
}

func TestLoadStartup_MissingFileIsFatal(t *testing.T) {
	is := is.New(t)

	root := builtin.NewRootEnv(&bytes.Buffer{}, New([]string{"lumen"}))
	ev := evaluator.New()

	err := LoadStartup(filepath.Join(t.TempDir(), "missing.lisp"), root, ev)
	is.True(err != nil)
}

// TestEndToEndFixtures runs the repo-level testdata/*.lisp programs against
// a root env that has loaded startup.lisp first, the same order cmd/lumen
// uses, then checks each fixture's `result` binding.
func TestEndToEndFixtures(t *testing.T) {
	cases := []struct {
		file string
		want value.Value
	}{
		{"factorial.lisp", value.Int(3628800)},
		{"list-ops.lisp", value.Int(30)},
		{"try-catch.lisp", value.List{value.Int(5), value.Int(-1)}},
	}

	for _, c := range cases {
		c := c
		t.Run(c.file, func(t *testing.T) {
			is := is.New(t)

			root := builtin.NewRootEnv(&bytes.Buffer{}, New([]string{"lumen"}))
			ev := evaluator.New()

			is.NoErr(LoadStartup(filepath.Join("..", "..", "startup.lisp"), root, ev))
			is.NoErr(LoadStartup(filepath.Join("..", "..", "testdata", c.file), root, ev))

			entry, ok := root.Find("result")
			is.True(ok)
			is.True(value.Equal(entry.Value.(value.Value), c.want))
		})
	}
}
