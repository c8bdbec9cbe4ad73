// This file exercises the primitive registry through a real evaluator.
// It lives in an external builtin_test package (rather than package
// builtin, like the rest of this repo's tests) because it needs
// internal/evaluator to drive the primitives, and internal/evaluator
// imports internal/builtin — an in-package test here would create the
// very cycle the two packages' Evaluator interface exists to avoid.
package builtin_test

import (
	"bytes"
	"testing"

	"github.com/matryer/is"

	"github.com/lumen-lang/lumen/internal/builtin"
	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/ioreader"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/parser"
	"github.com/lumen-lang/lumen/internal/printer"
	"github.com/lumen-lang/lumen/internal/value"
)

type fakeHost struct {
	files map[string]string
	lines []string
	argv  []string
}

func (h fakeHost) Slurp(path string) (string, bool) {
	s, ok := h.files[path]
	return s, ok
}

func (h *fakeHost) ReadLine(string) (string, bool) {
	if len(h.lines) == 0 {
		return "", false
	}
	line := h.lines[0]
	h.lines = h.lines[1:]
	return line, true
}

func (h fakeHost) Argv() []string { return h.argv }

func newEnv(stdout *bytes.Buffer, h builtin.Host) (*env.Env, *evaluator.Evaluator) {
	return builtin.NewRootEnv(stdout, h), evaluator.New()
}

func mustEval(t *testing.T, ev *evaluator.Evaluator, e *env.Env, src string) value.Value {
	t.Helper()
	rd := ioreader.New(ioreader.NewStringSource(src))
	l := lexer.New(rd)
	tCh, doneCh := l.Tokens()
	p := parser.New(tCh, doneCh)
	defer p.Close()

	var last value.Value = value.NilValue
	for {
		form, err := p.ReadForm(true)
		if err == parser.ErrEOF {
			break
		}
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		last, err = ev.Eval(form, e)
		if err != nil {
			t.Fatalf("eval %s: %v", printer.Repr(form), err)
		}
	}
	return last
}

func TestArithmeticAndDivisionByZero(t *testing.T) {
	is := is.New(t)
	e, ev := newEnv(&bytes.Buffer{}, &fakeHost{})

	is.Equal(mustEval(t, ev, e, "(+ 1 2)"), value.Int(3))
	is.Equal(mustEval(t, ev, e, "(- 5 2)"), value.Int(3))
	is.Equal(mustEval(t, ev, e, "(* 3 4)"), value.Int(12))
	is.Equal(mustEval(t, ev, e, "(/ 9 3)"), value.Int(3))

	rd := ioreader.New(ioreader.NewStringSource("(/ 1 0)"))
	l := lexer.New(rd)
	tCh, doneCh := l.Tokens()
	p := parser.New(tCh, doneCh)
	defer p.Close()
	form, err := p.ReadForm(false)
	is.NoErr(err)
	_, err = ev.Eval(form, e)
	is.True(err != nil)
}

func TestComparisonsAndEquality(t *testing.T) {
	is := is.New(t)
	e, ev := newEnv(&bytes.Buffer{}, &fakeHost{})

	is.Equal(mustEval(t, ev, e, "(< 1 2)"), value.Bool(true))
	is.Equal(mustEval(t, ev, e, "(>= 2 2)"), value.Bool(true))
	is.Equal(mustEval(t, ev, e, "(= (list 1 2) [1 2])"), value.Bool(true))
}

func TestSequenceOps(t *testing.T) {
	is := is.New(t)
	e, ev := newEnv(&bytes.Buffer{}, &fakeHost{})

	is.Equal(mustEval(t, ev, e, "(count (list 1 2 3))"), value.Int(3))
	is.Equal(mustEval(t, ev, e, "(count nil)"), value.Int(0))
	is.Equal(mustEval(t, ev, e, "(nth (list 1 2 3) 1)"), value.Int(2))
	is.Equal(mustEval(t, ev, e, "(rest nil)"), value.List{})
	is.Equal(mustEval(t, ev, e, "(cons 0 (list 1 2))"), value.List{value.Int(0), value.Int(1), value.Int(2)})
	is.Equal(mustEval(t, ev, e, "(concat (list 1) (list 2 3))"), value.List{value.Int(1), value.Int(2), value.Int(3)})
}

func TestNthOutOfRangeIsRecoverableError(t *testing.T) {
	is := is.New(t)
	e, ev := newEnv(&bytes.Buffer{}, &fakeHost{})

	got := mustEval(t, ev, e, `(try* (nth (list 1) 5) (catch* err :caught))`)
	is.Equal(got, value.NewKeyword("caught"))
}

func TestHashMapNilPassthrough(t *testing.T) {
	is := is.New(t)
	e, ev := newEnv(&bytes.Buffer{}, &fakeHost{})

	is.Equal(mustEval(t, ev, e, "(get nil :x)"), value.NilValue)
	is.Equal(mustEval(t, ev, e, "(contains? nil :x)"), value.Bool(false))
	is.Equal(mustEval(t, ev, e, "(dissoc nil :x)"), value.NilValue)
	is.Equal(mustEval(t, ev, e, "(keys {})"), value.List{})

	got := mustEval(t, ev, e, `(get (assoc {} :a 1) :a)`)
	is.Equal(got, value.Int(1))
}

func TestAtomOps(t *testing.T) {
	is := is.New(t)
	e, ev := newEnv(&bytes.Buffer{}, &fakeHost{})

	is.Equal(mustEval(t, ev, e, "(atom? (atom 1))"), value.Bool(true))
	is.Equal(mustEval(t, ev, e, "(def! a (atom 1)) (reset! a 9) (deref a)"), value.Int(9))
}

func TestReflection(t *testing.T) {
	is := is.New(t)
	e, ev := newEnv(&bytes.Buffer{}, &fakeHost{})

	is.Equal(mustEval(t, ev, e, "(number? 1)"), value.Bool(true))
	is.Equal(mustEval(t, ev, e, "(fn? (fn* (x) x))"), value.Bool(true))
	is.Equal(mustEval(t, ev, e, "(defmacro! m (fn* () 1)) (macro? m)"), value.Bool(true))
	is.Equal(mustEval(t, ev, e, "(fn? +)"), value.Bool(true))
}

func TestStringAndPrintPrimitives(t *testing.T) {
	is := is.New(t)
	var out bytes.Buffer
	e, ev := newEnv(&out, &fakeHost{})

	is.Equal(mustEval(t, ev, e, `(pr-str "a" "b")`), value.String(`"a" "b"`))
	is.Equal(mustEval(t, ev, e, `(str "a" "b")`), value.String("ab"))
	is.Equal(mustEval(t, ev, e, `(string? "x")`), value.Bool(true))

	mustEval(t, ev, e, `(prn "hi")`)
	is.Equal(out.String(), "\"hi\"\n")
}

func TestSymbolAndKeyword(t *testing.T) {
	is := is.New(t)
	e, ev := newEnv(&bytes.Buffer{}, &fakeHost{})

	is.Equal(mustEval(t, ev, e, `(symbol? (symbol "x"))`), value.Bool(true))
	is.Equal(mustEval(t, ev, e, `(keyword? (keyword "x"))`), value.Bool(true))
	is.Equal(mustEval(t, ev, e, `(keyword? :x)`), value.Bool(true))
}

func TestMetaSlurpReadlineGetArgv(t *testing.T) {
	is := is.New(t)
	h := &fakeHost{
		files: map[string]string{"f.lisp": "(+ 1 2)"},
		lines: []string{"hello"},
		argv:  []string{"lumen", "a", "b"},
	}
	e, ev := newEnv(&bytes.Buffer{}, h)

	is.Equal(mustEval(t, ev, e, `(slurp "f.lisp")`), value.String("(+ 1 2)"))
	is.Equal(mustEval(t, ev, e, `(slurp "missing.lisp")`), value.NilValue)
	is.Equal(mustEval(t, ev, e, `(readline "? ")`), value.String("hello"))
	is.Equal(mustEval(t, ev, e, `(get-argv)`),
		value.List{value.String("lumen"), value.String("a"), value.String("b")})
	is.Equal(mustEval(t, ev, e, `*host-language*`), value.String("go"))
}

func TestParameterCountError(t *testing.T) {
	is := is.New(t)
	e, ev := newEnv(&bytes.Buffer{}, &fakeHost{})

	got := mustEval(t, ev, e, `(try* (+ 1) (catch* err err))`)
	is.Equal(got, value.List{value.NewKeyword("ParameterCount")})
}
