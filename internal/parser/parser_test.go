package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"

	"github.com/lumen-lang/lumen/internal/ioreader"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/value"
)

func parseOne(t *testing.T, src string) value.Value {
	t.Helper()

	l := lexer.New(ioreader.New(ioreader.NewStringSource(src)))
	tCh, doneCh := l.Tokens()
	p := New(tCh, doneCh)
	defer p.Close()

	v, err := p.ReadForm(false)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	return v
}

func TestReadForm_List(t *testing.T) {
	is := is.New(t)

	v := parseOne(t, "(+ 1 2)")
	want := value.List{value.Symbol("+"), value.Int(1), value.Int(2)}
	if diff := cmp.Diff(want, v); diff != "" {
		is.Fail()
	}
}

func TestReadForm_QuoteReaderMacro(t *testing.T) {
	is := is.New(t)

	v := parseOne(t, "'x")
	want := value.List{value.Symbol("quote"), value.Symbol("x")}
	if diff := cmp.Diff(want, v); diff != "" {
		is.Fail()
	}
}

func TestReadForm_QuasiquoteUnquoteSplice(t *testing.T) {
	is := is.New(t)

	v := parseOne(t, "`(1 ~a ~@b)")
	want := value.List{
		value.Symbol("quasiquote"),
		value.List{
			value.Int(1),
			value.List{value.Symbol("unquote"), value.Symbol("a")},
			value.List{value.Symbol("splice-unquote"), value.Symbol("b")},
		},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		is.Fail()
	}
}

func TestReadForm_HashMapWithKeywordKey(t *testing.T) {
	is := is.New(t)

	v := parseOne(t, `{:a 1 "b" 2}`)
	m, ok := v.(value.HashMap)
	is.True(ok)
	is.Equal(m[value.NewKeyword("a")], value.Int(1))
	is.Equal(m[value.String("b")], value.Int(2))
}

func TestReadForm_OddHashMapIsError(t *testing.T) {
	is := is.New(t)

	l := lexer.New(ioreader.New(ioreader.NewStringSource(`{:a}`)))
	tCh, doneCh := l.Tokens()
	p := New(tCh, doneCh)
	defer p.Close()

	_, err := p.ReadForm(false)
	is.True(err != nil)
	is.True(IsParseError(err))
}

func TestReadForm_EOFHandling(t *testing.T) {
	is := is.New(t)

	l := lexer.New(ioreader.New(ioreader.NewStringSource("")))
	tCh, doneCh := l.Tokens()
	p := New(tCh, doneCh)
	defer p.Close()

	_, err := p.ReadForm(true)
	is.Equal(err, ErrEOF)
}

func TestReadForm_UnterminatedListIsError(t *testing.T) {
	is := is.New(t)

	l := lexer.New(ioreader.New(ioreader.NewStringSource("(+ 1 2")))
	tCh, doneCh := l.Tokens()
	p := New(tCh, doneCh)
	defer p.Close()

	_, err := p.ReadForm(false)
	is.True(err != nil)
	is.True(IsParseError(err))
}
