package ioreader

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

// erroringReader always fails with a non-EOF, non-retriable error.
type erroringReader struct{}

func (erroringReader) Read([]byte) (int, error) {
	return 0, errors.New("boom: device unplugged")
}

func TestStringSource_Reader(t *testing.T) {
	is := is.New(t)

	r := New(NewStringSource("(+ 1 2)"))

	var got []rune
	for {
		ch, err := r.Get()
		if err != nil {
			is.True(err == ErrExit)
			break
		}
		got = append(got, ch)
	}
	is.Equal(string(got), "(+ 1 2)")
}

func TestReader_PeekDoesNotConsume(t *testing.T) {
	is := is.New(t)

	r := New(NewStringSource("ab"))

	ch, err := r.Peek()
	is.NoErr(err)
	is.Equal(ch, 'a')

	ch, err = r.Get()
	is.NoErr(err)
	is.Equal(ch, 'a')

	ch, err = r.Get()
	is.NoErr(err)
	is.Equal(ch, 'b')

	_, err = r.Get()
	is.Equal(err, ErrExit)
}

func TestTerminalSource_PullsLineByLine(t *testing.T) {
	is := is.New(t)

	prompts := 0
	src := NewTerminalSource(strings.NewReader("first\nsecond\n"), func() { prompts++ })

	line, err := src.ReadLine()
	is.NoErr(err)
	is.Equal(line, "first\n")

	line, err = src.ReadLine()
	is.NoErr(err)
	is.Equal(line, "second\n")

	_, err = src.ReadLine()
	is.Equal(err, ErrExit)
	is.Equal(prompts, 3)
}

func TestTerminalSource_NonRetriableOnReaderError(t *testing.T) {
	is := is.New(t)

	src := NewTerminalSource(erroringReader{}, nil)
	_, err := src.ReadLine()
	is.True(errors.Is(err, ErrNonRetriable))
	is.True(!errors.Is(err, ErrExit))
}

func TestTerminalSource_RetriableOnOverlongLine(t *testing.T) {
	is := is.New(t)

	overlong := strings.Repeat("a", 70000)
	src := NewTerminalSource(strings.NewReader(overlong), nil)
	_, err := src.ReadLine()
	is.True(errors.Is(err, ErrRetriable))
}
