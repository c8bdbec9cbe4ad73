// Package ioreader abstracts the character source the lexer reads from: an
// interactive terminal prompt or an in-memory string. It plays the role of
// the external line-editor collaborator declared out of scope — this is a
// minimal stand-in good enough to drive the reader, not a readline
// replacement.
package ioreader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrRetriable marks a source error that is not a failure of the underlying
// reader, e.g. a line that overran the scanner's buffer. TerminalSource's
// scanner stops at that point, so later ReadLine calls on the same
// TerminalSource report the same error again.
var ErrRetriable = errors.New("ioreader: retriable read error")

// ErrNonRetriable marks a source error that will not clear itself on retry,
// e.g. the underlying reader failing. Unlike ErrExit this is not a clean
// end of input and should propagate as a failure.
var ErrNonRetriable = errors.New("ioreader: non-retriable read error")

// ErrExit marks a clean end of input: EOF, or an interactive source
// reporting interrupt. The lexer treats this as end-of-stream, not failure.
var ErrExit = errors.New("ioreader: exit")

// Source is a pluggable line source. ReadLine returns one line of input
// (trailing newline included when the source has one to give), or one of
// ErrRetriable, ErrNonRetriable, ErrExit.
type Source interface {
	ReadLine() (string, error)
}

// TerminalSource prompts "user> " on prompt and reads one line at a time
// from an underlying reader (normally os.Stdin).
type TerminalSource struct {
	scanner *bufio.Scanner
	prompt  func()
}

// NewTerminalSource returns a TerminalSource reading from r, calling
// writePrompt before each line is requested.
func NewTerminalSource(r io.Reader, writePrompt func()) *TerminalSource {
	return &TerminalSource{
		scanner: bufio.NewScanner(r),
		prompt:  writePrompt,
	}
}

// ReadLine implements Source.
func (t *TerminalSource) ReadLine() (string, error) {
	if t.prompt != nil {
		t.prompt()
	}
	if !t.scanner.Scan() {
		switch err := t.scanner.Err(); {
		case err == nil:
			return "", ErrExit
		case errors.Is(err, bufio.ErrTooLong):
			return "", fmt.Errorf("%w: %v", ErrRetriable, err)
		default:
			return "", fmt.Errorf("%w: %v", ErrNonRetriable, err)
		}
	}
	return t.scanner.Text() + "\n", nil
}

// StringSource delivers a single fixed string exactly once, then reports
// ErrExit forever after.
type StringSource struct {
	text     string
	consumed bool
}

// NewStringSource returns a StringSource that yields text exactly once.
func NewStringSource(text string) *StringSource {
	return &StringSource{text: text}
}

// ReadLine implements Source.
func (s *StringSource) ReadLine() (string, error) {
	if s.consumed {
		return "", ErrExit
	}
	s.consumed = true
	return s.text, nil
}

// Reader buffers characters from a Source, offering one-rune lookahead.
type Reader struct {
	source  Source
	pending []rune
	pos     int
	exited  bool
}

// New returns a Reader pulling lines from source as needed.
func New(source Source) *Reader {
	return &Reader{source: source}
}

// fill pulls another line from the source if the pending buffer is
// exhausted. It is a no-op once the source has reported exit.
func (r *Reader) fill() error {
	for r.pos >= len(r.pending) {
		if r.exited {
			return ErrExit
		}
		line, err := r.source.ReadLine()
		if err != nil {
			if errors.Is(err, ErrExit) {
				r.exited = true
			}
			return err
		}
		r.pending = []rune(line)
		r.pos = 0
	}
	return nil
}

// Peek returns the next rune without consuming it.
func (r *Reader) Peek() (rune, error) {
	if err := r.fill(); err != nil {
		return 0, err
	}
	return r.pending[r.pos], nil
}

// Get consumes and returns the next rune.
func (r *Reader) Get() (rune, error) {
	if err := r.fill(); err != nil {
		return 0, err
	}
	ch := r.pending[r.pos]
	r.pos++
	return ch, nil
}
