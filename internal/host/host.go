// Package host implements the external collaborators spec.md §1 calls out
// of scope for the interpreter core: a line-pulling input source, whole-
// file reads, and process-argument access. It also loads the startup
// library (startup.lisp) form by form, aggregating every failing
// definition with hashicorp/go-multierror instead of stopping at the
// first, the way docker-compose's own multierror package reports every
// bad compose-file field at once.
package host

import (
	"bufio"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/lumen-lang/lumen/internal/builtin"
	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/ioreader"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/parser"
	"github.com/lumen-lang/lumen/internal/printer"
)

// Host implements builtin.Host against the real OS: stdin for readline,
// the filesystem for slurp, os.Args for get-argv.
type Host struct {
	stdin *bufio.Reader
	argv  []string
}

var _ builtin.Host = (*Host)(nil)

// New returns a Host that reads interactive lines from stdin and reports
// argv unchanged regardless of flags cobra has already consumed.
func New(argv []string) *Host {
	return &Host{stdin: bufio.NewReader(os.Stdin), argv: argv}
}

// Slurp reads path whole. An I/O failure of any kind (missing file,
// permission denied, ...) reports ok=false so callers can map it to Nil
// per spec.md §7, rather than surfacing the underlying OS error.
func (h *Host) Slurp(path string) (string, bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(b), true
}

// ReadLine prints prompt (if non-empty) to stdout, then reads one line
// from stdin. ok is false at end of input.
func (h *Host) ReadLine(prompt string) (string, bool) {
	if prompt != "" {
		fmt.Print(prompt)
	}
	line, err := h.stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return stripNewline(line), true
}

// Argv returns the process arguments, program name included, as captured
// at New.
func (h *Host) Argv() []string {
	return h.argv
}

func stripNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// LoadStartup reads path, evaluates every top-level form it contains
// against root, and returns a single error aggregating every form that
// failed to evaluate. original_source loads startup.lisp with a
// first-error-wins loop; collecting every evaluation failure here is a
// deliberate enrichment so a broken startup.lisp reports every bad
// definition at once. A read (lex or parse) error ends loading: it is
// added to the aggregate and no later form is read.
func LoadStartup(path string, root *env.Env, ev builtin.Evaluator) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	rd := ioreader.New(ioreader.NewStringSource(string(src)))
	l := lexer.New(rd)
	tCh, doneCh := l.Tokens()
	p := parser.New(tCh, doneCh)
	defer p.Close()

	var result *multierror.Error
	for {
		form, err := p.ReadForm(true)
		if err == parser.ErrEOF {
			break
		}
		if err != nil {
			result = multierror.Append(result, err)
			break
		}
		if _, err := ev.Eval(form, root); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", printer.Repr(form), err))
		}
	}
	return result.ErrorOrNil()
}
