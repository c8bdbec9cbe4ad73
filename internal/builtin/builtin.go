// Package builtin implements the primitive registry installed into the
// root environment: arithmetic, comparisons, sequence and hash-map
// operations, atoms, printing, reflection, and the special forms (which are
// simply primitives with EvaluatesArgs=false). It sits below
// internal/evaluator — it defines the Evaluator interface it needs from its
// caller rather than importing the evaluator package, so the two packages
// don't form a cycle.
package builtin

import (
	"io"

	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/value"
)

// Host is the set of capabilities the out-of-scope external collaborators
// (filesystem, process arguments, a line-prompting input source) provide to
// the meta primitives. internal/host implements it; this package only
// depends on the interface so it never needs to import internal/host.
type Host interface {
	// Slurp returns the whole contents of the file at path, and false if it
	// could not be read: per spec.md, an I/O failure here is nil, not an
	// error.
	Slurp(path string) (string, bool)

	// ReadLine prompts (if prompt != "") and reads one line, and false at
	// end of input.
	ReadLine(prompt string) (string, bool)

	// Argv returns the process arguments, program name included.
	Argv() []string
}

// Evaluator is the subset of evaluator.Evaluator that primitives need to
// re-enter evaluation: special forms like def! and if evaluate their
// sub-forms through Eval, and swap! calls its function argument through
// Apply. Each such call runs a nested trampoline; eval itself does not
// re-enter but hands back a TailCall.
type Evaluator interface {
	Eval(ast value.Value, e *env.Env) (value.Value, error)
	Apply(fn value.Value, args []value.Value, e *env.Env) (value.Value, error)
}

// TailCall is a request from a primitive to continue the evaluator's
// trampoline with a new (ast, env) pair instead of returning a final value.
type TailCall struct {
	AST value.Value
	Env *env.Env
}

// Primitive is a named, registry-installed function. EvaluatesArgs controls
// whether apply evaluates the call's argument forms before invoking Run (as
// ordinary primitives expect) or passes them through unevaluated (as
// special forms like let* and quote require, since they need to see the
// raw syntax to bind names or avoid evaluation entirely).
type Primitive struct {
	Name          string
	EvaluatesArgs bool
	Run           func(args []value.Value, e *env.Env, ev Evaluator) (value.Value, *TailCall, error)
}

// Registry is the set of primitives installed into a root environment.
type Registry struct {
	prims []*Primitive
}

// Register adds a primitive to the registry. Panics on duplicate names,
// since that can only be a programming error in this package's own table.
func (r *Registry) Register(p *Primitive) {
	for _, existing := range r.prims {
		if existing.Name == p.Name {
			panic("builtin: duplicate primitive name: " + p.Name)
		}
	}
	r.prims = append(r.prims, p)
}

// Install installs every registered primitive into root as an
// IsPrimitive entry.
func (r *Registry) Install(root *env.Env) {
	for _, p := range r.prims {
		root.Set(&env.Entry{
			Name:        p.Name,
			Value:       p,
			IsPrimitive: true,
		})
	}
}

// NewRootEnv returns a fresh root environment with every primitive and
// special form in this package installed, printing to stdout and serving
// meta primitives (slurp, readline, get-argv) from host.
func NewRootEnv(stdout io.Writer, host Host) *env.Env {
	root := env.New()
	NewRegistry(stdout, host).Install(root)
	root.Set(&env.Entry{Name: "*host-language*", Value: value.String("go")})
	return root
}

// NewRegistry returns a Registry holding every primitive this package
// defines: arithmetic, comparison, boolean, sequence, hash-map, atom,
// string/print, symbol/keyword, reflection, meta and the special forms.
func NewRegistry(stdout io.Writer, host Host) *Registry {
	r := &Registry{}
	registerArithmetic(r)
	registerComparison(r)
	registerBoolean(r)
	registerSequence(r)
	registerHashMap(r)
	registerAtom(r)
	registerStringPrint(r, stdout)
	registerSymbolKeyword(r)
	registerReflection(r)
	registerMeta(r, host)
	registerSpecialForms(r)
	return r
}
