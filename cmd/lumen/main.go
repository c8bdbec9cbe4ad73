// Command lumen is the interpreter's CLI entrypoint: cobra flag parsing,
// logrus setup, startup-library loading, and the REPL/script-mode read-
// eval-print loop, grounded on the read_form loop in original_source's
// myrust/src/main.rs and on docker-compose's cobra command-construction
// style (ecs/cmd/main/main.go).
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gobuffalo/nulls"

	"github.com/lumen-lang/lumen/internal/builtin"
	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/env"
	"github.com/lumen-lang/lumen/internal/evaluator"
	"github.com/lumen-lang/lumen/internal/host"
	"github.com/lumen-lang/lumen/internal/ioreader"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/parser"
	"github.com/lumen-lang/lumen/internal/printer"
	"github.com/lumen-lang/lumen/internal/value"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config
	var startupFlag string

	cmd := &cobra.Command{
		Use:   "lumen [script-path] [args...]",
		Short: "lumen is a small Lisp-family interpreter",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if startupFlag != "" {
				cfg.StartupPath = nulls.NewString(startupFlag)
			}
			if len(args) > 0 {
				cfg.ScriptPath = args[0]
				cfg.ScriptArgs = args[1:]
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&startupFlag, "startup", "", "path to the startup library (default \"startup.lisp\")")
	cmd.Flags().BoolVar(&cfg.Trace, "trace", false, "log every trampoline bounce and call at debug level")

	return cmd
}

func run(cfg config.Config) error {
	logrus.SetOutput(os.Stderr)
	if cfg.Trace {
		logrus.SetLevel(logrus.DebugLevel)
	}

	h := host.New(os.Args)
	root := builtin.NewRootEnv(os.Stdout, h)
	ev := evaluator.New()
	if cfg.Trace {
		ev.Trace = traceHook
	}

	startupPath := cfg.StartupPathOrDefault()
	if err := host.LoadStartup(startupPath, root, ev); err != nil {
		logrus.WithError(err).WithField("path", startupPath).Error("failed to load startup library")
		os.Exit(1)
	}

	if cfg.ScriptPath != "" {
		return runScript(cfg.ScriptPath, root, ev)
	}
	runREPL(root, ev)
	return nil
}

func traceHook(ast value.Value, e *env.Env) {
	logrus.WithFields(logrus.Fields{
		"form": printer.Repr(ast),
		"dump": value.DebugString(ast),
	}).Debug("eval bounce")
}

// runScript reads path as a single input source and evaluates every
// top-level form in order, with printing suppressed (explicit prn/
// println calls inside the script still print; only the REPL's implicit
// echo of each form's result is suppressed).
func runScript(path string, root *env.Env, ev *evaluator.Evaluator) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("lumen: %w", err)
	}

	rd := ioreader.New(ioreader.NewStringSource(string(src)))
	l := lexer.New(rd)
	tCh, doneCh := l.Tokens()
	p := parser.New(tCh, doneCh)
	defer p.Close()

	for {
		form, err := p.ReadForm(true)
		if err == parser.ErrEOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("lumen: %w", err)
		}
		if _, err := ev.Eval(form, root); err != nil {
			return fmt.Errorf("lumen: %w", err)
		}
	}
}

// runREPL prints a prompt, reads one form (which may itself pull several
// lines from stdin for a multi-line form), evaluates it against root, and
// prints its repr. Uncaught errors are logged as warnings and the prompt
// returns; the environment survives across them.
func runREPL(root *env.Env, ev *evaluator.Evaluator) {
	rd := ioreader.New(ioreader.NewTerminalSource(os.Stdin, func() { fmt.Print("user> ") }))
	l := lexer.New(rd)
	tCh, doneCh := l.Tokens()
	p := parser.New(tCh, doneCh)
	defer p.Close()

	for {
		form, err := p.ReadForm(true)
		if err == parser.ErrEOF {
			return
		}
		if err != nil {
			logrus.WithError(err).Warn("read error")
			continue
		}

		v, err := ev.Eval(form, root)
		if err != nil {
			logrus.WithError(err).Warn("eval error")
			continue
		}
		fmt.Println(printer.Repr(v))
	}
}
