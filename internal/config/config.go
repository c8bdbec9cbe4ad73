// Package config holds the typed CLI configuration cmd/lumen builds from
// cobra/pflag flags. StartupPath uses gobuffalo/nulls the way copper's own
// helpers.go leans on nulls.String for an optional scalar, rather than the
// zero-value-means-unset convention plain strings invite.
package config

import "github.com/gobuffalo/nulls"

// Config is the resolved set of options a run of the interpreter starts
// with.
type Config struct {
	// StartupPath overrides the default "./startup.lisp" when valid.
	StartupPath nulls.String

	// Trace turns on per-bounce/per-call evaluator logging.
	Trace bool

	// ScriptPath, when non-empty, runs that file instead of starting the
	// REPL.
	ScriptPath string

	// ScriptArgs are the arguments following ScriptPath, unused by the
	// interpreter itself but reported unchanged by get-argv as part of
	// the full process argument list.
	ScriptArgs []string
}

const defaultStartupPath = "startup.lisp"

// StartupPathOrDefault returns the configured startup path, or
// defaultStartupPath if none was set.
func (c Config) StartupPathOrDefault() string {
	if c.StartupPath.Valid {
		return c.StartupPath.String
	}
	return defaultStartupPath
}
