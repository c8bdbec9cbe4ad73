package config

import (
	"testing"

	"github.com/gobuffalo/nulls"
	"github.com/matryer/is"
)

func TestStartupPathOrDefault(t *testing.T) {
	is := is.New(t)

	var c Config
	is.Equal(c.StartupPathOrDefault(), "startup.lisp")

	c.StartupPath = nulls.NewString("custom.lisp")
	is.Equal(c.StartupPathOrDefault(), "custom.lisp")
}
