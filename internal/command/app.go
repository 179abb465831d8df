// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable runner that maps outcomes to exit codes.
package command

import (
	"fmt"
	"io"
	"os"

	"github.com/poruru-code/keygen/internal/keygen"
	"github.com/poruru-code/keygen/internal/version"
)

// KeyGenerator produces an encoded key of n random bytes.
type KeyGenerator interface {
	Generate(n int, format keygen.Format) (string, error)
}

// Dependencies holds injected I/O and collaborators for Run.
// Zero values fall back to the process streams and the system CSPRNG.
type Dependencies struct {
	Out       io.Writer
	ErrOut    io.Writer
	Generator KeyGenerator
	Getwd     func() (string, error)
	Defaults  Defaults
}

// Run resolves args, generates a key, and routes it.
// Returns 0 on success, help or version, and 1 on any error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := deps.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}
	if deps.Generator == nil {
		deps.Generator = keygen.New(nil)
	}
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	if deps.Defaults == (Defaults{}) {
		deps.Defaults = BuiltinDefaults()
	}
	console := newUI(errOut)

	action, err := Resolve(args, deps.Defaults)
	if err != nil {
		return exitWithError(console, err)
	}

	switch a := action.(type) {
	case ShowHelp:
		if err := printUsage(out, deps.Defaults); err != nil {
			return exitWithError(console, err)
		}
		return 0
	case ShowVersion:
		fmt.Fprintln(out, version.GetVersion())
		return 0
	case Generate:
		key, err := deps.Generator.Generate(a.Request.Bytes, a.Request.Format)
		if err != nil {
			return exitWithError(console, err)
		}
		router := Router{Out: out, UI: console, Getwd: deps.Getwd}
		if err := router.Route(key, a.Request); err != nil {
			return exitWithError(console, err)
		}
		return 0
	default:
		return exitWithError(console, fmt.Errorf("unhandled action %T", action))
	}
}
