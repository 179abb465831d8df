// Where: internal/command/resolve.go
// What: Argument resolution into a validated generation request.
// Why: Keep parsing and validation free of process exits so it can be unit tested.
package command

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/poruru-code/keygen/internal/keygen"
)

var ErrInvalidEnvKey = errors.New("invalid env key")

var (
	negativeNumberPattern = regexp.MustCompile(`^-[0-9]+$`)
	envKeyPattern         = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Bytes   string `arg:"" optional:"" name:"bytes" default:"${default_bytes}" help:"Number of random bytes (max ${max_bytes})"`
	Format  string `short:"f" default:"${default_format}" placeholder:"FORMAT" help:"Output format (${formats})"`
	Output  string `short:"o" placeholder:"PATH" help:"Write the key to a file (overwrites)"`
	Env     bool   `short:"e" help:"Append the key to the env file"`
	EnvFile string `name:"env-file" default:"${default_env_file}" placeholder:"PATH" help:"Env file used by --env"`
	EnvKey  string `name:"env-key" default:"${default_env_key}" placeholder:"NAME" help:"Variable name used by --env"`
	Help    bool   `short:"h" help:"Show help"`
	Version bool   `help:"Show version information"`
}

// Request is a validated, single-use description of one key generation.
type Request struct {
	Bytes      int
	Format     keygen.Format
	OutputPath string
	AppendEnv  bool
	EnvFile    string
	EnvKey     string
}

// Action is the outcome of resolving the argument list.
type Action interface {
	action()
}

type (
	// ShowHelp asks for usage text; nothing else is validated.
	ShowHelp struct{}

	ShowVersion struct{}

	// Generate carries a request that passed validation.
	Generate struct {
		Request Request
	}
)

func (ShowHelp) action()    {}
func (ShowVersion) action() {}
func (Generate) action()    {}

// valueFlags take a separate argument, so their value is never the positional.
var valueFlags = map[string]bool{
	"-f": true, "--format": true,
	"-o": true, "--output": true,
	"--env-file": true, "--env-key": true,
}

// Resolve parses args against defaults.
// Help wins over every other flag, including malformed ones.
func Resolve(args []string, defaults Defaults) (Action, error) {
	if wantsHelp(args) {
		return ShowHelp{}, nil
	}
	if value, ok := negativePositional(args); ok {
		return nil, fmt.Errorf("%w: %s", keygen.ErrInvalidByteLength, value)
	}

	cli := CLI{}
	parser, err := newParser(&cli, defaults, io.Discard, io.Discard)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}
	if cli.Help {
		return ShowHelp{}, nil
	}
	if cli.Version {
		return ShowVersion{}, nil
	}

	req, err := cli.request()
	if err != nil {
		return nil, err
	}
	return Generate{Request: req}, nil
}

func (c CLI) request() (Request, error) {
	n, err := strconv.Atoi(strings.TrimSpace(c.Bytes))
	if err != nil {
		return Request{}, fmt.Errorf("%w: %s", keygen.ErrInvalidByteLength, c.Bytes)
	}
	if err := keygen.ValidateLength(n); err != nil {
		return Request{}, err
	}
	format, err := keygen.ParseFormat(c.Format)
	if err != nil {
		return Request{}, err
	}
	if !envKeyPattern.MatchString(c.EnvKey) {
		return Request{}, fmt.Errorf("%w %q", ErrInvalidEnvKey, c.EnvKey)
	}
	return Request{
		Bytes:      n,
		Format:     format,
		OutputPath: c.Output,
		AppendEnv:  c.Env,
		EnvFile:    c.EnvFile,
		EnvKey:     c.EnvKey,
	}, nil
}

func newParser(cli *CLI, defaults Defaults, out, errOut io.Writer) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name(cliName()),
		kong.Description("Generate a cryptographically secure random key."),
		kong.NoDefaultHelp(),
		kong.Writers(out, errOut),
		kong.Exit(func(int) {}),
		kong.Vars{
			"default_bytes":    strconv.Itoa(defaults.Bytes),
			"max_bytes":        strconv.Itoa(keygen.MaxBytes),
			"default_format":   string(defaults.Format),
			"formats":          keygen.FormatList("/"),
			"default_env_file": defaults.EnvFile,
			"default_env_key":  defaults.EnvKey,
		},
	)
}

// printUsage writes the generated help text to out.
func printUsage(out io.Writer, defaults Defaults) error {
	cli := CLI{}
	parser, err := newParser(&cli, defaults, out, out)
	if err != nil {
		return err
	}
	ctx, err := kong.Trace(parser, nil)
	if err != nil {
		return err
	}
	return ctx.PrintUsage(false)
}

// wantsHelp scans for -h/--help ahead of parsing, stopping at "--".
func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-h", "--help":
			return true
		}
	}
	return false
}

// negativePositional finds a "-N" argument that Kong would otherwise read as
// an unknown short flag.
func negativePositional(args []string) (string, bool) {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if arg == "--" {
			return "", false
		}
		if valueFlags[arg] {
			skipNext = true
			continue
		}
		if negativeNumberPattern.MatchString(arg) {
			return arg, true
		}
	}
	return "", false
}
