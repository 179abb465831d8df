// Where: internal/command/defaults.go
// What: Built-in generation defaults.
// Why: Pass defaults explicitly into the resolver instead of reading globals.
package command

import "github.com/poruru-code/keygen/internal/keygen"

const (
	DefaultBytes   = 32
	DefaultFormat  = keygen.FormatHex
	DefaultEnvFile = ".env"
	DefaultEnvKey  = "SECRET_KEY"
)

// Defaults holds the values applied when a flag or argument is omitted.
type Defaults struct {
	Bytes   int
	Format  keygen.Format
	EnvFile string
	EnvKey  string
}

// BuiltinDefaults returns the defaults the CLI ships with.
func BuiltinDefaults() Defaults {
	return Defaults{
		Bytes:   DefaultBytes,
		Format:  DefaultFormat,
		EnvFile: DefaultEnvFile,
		EnvKey:  DefaultEnvKey,
	}
}
