// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the command name and its override variable in one place.
package meta

const (
	AppName = "keygen"
	Slug    = "keygen"

	// EnvVarCLICmd overrides the command name shown in usage text.
	EnvVarCLICmd = "CLI_CMD"
)
