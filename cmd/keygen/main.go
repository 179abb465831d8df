// Where: cmd/keygen/main.go
// What: CLI entrypoint.
// Why: Run the key generator against the process streams and exit with its status.
package main

import (
	"os"

	"github.com/poruru-code/keygen/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], command.Dependencies{}))
}
