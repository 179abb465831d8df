// Where: internal/infra/interaction/interaction.go
// What: Terminal detection for CLI output decisions.
// Why: Decorate messages only when a human is watching the stream.
package interaction

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
