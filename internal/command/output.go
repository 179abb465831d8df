// Where: internal/command/output.go
// What: Output helpers for command handlers.
// Why: Decide once how diagnostics are decorated on stderr.
package command

import (
	"io"
	"os"
	"strings"

	"github.com/poruru-code/keygen/internal/infra/interaction"
	"github.com/poruru-code/keygen/internal/infra/ui"
)

func newUI(errOut io.Writer) ui.UserInterface {
	return ui.NewUI(errOut, resolveEmojiEnabled(errOut))
}

// resolveEmojiEnabled enables emoji only for an interactive, non-dumb terminal.
func resolveEmojiEnabled(out io.Writer) bool {
	if strings.TrimSpace(os.Getenv("NO_EMOJI")) != "" {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if term == "dumb" {
		return false
	}
	if file, ok := out.(*os.File); ok {
		return interaction.IsTerminal(file)
	}
	return false
}
