// Where: internal/command/error_helpers.go
// What: Shared CLI error reporting.
// Why: Every terminal failure prints one line and exits 1.
package command

import "github.com/poruru-code/keygen/internal/infra/ui"

// exitWithError reports err on the diagnostic stream and returns exit code 1.
func exitWithError(out ui.UserInterface, err error) int {
	out.Error(err.Error())
	return 1
}
