// Where: internal/infra/ui/ui.go
// What: UserInterface adapter over Console.
// Why: Let command code depend on a small interface instead of the concrete console.
package ui

import "io"

// UserInterface exposes the output helpers used by command handlers.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Error(msg string)
}

// NewUI returns a UserInterface writing to out.
func NewUI(out io.Writer, emoji bool) UserInterface {
	return NewWithEmoji(out, emoji)
}
