package ui

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether stdout is attached to a terminal, which the
// interactive picker needs to draw on.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
