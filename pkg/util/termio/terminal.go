package termio

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is assumed when standard output is not a terminal.
const DefaultWidth uint = 80

// IsTerminal reports whether standard output is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Width returns the width of the terminal attached to standard output, or
// DefaultWidth when there is none.
func Width() uint {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	//
	return uint(w)
}
