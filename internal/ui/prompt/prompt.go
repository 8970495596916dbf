// Package prompt provides interactive single-choice prompts.
//
// Two implementations of the Chooser capability exist: a fuzzy picker
// built on bubbletea, and a plain numbered line-read for dumb
// terminals and piped input. The implementation is selected once at
// startup, not per call.
package prompt

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Choice is the outcome of a prompt.
type Choice struct {
	Index     int
	Value     string
	Cancelled bool
}

// Chooser obtains exactly one of the named options from the user,
// synchronously, blocking until answered. Cancelling counts as not
// choosing; callers treat it like declining.
type Chooser interface {
	Choose(prompt string, options []string) (Choice, error)
}

// New returns the picker on interactive terminals, otherwise the plain
// line reader. plain forces the line reader.
func New(plain bool) Chooser {
	if plain || !isatty.IsTerminal(os.Stdin.Fd()) {
		return NewLine(os.Stdin, os.Stderr)
	}
	return &Picker{}
}
