/*
Package fzf implements ports.Selector with the fzf fuzzy finder.
*/
package fzf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/zen/internal/core/ports"
)

// DefaultBinary is the fzf executable looked up in PATH.
const DefaultBinary = "fzf"

// Selector shows entries as "label<TAB>value" lines: fzf matches on the
// label and previews the value.
type Selector struct {
	binary string
	prompt string
}

// NewSelector creates a Selector. An empty binary selects DefaultBinary.
func NewSelector(binary, prompt string) ports.Selector {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Selector{binary: binary, prompt: prompt}
}

// Available implements the ports.Selector interface.
func (s *Selector) Available() bool {
	path, err := exec.LookPath(s.binary)
	if err != nil {
		return false
	}
	return exec.Command(path, "--version").Run() == nil
}

// Select implements the ports.Selector interface.
// A non-zero fzf exit (Esc, Ctrl-C, no match) is a cancellation, not an error.
func (s *Selector) Select(entries []ports.SelectionEntry) (ports.SelectionEntry, bool, error) {
	if len(entries) == 0 {
		return ports.SelectionEntry{}, false, nil
	}

	// The whole input is buffered up front; exec feeds it to fzf while we wait
	// on its output, so the pipes cannot deadlock.
	input, byLabel := buildInput(entries)

	fzfCmd := exec.Command(s.binary, s.args()...)
	fzfCmd.Stdin = strings.NewReader(input)

	var outBuffer bytes.Buffer
	fzfCmd.Stdout = &outBuffer
	fzfCmd.Stderr = os.Stderr // fzf draws its interface on stderr

	if err := fzfCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ports.SelectionEntry{}, false, nil
		}
		return ports.SelectionEntry{}, false, fmt.Errorf("%w: could not start %s: %w", ports.ErrSpawn, s.binary, err)
	}

	return parseSelection(outBuffer.String(), byLabel)
}

func (s *Selector) args() []string {
	args := []string{"--delimiter=\t", "--with-nth=1", "--preview=echo {2}"}
	if s.prompt != "" {
		args = append(args, "--prompt", s.prompt)
	}
	return args
}
