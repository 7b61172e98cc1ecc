package oscommand

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/AntonioJCosta/zen/internal/core/domain/command"
	"github.com/AntonioJCosta/zen/internal/core/ports"
)

// DefaultShell is used when no shell is configured.
const DefaultShell = "/bin/sh"

// Config selects the shell and the streams the child inherits.
type Config struct {
	Shell       string // path to the shell binary; DefaultShell when empty
	Interactive bool   // launch the shell with -i

	Stdin  io.Reader // os.Stdin when nil
	Stdout io.Writer // os.Stdout when nil
	Stderr io.Writer // os.Stderr when nil
}

// ShellExecutor implements the CommandExecutor interface by running commands through a shell.
type ShellExecutor struct {
	cfg Config
}

// NewShellExecutor creates a ShellExecutor.
func NewShellExecutor(cfg Config) ports.CommandExecutor {
	if cfg.Shell == "" {
		cfg.Shell = DefaultShell
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	return &ShellExecutor{cfg: cfg}
}

// Execute runs `<shell> [-i] -c <resolved>` and waits for it to exit.
// The child's exit status is returned in the Outcome; only a failure to
// start the shell is an error.
func (e *ShellExecutor) Execute(resolved string) (command.Outcome, error) {
	cmd := exec.Command(e.cfg.Shell, shellArgs(e.cfg.Interactive, resolved)...)
	cmd.Stdin = e.cfg.Stdin
	cmd.Stdout = e.cfg.Stdout
	cmd.Stderr = e.cfg.Stderr

	err := cmd.Run()
	if err == nil {
		return command.Outcome{ExitCode: 0}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Killed by a signal reports -1; surface that as a generic failure.
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}
		return command.Outcome{ExitCode: code}, nil
	}
	return command.Outcome{}, fmt.Errorf("%w: could not start shell '%s': %w", ports.ErrSpawn, e.cfg.Shell, err)
}

func shellArgs(interactive bool, resolved string) []string {
	if interactive {
		return []string{"-i", "-c", resolved}
	}
	return []string{"-c", resolved}
}
