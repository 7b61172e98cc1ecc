package ports

import "github.com/AntonioJCosta/zen/internal/core/domain/command"

/*
CommandExecutor runs a resolved command line in a shell and blocks until it exits.
A non-zero exit status is reported through the Outcome, not as an error;
only a failure to start the shell returns ErrSpawn.
*/
type CommandExecutor interface {
	Execute(resolved string) (command.Outcome, error)
}
