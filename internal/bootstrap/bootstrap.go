/*
Package bootstrap wires the adapters behind the ports for the zen and zz binaries.
*/
package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/zen/internal/adapters/fzf"
	"github.com/AntonioJCosta/zen/internal/adapters/oscommand"
	"github.com/AntonioJCosta/zen/internal/adapters/predefinedaliases"
	"github.com/AntonioJCosta/zen/internal/config"
	"github.com/AntonioJCosta/zen/internal/core/ports"
	"github.com/AntonioJCosta/zen/internal/core/services/aliasengine"
	"github.com/AntonioJCosta/zen/internal/handlers/cli"
	"github.com/AntonioJCosta/zen/internal/handlers/ui"
	"github.com/AntonioJCosta/zen/internal/repositories/registryfile"
)

// Deps are the collaborators handed to the cobra commands.
type Deps struct {
	LoadEngine  cli.EngineLoader
	Selector    ports.Selector
	NewProvider cli.ProviderFactory
}

// New builds Deps from settings.
func New(settings config.Settings) Deps {
	store := registryfile.NewTOMLStore(settings.RegistryPath)
	executor := oscommand.NewShellExecutor(oscommand.Config{
		Shell:       settings.Shell,
		Interactive: settings.Interactive,
	})

	return Deps{
		LoadEngine: func() (ports.AliasEngine, error) {
			return aliasengine.Load(store, executor)
		},
		Selector:    fzf.NewSelector(fzf.DefaultBinary, "zen> "),
		NewProvider: predefinedaliases.NewYAMLProvider,
	}
}

// Run executes root and returns the process exit code. Hard errors are printed
// to stderr; a failing alias command passes its own status through.
func Run(root interface{ Execute() error }) int {
	err := root.Execute()
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
	return 1
}

// Settings loads the process settings. A .env file that cannot be used is
// reported on stderr and otherwise ignored.
func Settings() config.Settings {
	return settingsFrom(config.Load, os.Stderr)
}

func settingsFrom(load func() (config.Settings, error), warn io.Writer) config.Settings {
	settings, err := load()
	if err != nil {
		fmt.Fprintln(warn, ui.WarningColor(fmt.Sprintf("Warning: %v", err)))
	}
	return settings
}
