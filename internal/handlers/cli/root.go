package cli

import (
	"fmt"

	"github.com/AntonioJCosta/zen/internal/core/ports"
	"github.com/spf13/cobra"
)

// EngineLoader builds a fresh alias engine from the persisted registry.
// Every command calls it once, so each invocation sees the artifact as it is on disk.
type EngineLoader func() (ports.AliasEngine, error)

// ProviderFactory opens an alias list file for the import command.
type ProviderFactory func(path string) (ports.PredefinedAliasProvider, error)

// ExitError carries a non-zero exit status of an alias's command up to main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}

func NewRootCommand(
	version string,
	loadEngine EngineLoader,
	selector ports.Selector,
	newProvider ProviderFactory,
) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zen",
		Short: "zen - A simple command launcher and alias manager",
		Long: `zen binds short aliases to shell command templates and runs them by name.

Templates may contain {} placeholders, filled in order by the arguments given
to run; any arguments left over are appended to the command.`,
		Example: `  zen add dev "npm run dev"
  zen run dev --port 3000
  zen add cp2 cp {} {}
  zen list
  zen remove dev

  zz <alias> [args]              Same as: zen run <alias> [args]
  zz <alias> --register <cmd>    Same as: zen add <alias> <cmd>
  zz                             Interactive browse (fzf required)`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if loadEngine == nil {
				return fmt.Errorf("alias engine not initialized for command %s", cmd.Name())
			}
			if selector == nil && (cmd.Name() == "browse" || cmd.Name() == "run") {
				return fmt.Errorf("selector not initialized for command %s", cmd.Name())
			}
			if newProvider == nil && cmd.Name() == "import" {
				return fmt.Errorf("alias file provider not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewAddCommand(loadEngine))
	rootCmd.AddCommand(NewRunCommand(loadEngine, selector))
	rootCmd.AddCommand(NewListCommand(loadEngine))
	rootCmd.AddCommand(NewRemoveCommand(loadEngine))
	rootCmd.AddCommand(NewBrowseCommand(loadEngine, selector))
	rootCmd.AddCommand(NewImportCommand(loadEngine, newProvider))

	return rootCmd
}
