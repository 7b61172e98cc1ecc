package cli

import (
	"fmt"

	"github.com/AntonioJCosta/zen/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewImportCommand creates the 'import' subcommand.
func NewImportCommand(loadEngine EngineLoader, newProvider ProviderFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Register every alias listed in a YAML file.",
		Long: `Reads a YAML list of aliases and registers them all, replacing existing
aliases with the same name:

  - alias: dev
    command: npm run dev
  - alias: cp2
    command: cp {} {}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportCmd(cmd, args[0], loadEngine, newProvider)
		},
	}
	return cmd
}

func runImportCmd(cmd *cobra.Command, path string, loadEngine EngineLoader, newProvider ProviderFactory) error {
	provider, err := newProvider(path)
	if err != nil {
		return fmt.Errorf("could not open alias file: %w", err)
	}
	aliases, err := provider.GetPredefinedAliases()
	if err != nil {
		return fmt.Errorf("could not read alias file: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(aliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases found in %s.", path)))
		return nil
	}

	engine, err := loadEngineOrFail(loadEngine)
	if err != nil {
		return err
	}
	imported, err := engine.ImportAliases(aliases)
	if err != nil {
		return fmt.Errorf("could not import aliases: %w", err)
	}

	if skipped := len(aliases) - imported; skipped > 0 {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%d entr(ies) without an alias name were skipped.", skipped)))
	}
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Imported %d alias(es) into %s.", imported, engine.ConfigPath())))
	return nil
}
