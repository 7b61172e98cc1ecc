package cli

import (
	"fmt"

	"github.com/AntonioJCosta/zen/internal/core/ports"
	"github.com/AntonioJCosta/zen/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the 'remove' subcommand.
func NewRemoveCommand(loadEngine EngineLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <alias>",
		Aliases: []string{"rm"},
		Short:   "Delete an alias.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngineOrFail(loadEngine)
			if err != nil {
				return err
			}

			result, err := engine.RemoveAlias(args[0])
			if err != nil {
				return fmt.Errorf("something went wrong while discarding: %w", err)
			}

			out := cmd.OutOrStdout()
			if result == ports.RemoveNotPresent {
				fmt.Fprintln(out, ui.WarningColor("Alias was not found in the registry"))
				return nil
			}
			fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Successfully discarded alias %s", args[0])))
			return nil
		},
	}
	return cmd
}
