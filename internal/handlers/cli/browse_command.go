package cli

import (
	"fmt"

	"github.com/AntonioJCosta/zen/internal/core/ports"
	"github.com/AntonioJCosta/zen/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// isTerminal is swapped in tests.
var isTerminal = ui.IsTerminal

// NewBrowseCommand creates the 'browse' subcommand.
func NewBrowseCommand(loadEngine EngineLoader, selector ports.Selector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactive alias selection (requires fzf).",
		Long: `Lists the registered aliases in fzf and runs the one you pick.
Falls back to the plain list when fzf is missing or no terminal is attached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, loadEngine, selector)
		},
	}
	return cmd
}

func runBrowse(cmd *cobra.Command, loadEngine EngineLoader, selector ports.Selector) error {
	engine, err := loadEngineOrFail(loadEngine)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if engine.IsEmpty() {
		ui.PrintNoAliases(out)
		return nil
	}

	if !selector.Available() {
		ui.PrintFZFInstall(out)
		ui.PrintListFallback(out)
		printAliasList(cmd, engine)
		return nil
	}
	if !isTerminal() {
		fmt.Fprintln(out, ui.InfoColor("No terminal attached for interactive selection."))
		ui.PrintListFallback(out)
		printAliasList(cmd, engine)
		return nil
	}

	aliases := engine.ListAliases()
	entries := make([]ports.SelectionEntry, 0, len(aliases))
	for _, a := range aliases {
		entries = append(entries, ports.SelectionEntry{Label: a.Name, Value: a.Command})
	}

	chosen, ok, err := selector.Select(entries)
	if err != nil {
		return fmt.Errorf("something went wrong while browsing: %w", err)
	}
	if !ok {
		return nil // User cancelled; exit silently
	}
	return executeAndReport(cmd, engine, chosen.Label, nil)
}
