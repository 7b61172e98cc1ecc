package cli

import (
	"fmt"

	"github.com/AntonioJCosta/zen/internal/core/ports"
	"github.com/AntonioJCosta/zen/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(loadEngine EngineLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show all registered aliases.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := loadEngineOrFail(loadEngine)
			if err != nil {
				return err
			}
			printAliasList(cmd, engine)
			return nil
		},
	}
	return cmd
}

func printAliasList(cmd *cobra.Command, engine ports.AliasEngine) {
	out := cmd.OutOrStdout()
	if engine.IsEmpty() {
		ui.PrintNoAliases(out)
		return
	}

	fmt.Fprintln(out, ui.HeaderColor("Available aliases:"))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias", "Command"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, a := range engine.ListAliases() {
		table.Append([]string{a.Name, a.Command})
	}
	table.Render()

	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(Source: %s)", engine.ConfigPath())))
}
