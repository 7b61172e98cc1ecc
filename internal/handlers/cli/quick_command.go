package cli

import (
	"fmt"

	"github.com/AntonioJCosta/zen/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewQuickCommand creates the root command of the zz launcher, a shorthand for
// `zen run`: every argument is passed through to the alias.
func NewQuickCommand(version string, loadEngine EngineLoader, selector ports.Selector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zz [alias] [args...]",
		Short: "zz - run zen aliases quickly",
		Long: `zz <alias> [args]              Same as: zen run <alias> [args]
zz <alias> --register <cmd>    Same as: zen add <alias> <cmd>
zz                             Interactive browse (fzf required)`,
		Version:            version,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}
			if wantsVersion(args) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Name(), version)
				return nil
			}
			return runOrRegister(cmd, args, loadEngine, selector)
		},
	}
	return cmd
}
