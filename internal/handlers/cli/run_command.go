package cli

import (
	"github.com/AntonioJCosta/zen/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(loadEngine EngineLoader, selector ports.Selector) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [alias] [args...]",
		Short: "Execute a registered alias.",
		Long: `Runs the command bound to <alias>. Arguments fill {} placeholders in order and
any left over are appended. Without an alias, opens the interactive browser.

  zen run <alias...> --register <command...>   registers instead of running`,
		// Alias arguments such as --port must reach the command unchanged.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if wantsHelp(args) {
				return cmd.Help()
			}
			return runOrRegister(cmd, args, loadEngine, selector)
		},
	}
	return cmd
}
