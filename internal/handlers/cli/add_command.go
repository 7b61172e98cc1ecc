package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewAddCommand creates the 'add' subcommand.
func NewAddCommand(loadEngine EngineLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <alias> <command...>",
		Short: "Register a new command alias.",
		Long: `Binds <alias> to the command formed by joining the remaining words with spaces.
Re-adding an existing alias replaces its command. Use {} in the command to mark
where run arguments are inserted.`,
		// The command words may look like flags (ls -la); pass them through untouched.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCmd(cmd, args, loadEngine)
		},
	}
	return cmd
}

func runAddCmd(cmd *cobra.Command, args []string, loadEngine EngineLoader) error {
	if wantsHelp(args) {
		return cmd.Help()
	}
	if len(args) < 2 {
		fmt.Fprintln(cmd.OutOrStdout(), "Usage: zen add <alias> <command>")
		return nil
	}

	engine, err := loadEngineOrFail(loadEngine)
	if err != nil {
		return err
	}
	return registerAndReport(cmd, engine, args[0], strings.Join(args[1:], " "))
}
