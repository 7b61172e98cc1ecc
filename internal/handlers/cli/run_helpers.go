package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AntonioJCosta/zen/internal/core/ports"
	"github.com/AntonioJCosta/zen/internal/handlers/ui"
	"github.com/spf13/cobra"
)

const registerFlag = "--register"

func loadEngineOrFail(loadEngine EngineLoader) (ports.AliasEngine, error) {
	engine, err := loadEngine()
	if err != nil {
		return nil, fmt.Errorf("could not initialize zen: %w", err)
	}
	return engine, nil
}

// wantsHelp reports whether a command with flag parsing disabled was asked for help.
func wantsHelp(args []string) bool {
	return len(args) > 0 && (args[0] == "-h" || args[0] == "--help")
}

// wantsVersion is the --version counterpart of wantsHelp.
func wantsVersion(args []string) bool {
	return len(args) == 1 && args[0] == "--version"
}

// splitRegister splits `<alias words...> --register <command words...>`.
// ok is false when args do not use the shorthand.
func splitRegister(args []string) (name, template string, ok bool) {
	idx := slices.Index(args, registerFlag)
	if idx < 0 {
		return "", "", false
	}
	return strings.Join(args[:idx], " "), strings.Join(args[idx+1:], " "), true
}

func registerAndReport(cmd *cobra.Command, engine ports.AliasEngine, name, template string) error {
	if err := engine.RegisterAlias(name, template); err != nil {
		return fmt.Errorf("could not register alias: %w", err)
	}
	ui.PrintRegistered(cmd.OutOrStdout(), name, template)
	return nil
}

// executeAndReport runs an alias. A missing alias prints guidance and is not an error;
// a non-zero exit of the command is returned as *ExitError.
func executeAndReport(cmd *cobra.Command, engine ports.AliasEngine, name string, args []string) error {
	result, err := engine.ExecuteAlias(name, args)
	if err != nil {
		return fmt.Errorf("something went wrong while executing the command: %w", err)
	}
	if result.Status == ports.ExecuteNotFound {
		ui.PrintAliasNotFound(cmd.OutOrStdout(), name)
		return nil
	}
	if !result.Outcome.Success() {
		return &ExitError{Code: result.Outcome.ExitCode}
	}
	return nil
}

// runOrRegister is shared by `zen run` and `zz`.
func runOrRegister(cmd *cobra.Command, args []string, loadEngine EngineLoader, selector ports.Selector) error {
	if len(args) == 0 {
		return runBrowse(cmd, loadEngine, selector)
	}

	name, template, isRegister := splitRegister(args)
	if isRegister && name == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Usage: zz <alias> --register <command> [args]")
		return nil
	}

	engine, err := loadEngineOrFail(loadEngine)
	if err != nil {
		return err
	}
	if isRegister {
		return registerAndReport(cmd, engine, name, template)
	}
	return executeAndReport(cmd, engine, args[0], args[1:])
}
