package ui

import (
	"fmt"
	"io"
)

// PrintNoAliases explains how to register the first alias.
func PrintNoAliases(w io.Writer) {
	fmt.Fprintln(w, InfoColor("No aliases registered."))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Register an alias with:")
	fmt.Fprintln(w, CodeColor("  zen add <alias> <command>"))
}

// PrintAliasNotFound explains how to bind a command to an unknown alias.
func PrintAliasNotFound(w io.Writer, name string) {
	fmt.Fprintln(w, WarningColor(fmt.Sprintf("No command registered for alias '%s'", name)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Register a command to this alias with:")
	fmt.Fprintln(w, CodeColor(fmt.Sprintf("  zz %s --register <command> [args]", name)))
}

// PrintRegistered confirms a new or updated binding.
func PrintRegistered(w io.Writer, name, template string) {
	fmt.Fprintln(w, SuccessColor("Successfully registered alias"))
	fmt.Fprintf(w, "  %s: %s\n", AliasNameColor(name), AliasCmdColor(template))
}

// PrintFZFInstall explains how to get the picker.
func PrintFZFInstall(w io.Writer) {
	fmt.Fprintln(w, WarningColor("fzf is not installed or not in PATH."))
	fmt.Fprintln(w, "Install fzf to use the browse feature:")
	fmt.Fprintln(w, CodeColor("  brew install fzf                    # macOS"))
	fmt.Fprintln(w, CodeColor("  sudo apt install fzf                # Ubuntu/Debian"))
	fmt.Fprintln(w, CodeColor("  https://github.com/junegunn/fzf     # Other systems"))
}

// PrintListFallback introduces the plain listing shown instead of the picker.
func PrintListFallback(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, InfoColor("Falling back to list view:"))
}
