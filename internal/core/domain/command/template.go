/*
Package command turns alias templates into the command lines handed to the shell.
*/
package command

import "strings"

// Placeholder marks an insertion point for one positional argument.
const Placeholder = "{}"

/*
Substitute resolves a template against caller arguments.

Placeholders are filled left to right, one argument each. Arguments that remain
once the template has no more placeholders are appended, each preceded by a
single space. Placeholders without a matching argument are kept verbatim, so
"test {} --verbose" with no arguments resolves to itself.
*/
func Substitute(template string, args []string) string {
	var b strings.Builder
	rest := template
	used := 0

	for used < len(args) {
		idx := strings.Index(rest, Placeholder)
		if idx < 0 {
			break
		}
		b.WriteString(rest[:idx])
		b.WriteString(args[used])
		rest = rest[idx+len(Placeholder):]
		used++
	}
	b.WriteString(rest)

	for _, arg := range args[used:] {
		b.WriteByte(' ')
		b.WriteString(arg)
	}
	return b.String()
}
