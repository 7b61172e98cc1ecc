package fzf

import (
	"strings"

	"github.com/AntonioJCosta/zen/internal/core/ports"
)

// buildInput renders one line per entry and indexes entries by label so the
// line fzf prints back can be mapped to the original entry.
func buildInput(entries []ports.SelectionEntry) (string, map[string]ports.SelectionEntry) {
	var buf strings.Builder
	byLabel := make(map[string]ports.SelectionEntry, len(entries))
	for i, e := range entries {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(sanitize(e.Label))
		buf.WriteByte('\t')
		buf.WriteString(sanitize(e.Value))
		byLabel[sanitize(e.Label)] = e
	}
	return buf.String(), byLabel
}

// parseSelection maps fzf's output back to the chosen entry. Empty output is a cancellation.
func parseSelection(output string, byLabel map[string]ports.SelectionEntry) (ports.SelectionEntry, bool, error) {
	line := strings.TrimSpace(output)
	if line == "" {
		return ports.SelectionEntry{}, false, nil
	}
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	label, value, _ := strings.Cut(line, "\t")
	if entry, ok := byLabel[label]; ok {
		return entry, true, nil
	}
	return ports.SelectionEntry{Label: label, Value: value}, true, nil
}

// sanitize keeps an entry on a single line with exactly one tab separator.
func sanitize(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}
