package fzf

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/AntonioJCosta/zen/internal/core/ports"
)

// writeFakeFZF installs an executable script that stands in for fzf.
func writeFakeFZF(t *testing.T, body string) string {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
	path := filepath.Join(t.TempDir(), "fzf")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write fake fzf: %v", err)
	}
	return path
}

var testEntries = []ports.SelectionEntry{
	{Label: "dev", Value: "npm run dev"},
	{Label: "test", Value: "go test ./..."},
}

func TestSelector_Available(t *testing.T) {
	tests := []struct {
		name   string
		binary func(t *testing.T) string
		want   bool
	}{
		{
			name:   "binary answers --version",
			binary: func(t *testing.T) string { return writeFakeFZF(t, `[ "$1" = "--version" ] && echo 0.44.1`) },
			want:   true,
		},
		{
			name:   "binary fails --version",
			binary: func(t *testing.T) string { return writeFakeFZF(t, "exit 2") },
			want:   false,
		},
		{
			name:   "binary missing",
			binary: func(t *testing.T) string { return filepath.Join(t.TempDir(), "no-fzf-here") },
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector(tt.binary(t), "")
			if got := s.Available(); got != tt.want {
				t.Errorf("Available() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelector_Select(t *testing.T) {
	tests := []struct {
		name      string
		script    string
		wantEntry ports.SelectionEntry
		wantOK    bool
	}{
		{
			name:      "first line chosen",
			script:    "head -n 1",
			wantEntry: testEntries[0],
			wantOK:    true,
		},
		{
			name:      "second line chosen",
			script:    "sed -n 2p",
			wantEntry: testEntries[1],
			wantOK:    true,
		},
		{
			name:   "cancelled with exit 130",
			script: "cat >/dev/null; exit 130",
			wantOK: false,
		},
		{
			name:   "no match with exit 1",
			script: "cat >/dev/null; exit 1",
			wantOK: false,
		},
		{
			name:   "empty output",
			script: "cat >/dev/null",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector(writeFakeFZF(t, tt.script), "zen> ")

			got, ok, err := s.Select(testEntries)
			if err != nil {
				t.Fatalf("Select() unexpected error = %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("Select() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.wantEntry {
				t.Errorf("Select() = %+v, want %+v", got, tt.wantEntry)
			}
		})
	}
}

func TestSelector_SelectReceivesFullInputAndArgs(t *testing.T) {
	dir := t.TempDir()
	stdinFile := filepath.Join(dir, "stdin")
	argsFile := filepath.Join(dir, "args")
	bin := writeFakeFZF(t, `printf '%s\n' "$@" > `+argsFile+`; cat > `+stdinFile+`; exit 130`)

	if _, _, err := NewSelector(bin, "pick> ").Select(testEntries); err != nil {
		t.Fatalf("Select() unexpected error = %v", err)
	}

	gotInput, err := os.ReadFile(stdinFile)
	if err != nil {
		t.Fatalf("failed to read captured stdin: %v", err)
	}
	wantInput := "dev\tnpm run dev\ntest\tgo test ./..."
	if string(gotInput) != wantInput {
		t.Errorf("fzf stdin = %q, want %q", gotInput, wantInput)
	}

	gotArgs, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("failed to read captured args: %v", err)
	}
	wantArgs := "--delimiter=\t\n--with-nth=1\n--preview=echo {2}\n--prompt\npick> \n"
	if string(gotArgs) != wantArgs {
		t.Errorf("fzf args = %q, want %q", gotArgs, wantArgs)
	}
}

func TestSelector_SelectNoEntries(t *testing.T) {
	s := NewSelector(filepath.Join(t.TempDir(), "never-run"), "")
	_, ok, err := s.Select(nil)
	if err != nil || ok {
		t.Errorf("Select(nil) = ok %v, err %v; want false, nil", ok, err)
	}
}

func TestSelector_SelectSpawnFailure(t *testing.T) {
	s := NewSelector(filepath.Join(t.TempDir(), "missing-fzf"), "")
	_, ok, err := s.Select(testEntries)
	if ok {
		t.Error("Select() ok = true, want false")
	}
	if !errors.Is(err, ports.ErrSpawn) {
		t.Errorf("Select() error = %v, want it to wrap ports.ErrSpawn", err)
	}
}

func TestParseSelection(t *testing.T) {
	byLabel := map[string]ports.SelectionEntry{"dev": testEntries[0]}

	tests := []struct {
		name   string
		output string
		want   ports.SelectionEntry
		wantOK bool
	}{
		{"known label", "dev\tnpm run dev\n", testEntries[0], true},
		{"known label without value", "dev\n", testEntries[0], true},
		{"unknown line falls back to fields", "x\ty z\n", ports.SelectionEntry{Label: "x", Value: "y z"}, true},
		{"only first line is used", "dev\tnpm run dev\nother\tls\n", testEntries[0], true},
		{"blank output", "  \n", ports.SelectionEntry{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := parseSelection(tt.output, byLabel)
			if err != nil {
				t.Fatalf("parseSelection() unexpected error = %v", err)
			}
			if ok != tt.wantOK || !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSelection() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestBuildInputSanitizesEntries(t *testing.T) {
	input, byLabel := buildInput([]ports.SelectionEntry{{Label: "a\tb", Value: "line1\nline2"}})
	if input != "a b\tline1 line2" {
		t.Errorf("buildInput() = %q", input)
	}
	if _, ok := byLabel["a b"]; !ok {
		t.Errorf("buildInput() index missing sanitized label, got %v", byLabel)
	}
}
