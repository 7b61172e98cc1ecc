package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLookup(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want Settings
	}{
		{
			name: "defaults when nothing is set",
			vars: map[string]string{},
			want: Settings{Shell: DefaultShell, RegistryPath: DefaultRegistryFile},
		},
		{
			name: "shell from environment",
			vars: map[string]string{EnvShell: "/bin/zsh"},
			want: Settings{Shell: "/bin/zsh", RegistryPath: DefaultRegistryFile},
		},
		{
			name: "empty shell falls back",
			vars: map[string]string{EnvShell: ""},
			want: Settings{Shell: DefaultShell, RegistryPath: DefaultRegistryFile},
		},
		{
			name: "interactive true",
			vars: map[string]string{EnvUseInteractive: "true"},
			want: Settings{Shell: DefaultShell, Interactive: true, RegistryPath: DefaultRegistryFile},
		},
		{
			name: "interactive is case-insensitive",
			vars: map[string]string{EnvUseInteractive: "TrUe"},
			want: Settings{Shell: DefaultShell, Interactive: true, RegistryPath: DefaultRegistryFile},
		},
		{
			name: "surrounding whitespace is not true",
			vars: map[string]string{EnvUseInteractive: " true "},
			want: Settings{Shell: DefaultShell, RegistryPath: DefaultRegistryFile},
		},
		{
			name: "other values are not interactive",
			vars: map[string]string{EnvUseInteractive: "1"},
			want: Settings{Shell: DefaultShell, RegistryPath: DefaultRegistryFile},
		},
		{
			name: "registry path override",
			vars: map[string]string{EnvConfigFile: "/etc/zen.toml"},
			want: Settings{Shell: DefaultShell, RegistryPath: "/etc/zen.toml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromLookup(MapLookup(tt.vars)))
		})
	}
}

func TestLoad_WithoutDotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvShell, "/bin/bash")
	t.Setenv(EnvUseInteractive, "false")
	t.Setenv(EnvConfigFile, "")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Settings{Shell: "/bin/bash", RegistryPath: DefaultRegistryFile}, s)
}

func TestLoad_DotEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	content := "ZEN_USE_INTERACTIVE=true\nZEN_CONFIG_FILE=aliases.toml\nSHELL=/bin/fish\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DotEnvFile), []byte(content), 0644))

	t.Setenv(EnvShell, "/bin/bash")
	// t.Setenv restores the variable afterwards; unset it for this test.
	t.Setenv(EnvUseInteractive, "")
	require.NoError(t, os.Unsetenv(EnvUseInteractive))
	t.Setenv(EnvConfigFile, "")
	require.NoError(t, os.Unsetenv(EnvConfigFile))

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/bin/bash", s.Shell, "SHELL must not come from the file")
	assert.True(t, s.Interactive)
	assert.Equal(t, "aliases.toml", s.RegistryPath)
}

func TestLoad_EnvironmentWinsOverDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DotEnvFile), []byte("ZEN_USE_INTERACTIVE=true\n"), 0644))
	t.Setenv(EnvUseInteractive, "no")

	s, err := Load()
	require.NoError(t, err)
	assert.False(t, s.Interactive)
}

func TestLoad_UnusableDotEnvIsIgnored(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unterminated quote", "ZEN_USE_INTERACTIVE=true\nDATABASE_URL=\"postgres://localhost/app\n"},
		{"bare export", "export\n"},
		{"key with space", "FOO BAR\n"},
		{"json", "{\"ZEN_CONFIG_FILE\": \"x.toml\"}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			chdir(t, dir)
			require.NoError(t, os.WriteFile(filepath.Join(dir, DotEnvFile), []byte(tt.content), 0644))
			t.Setenv(EnvShell, "/bin/bash")
			t.Setenv(EnvUseInteractive, "")
			require.NoError(t, os.Unsetenv(EnvUseInteractive))
			t.Setenv(EnvConfigFile, "")
			require.NoError(t, os.Unsetenv(EnvConfigFile))

			s, err := Load()
			assert.Error(t, err)
			assert.Equal(t, Settings{Shell: "/bin/bash", RegistryPath: DefaultRegistryFile}, s)
		})
	}
}

func TestLoad_UnreadableDotEnvIsIgnored(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.Mkdir(filepath.Join(dir, DotEnvFile), 0755))
	t.Setenv(EnvShell, "/bin/zsh")

	s, err := Load()
	assert.Error(t, err)
	assert.Equal(t, "/bin/zsh", s.Shell)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores the original one when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}
