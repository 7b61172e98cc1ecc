/*
Package config gathers the process-boundary settings zen runs with.

Settings come from the process environment. An optional .env file in the
working directory may supply the ZEN_* variables; real environment values
always win, and SHELL is never taken from the file. The .env file usually
belongs to the project zen runs in, so one zen cannot read is skipped.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvShell selects the shell used to run aliases.
	EnvShell = "SHELL"
	// EnvUseInteractive launches the shell with -i when set to "true" (any case).
	EnvUseInteractive = "ZEN_USE_INTERACTIVE"
	// EnvConfigFile overrides the registry artifact path.
	EnvConfigFile = "ZEN_CONFIG_FILE"

	// DotEnvFile is the optional overlay read from the working directory.
	DotEnvFile = ".env"

	DefaultShell        = "/bin/sh"
	DefaultRegistryFile = "zen-config.toml"
)

// Settings is the explicit configuration handed to the adapters.
type Settings struct {
	Shell        string
	Interactive  bool
	RegistryPath string
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load builds Settings from the process environment layered over DotEnvFile.
// The returned Settings are always usable. A non-nil error reports a .env file
// that could not be read or parsed and was ignored.
func Load() (Settings, error) {
	fileVars, err := readDotEnv(DotEnvFile)
	if err != nil {
		return FromLookup(os.LookupEnv), err
	}
	return FromLookup(layered(os.LookupEnv, fileVars)), nil
}

// FromLookup builds Settings from an arbitrary variable source.
func FromLookup(lookup LookupFunc) Settings {
	s := Settings{
		Shell:        DefaultShell,
		RegistryPath: DefaultRegistryFile,
	}
	if shell, ok := lookup(EnvShell); ok && shell != "" {
		s.Shell = shell
	}
	if v, ok := lookup(EnvUseInteractive); ok {
		s.Interactive = strings.EqualFold(v, "true")
	}
	if path, ok := lookup(EnvConfigFile); ok && path != "" {
		s.RegistryPath = path
	}
	return s
}

// MapLookup serves variables from a map, for tests and overlays.
func MapLookup(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func readDotEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("ignoring %s: %w", path, err)
	}
	// Only zen's own variables are honored from the file.
	for key := range vars {
		if !strings.HasPrefix(key, "ZEN_") {
			delete(vars, key)
		}
	}
	return vars, nil
}

func layered(primary LookupFunc, fallback map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		if v, ok := primary(key); ok {
			return v, true
		}
		v, ok := fallback[key]
		return v, ok
	}
}
