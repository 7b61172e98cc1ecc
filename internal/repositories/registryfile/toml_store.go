package registryfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/zen/internal/core/domain/registry"
	"github.com/AntonioJCosta/zen/internal/core/ports"
	"github.com/BurntSushi/toml"
)

// DefaultFilename is the registry artifact looked up in the working directory.
const DefaultFilename = "zen-config.toml"

const commandsKey = "commands"

const fileHeader = "# zen alias registry. Placeholders ({}) are filled with run arguments in order.\n\n"

// TOMLStore persists the registry as a TOML document with a single [commands] table.
type TOMLStore struct {
	path string
}

// NewTOMLStore creates a store backed by the file at path.
// An empty path selects DefaultFilename in the working directory.
func NewTOMLStore(path string) ports.RegistryStore {
	if path == "" {
		path = DefaultFilename
	}
	return &TOMLStore{path: path}
}

func (s *TOMLStore) Path() string {
	return s.path
}

// Load implements the ports.RegistryStore interface.
func (s *TOMLStore) Load() (*registry.Registry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return registry.New(), nil // No artifact yet is an empty registry
		}
		return nil, fmt.Errorf("%w: failed to read %s: %w", ports.ErrIO, toUserFriendlyPath(s.path), err)
	}

	var reg registry.Registry
	md, err := toml.Decode(string(data), &reg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ports.ErrDeserialization, toUserFriendlyPath(s.path), err)
	}
	// The decoder skips a non-table value for a map field instead of failing.
	// Tables implied by dotted keys carry no type.
	if typ := md.Type(commandsKey); md.IsDefined(commandsKey) && typ != "" && typ != "Hash" {
		return nil, fmt.Errorf("%w: failed to parse %s: %q must be a table of strings, found %s",
			ports.ErrDeserialization, toUserFriendlyPath(s.path), commandsKey, typ)
	}
	if reg.Commands == nil {
		reg.Commands = make(map[string]string)
	}
	return &reg, nil
}

// Save implements the ports.RegistryStore interface. The file is rewritten in full.
func (s *TOMLStore) Save(reg *registry.Registry) error {
	if reg == nil {
		reg = registry.New()
	}

	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	if err := toml.NewEncoder(&buf).Encode(reg); err != nil {
		return fmt.Errorf("%w: failed to encode registry: %w", ports.ErrSerialization, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create directory %s: %w", ports.ErrIO, toUserFriendlyPath(dir), err)
		}
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ports.ErrIO, toUserFriendlyPath(s.path), err)
	}
	return nil
}
