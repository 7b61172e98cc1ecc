package predefinedaliases

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/AntonioJCosta/zen/internal/core/domain/alias"
	"github.com/AntonioJCosta/zen/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the PredefinedAliasProvider interface
// by reading a list of {alias, command} entries from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider for the file at filePath.
func NewYAMLProvider(filePath string) (ports.PredefinedAliasProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetPredefinedAliases reads and parses aliases from the configured YAML file.
// The file was named by the user, so a missing file is an error; an empty one
// yields an empty list. Unknown fields are rejected so typos such as "name:"
// surface as errors.
func (p *YAMLProvider) GetPredefinedAliases() ([]alias.Alias, error) {
	predefined := []alias.Alias{}

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("alias file %s does not exist", p.filePath)
		}
		return nil, fmt.Errorf("failed to read alias file %s: %w", p.filePath, err)
	}
	if len(yamlFile) == 0 {
		return predefined, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&predefined); err != nil {
		// A document holding only comments or "---" decodes to EOF.
		if errors.Is(err, io.EOF) {
			return []alias.Alias{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal aliases from %s: %w", p.filePath, err)
	}

	return predefined, nil
}
