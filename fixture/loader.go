// Package fixture loads case lists from YAML and JSON files, so
// data-driven suites can keep their tables next to the code instead of
// inline. Loading only decodes; shape detection and consistency
// validation still happen in Where, keeping a single validation path.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a case list from path, choosing the codec by file
// extension (.yaml, .yml, or .json). An empty file yields an empty
// list, which registers zero tests downstream.
func Load(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported fixture format %q for %s (want .yaml, .yml, or .json)",
			filepath.Ext(path), path)
	}
}

// ParseYAML decodes YAML data into a case list. Mappings decode to
// object-shaped records; a list of lists decodes to table shape.
func ParseYAML(data []byte) ([]any, error) {
	var list []any

	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse fixture YAML: %w", err)
	}

	return list, nil
}

// ParseJSON decodes JSON data into a case list.
func ParseJSON(data []byte) ([]any, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var list []any

	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse fixture JSON: %w", err)
	}

	return list, nil
}
