package assertion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// suiteFile is the on-disk structure for an assertion suite
// (YAML or JSON; YAML is a superset, so one decoder covers
// both).
type suiteFile struct {
	Version string       `yaml:"version"`
	Checks  []Definition `yaml:"checks"`
}

// LoadSuiteFromFile reads a YAML or JSON file containing a
// suite of assertion definitions.
func LoadSuiteFromFile(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read suite file %s: %w", path, err,
		)
	}

	var suite suiteFile
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf(
			"failed to parse suite from %s: %w", path, err,
		)
	}

	for i, def := range suite.Checks {
		if def.Type == "" {
			return nil, fmt.Errorf(
				"check %d in %s has no type", i, path,
			)
		}
	}

	return suite.Checks, nil
}

// LoadSuitesFromDir loads all .json and .yaml/.yml suite files
// from a directory. It does not recurse into subdirectories.
func LoadSuitesFromDir(dir string) ([]Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	var defs []Definition
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		p := filepath.Join(dir, entry.Name())
		loaded, err := LoadSuiteFromFile(p)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to load %s: %w", p, err,
			)
		}
		defs = append(defs, loaded...)
	}

	return defs, nil
}

// DecodeDefinition converts a generic key/value map, as
// produced by configuration layers, into a Definition. Keys
// match field names case-insensitively.
func DecodeDefinition(m map[string]any) (Definition, error) {
	var def Definition

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &def,
		ErrorUnused: true,
	})
	if err != nil {
		return Definition{}, err
	}

	if err := dec.Decode(m); err != nil {
		return Definition{}, fmt.Errorf(
			"failed to decode assertion definition: %w", err,
		)
	}
	if def.Type == "" {
		return Definition{}, fmt.Errorf(
			"assertion definition has no type",
		)
	}

	return def, nil
}
