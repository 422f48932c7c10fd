package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Assignment carries per-file attribute overrides from the assignments
// file, keyed by basename. Zero-value fields fall back to the batch-wide
// defaults from config.
type Assignment struct {
	Tags     []string `yaml:"tags"`
	Date     string   `yaml:"date"`
	Suffix   string   `yaml:"suffix"`
	Position string   `yaml:"position"`
}

// LoadAssignments reads a YAML map of basename → Assignment. An empty path
// returns an empty map.
func LoadAssignments(path string) (map[string]Assignment, error) {
	if path == "" {
		return map[string]Assignment{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assignments: %w", err)
	}

	out := make(map[string]Assignment)
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse assignments %s: %w", path, err)
	}
	return out, nil
}
