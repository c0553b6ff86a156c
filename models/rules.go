package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CuratedPattern maps an exact URL substring to a fixed display title.
type CuratedPattern struct {
	Pattern string `yaml:"pattern"`
	Title   string `yaml:"title"`
}

// DomainLabel maps a host substring to a short site label.
type DomainLabel struct {
	Domain string `yaml:"domain"`
	Label  string `yaml:"label"`
}

// RulesFile is the optional YAML overlay merged in front of the built-in
// lookup tables at process start. Entries here win over the defaults
// because the tables are consulted in order.
type RulesFile struct {
	Curated []CuratedPattern `yaml:"curated"`
	Domains []DomainLabel    `yaml:"domains"`
	Allow   []string         `yaml:"allow"`
	Deny    []string         `yaml:"deny"`
}

// LoadRules reads and parses a rules overlay file.
func LoadRules(path string) (*RulesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	var rf RulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}
	return &rf, nil
}
