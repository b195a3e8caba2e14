package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/remitflow/wallet-backend/internal/domain"
)

// CorridorTables is the YAML layout of a corridor override file:
//
//	allowed:
//	  - {from: UG, to: US}
//	blocked:
//	  - {from: US, to: CN}
type CorridorTables struct {
	Allowed []domain.Corridor `yaml:"allowed"`
	Blocked []domain.Corridor `yaml:"blocked"`
}

// LoadCorridors reads corridor tables from a YAML file
// Consistency (disjoint tables, supported countries) is checked by the registry
func LoadCorridors(path string) (*CorridorTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corridors file: %w", err)
	}

	var tables CorridorTables
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse corridors file: %w", err)
	}

	if len(tables.Allowed) == 0 {
		return nil, fmt.Errorf("corridors file %s: allow-list is empty", path)
	}

	return &tables, nil
}
