package toml

import "fmt"

const currentSchemaVersion = 1

type saveSchema struct {
	Version  int            `toml:"version"`
	SavedAt  string         `toml:"saved_at,omitempty"`
	Terminal terminalSchema `toml:"terminal"`
}

type terminalSchema struct {
	History          []string `toml:"history"`
	CurrentDirectory string   `toml:"cwd"`
}

func (s *saveSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s saveSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported save schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
