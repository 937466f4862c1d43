package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Listener *listenerSchema `toml:"listener,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported listener schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type listenerSchema struct {
	Username  string `toml:"username"`
	Device    string `toml:"device"`
	SecretRef string `toml:"secret_ref"`
}
