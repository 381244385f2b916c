package config

import (
	_ "embed"
)

//go:embed defaults/tilt48.yaml
var defaultConfigYAML []byte

// DefaultConfig returns the built-in configuration, used if even the
// embedded YAML fails to parse.
func DefaultConfig() Config {
	return Config{
		Spawn: SpawnConfig{
			FourProbability: 0.2,
		},
		Database: DatabaseConfig{
			Path: "~/.tilt48/tilt48.db",
		},
		Server: ServerConfig{
			Address:            ":23248",
			HostKey:            "",
			IdleTimeoutMinutes: 30,
		},
		UI: UIConfig{
			Theme: "classic",
		},
	}
}
