// Package config provides YAML-based configuration loading for the
// tilt48 game: spawn behavior, database location, SSH server settings,
// and UI theme selection.
package config

// Config is the root configuration for tilt48.
type Config struct {
	Spawn    SpawnConfig    `yaml:"spawn"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	UI       UIConfig       `yaml:"ui"`
}

// SpawnConfig controls random tile placement.
type SpawnConfig struct {
	// FourProbability is the chance a spawned tile is a 4 instead of
	// a 2, in [0, 1].
	FourProbability float64 `yaml:"four_probability"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig holds SSH server settings.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// UIConfig selects presentation options.
type UIConfig struct {
	Theme string `yaml:"theme"`
}

// Preset is a named spawn behavior.
type Preset string

const (
	// PresetClassic matches the original web game: 10% fours.
	PresetClassic Preset = "classic"
	// PresetStandard is the default here: 20% fours.
	PresetStandard Preset = "standard"
)

// FourProbabilityForPreset returns the spawn probability for a preset.
func FourProbabilityForPreset(p Preset) float64 {
	switch p {
	case PresetClassic:
		return 0.1
	case PresetStandard:
		return 0.2
	default:
		return 0.2
	}
}

// ApplyPreset overrides the spawn section from a preset name.
// Unknown presets are ignored.
func ApplyPreset(cfg *Config, p Preset) {
	switch p {
	case PresetClassic, PresetStandard:
		cfg.Spawn.FourProbability = FourProbabilityForPreset(p)
	}
}
