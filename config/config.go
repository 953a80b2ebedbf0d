package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Backend selects how chords are sounded.
type Backend string

const (
	BackendAuto  Backend = "auto"  // MIDI if a port exists, synth otherwise
	BackendMIDI  Backend = "midi"  // external MIDI port only
	BackendSynth Backend = "synth" // built-in sine synth only
)

// Config holds the user's settings. Only settings live here; the grid
// itself is ephemeral per session and never saved.
type Config struct {
	Tempo    int     `json:"tempo,omitempty"`
	Mode     string  `json:"mode,omitempty"` // forward, reverse, pingpong
	MIDIPort string  `json:"midiPort,omitempty"`
	Backend  Backend `json:"backend,omitempty"`
	Palette  string  `json:"palette,omitempty"` // path to a .gpl file
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Tempo:   120,
		Mode:    "forward",
		Backend: BackendAuto,
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "graphseq"), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Tempo == 0 {
		cfg.Tempo = 120
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendAuto
	}
	return cfg, nil
}

// Save writes the config to disk, creating the directory if needed.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
