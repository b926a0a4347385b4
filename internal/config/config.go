package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds application configuration: where the mixer lives and which
// MIDI input port was last used.
type Config struct {
	MixerIP    string `json:"mixer_ip"`
	MixerPort  int    `json:"mixer_port"`
	MidiDevice string `json:"midi_device,omitempty"`
}

func defaults() *Config {
	return &Config{
		MixerIP:   "192.168.1.100",
		MixerPort: 10024,
	}
}

// DefaultPath returns the platform-appropriate config file location.
func DefaultPath() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "xtouch-mini", "config.json"), nil
}

// Load reads the config from disk, returning defaults if not found.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaults(), nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.MixerIP == "" {
		cfg.MixerIP = defaults().MixerIP
	}
	if cfg.MixerPort == 0 {
		cfg.MixerPort = defaults().MixerPort
	}
	return &cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
