// Package config handles loading and saving user settings for termcrack.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all user-tunable settings.
type Config struct {
	DictDir          string `yaml:"dict_dir"`            // directory of length-keyed word lists
	MaxAttempts      int    `yaml:"max_attempts"`        // selection attempts per game
	GameOverHoldSecs int    `yaml:"game_over_hold_secs"` // seconds the end screen stays up
	HistoryPath      string `yaml:"history_path"`        // sqlite session history location
	LogFile          string `yaml:"log_file"`            // log output file
}

// Default returns the stock configuration rooted at the config directory
// dir.
func Default(dir string) *Config {
	return &Config{
		DictDir:          "assets/dict",
		MaxAttempts:      4,
		GameOverHoldSecs: 3,
		HistoryPath:      filepath.Join(dir, "history.db"),
		LogFile:          filepath.Join(dir, "termcrack.log"),
	}
}

// Load reads settings.yaml from dir. Keys the file leaves unset keep their
// defaults, and a missing file is not an error.
func Load(dir string) (*Config, error) {
	cfg := Default(dir)

	data, err := os.ReadFile(filepath.Join(dir, "settings.yaml"))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing settings file: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to settings.yaml in dir.
func Save(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "settings.yaml"), out, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}
