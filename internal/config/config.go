// Package config handles optional TOML configuration and defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = "tcrdo.toml"

// Config holds the paths and the initial test command. Every field is
// optional; zero values fall back to the defaults below.
type Config struct {
	// TaskFile is the markdown task list path.
	TaskFile string `toml:"task_file"`

	// ExportFile is the JSON export path.
	ExportFile string `toml:"export_file"`

	// LogFile enables file logging when set.
	LogFile string `toml:"log_file"`

	// TestCommand seeds the in-session test command. The command is
	// never written back, so edits made in the UI last for one run.
	TestCommand string `toml:"test_command"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		TaskFile:   "tasks.md",
		ExportFile: "tasks.json",
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. A file that exists but fails to parse is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file: %w", err)
	}
	if cfg.TaskFile == "" {
		cfg.TaskFile = Default().TaskFile
	}
	if cfg.ExportFile == "" {
		cfg.ExportFile = Default().ExportFile
	}
	return cfg, nil
}
