package app

import (
	"mergelist/internal/config"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// ConfigPath replaces the layered configuration lookup when set
	ConfigPath string

	// Inactive names blocks to switch off after the screen is built
	Inactive []string

	// Screen configuration
	MergelistConfig *config.MergelistConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
	}
}
