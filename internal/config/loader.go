package config

import (
	"fmt"
	"os"
	"path/filepath"

	"mergelist/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/mergelist"
	projectConfigDir = ".mergelist"
	configFileName   = "config.yaml"
)

// LoadConfig loads the configuration by layering default, user, and project settings.
func LoadConfig() (MergelistConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if config, err = overlayFile(config, userConfigPath); err != nil {
		return MergelistConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if config, err = overlayFile(config, projectConfigPath); err != nil {
		return MergelistConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if err := config.Validate(); err != nil {
		return MergelistConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// LoadConfigFromPath loads a single configuration file on top of the defaults.
// path may be the file itself or a directory containing config.yaml.
func LoadConfigFromPath(path string) (MergelistConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		return MergelistConfig{}, fmt.Errorf("config path %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, configFileName)
	}

	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return MergelistConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), overlay)
	if err := config.Validate(); err != nil {
		return MergelistConfig{}, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	logging.Debug("Config", "Loaded configuration from %s", path)
	return config, nil
}

// overlayFile merges the file at path into base when the file exists.
func overlayFile(base MergelistConfig, path string) (MergelistConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	logging.Debug("Config", "Applied configuration layer %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a MergelistConfig from a YAML file.
func loadConfigFromFile(filePath string) (MergelistConfig, error) {
	var config MergelistConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return MergelistConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return MergelistConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Blocks are matched by
// name: an overlay block replaces the base block in place, new blocks are
// appended in overlay order.
func mergeConfigs(base, overlay MergelistConfig) MergelistConfig {
	merged := base

	if overlay.Settings.LogLevel != "" {
		merged.Settings.LogLevel = overlay.Settings.LogLevel
	}
	if overlay.Settings.DarkMode != nil {
		merged.Settings.DarkMode = overlay.Settings.DarkMode
	}
	if overlay.Screen.Title != "" {
		merged.Screen.Title = overlay.Screen.Title
	}

	index := make(map[string]int, len(base.Screen.Blocks))
	merged.Screen.Blocks = make([]Block, len(base.Screen.Blocks))
	copy(merged.Screen.Blocks, base.Screen.Blocks)
	for i, b := range merged.Screen.Blocks {
		index[b.Name] = i
	}
	for _, b := range overlay.Screen.Blocks {
		if i, ok := index[b.Name]; ok {
			merged.Screen.Blocks[i] = b
			continue
		}
		index[b.Name] = len(merged.Screen.Blocks)
		merged.Screen.Blocks = append(merged.Screen.Blocks, b)
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
