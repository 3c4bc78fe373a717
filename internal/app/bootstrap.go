package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"mergelist/internal/config"
	"mergelist/internal/screen"
	"mergelist/pkg/logging"
)

// Application is the main application structure that bootstraps and runs mergelist
type Application struct {
	config *Config
	screen *screen.Screen
	out    io.Writer
}

// NewApplication loads the configuration and builds the screen.
func NewApplication(cfg *Config) (*Application, error) {
	// Initialize logging for CLI output (will be replaced for TUI mode)
	logging.InitForCLI(logLevel(cfg, ""), os.Stderr)

	var mlCfg config.MergelistConfig
	var err error

	if cfg.ConfigPath != "" {
		mlCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		mlCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}
	cfg.MergelistConfig = &mlCfg

	// Re-initialize now that the configured level is known
	logging.InitForCLI(logLevel(cfg, mlCfg.Settings.LogLevel), os.Stderr)

	s, err := screen.Build(mlCfg.Screen)
	if err != nil {
		return nil, err
	}
	for _, name := range cfg.Inactive {
		if err := s.SetActive(name, false); err != nil {
			return nil, fmt.Errorf("failed to deactivate block: %w", err)
		}
	}

	return &Application{
		config: cfg,
		screen: s,
		out:    os.Stdout,
	}, nil
}

// logLevel resolves the effective level: --debug wins, then the configured
// level, then info.
func logLevel(cfg *Config, configured string) logging.LogLevel {
	if cfg.Debug {
		return logging.LevelDebug
	}
	if configured == "" {
		return logging.LevelInfo
	}
	level, err := logging.ParseLevel(configured)
	if err != nil {
		logging.Warn("Bootstrap", "Ignoring configured log level: %v", err)
	}
	return level
}

// Screen returns the built screen.
func (a *Application) Screen() *screen.Screen {
	return a.screen
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.NoTUI {
		return a.runCLIMode(ctx)
	}
	return a.runTUIMode(ctx)
}

// runCLIMode runs the application in non-interactive CLI mode
func (a *Application) runCLIMode(ctx context.Context) error {
	return runCLIMode(ctx, a.config, a.screen, a.out)
}

// runTUIMode runs the application in interactive TUI mode
func (a *Application) runTUIMode(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.screen)
}
