package app

import (
	"context"
	"io"

	"mergelist/internal/cli"
	"mergelist/internal/screen"
	"mergelist/internal/tui"
	"mergelist/internal/tui/design"
	"mergelist/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// DumpWidth is the row width used when rendering without a terminal.
const DumpWidth = 60

// runCLIMode prints the title and every visible row instead of starting the TUI.
func runCLIMode(ctx context.Context, config *Config, s *screen.Screen, out io.Writer) error {
	logging.Debug("CLI", "Running in no-TUI mode.")
	if err := ctx.Err(); err != nil {
		return err
	}
	return cli.NewPrinter(out, cli.PrinterOptions{Format: cli.OutputFormatText}).Print(cli.NewDump(s, DumpWidth))
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, s *screen.Screen) error {
	logging.Info("CLI", "Starting TUI mode...")

	darkMode := true
	if config.MergelistConfig != nil && config.MergelistConfig.Settings.DarkMode != nil {
		darkMode = *config.MergelistConfig.Settings.DarkMode
	}
	design.Initialize(darkMode)

	// Switch logging to channel-based system for TUI integration
	level := logging.LevelInfo
	if config.Debug {
		level = logging.LevelDebug
	}
	logChan := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()

	p, err := tui.NewProgram(tui.Config{
		Screen:     s,
		DarkMode:   darkMode,
		DebugMode:  config.Debug,
		LogChannel: logChan,
	}, tea.WithContext(ctx))
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}
