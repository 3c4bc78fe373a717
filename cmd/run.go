package cmd

import (
	"context"
	"fmt"

	"mergelist/internal/app"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		noTUI      bool
		debug      bool
		configPath string
		inactive   []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Browse the configured screen in an interactive TUI or print it.",
		Long: `Builds the configured screen and shows it.

1. Interactive TUI Mode (default):
   - Scroll the merged list, jump between sections with [ and ].
   - Show or hide blocks with the number keys 1-9.
   - Copy the row under the cursor with y.

2. Non-TUI / CLI Mode (using --no-tui flag):
   - Prints the title and the text of every visible row, then exits.

Configuration:
  mergelist layers ~/.config/mergelist/config.yaml and ./.mergelist/config.yaml
  over its built-in sample screen. Use --config to load a single file or
  directory instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.NewConfig(noTUI, debug, configPath)
			cfg.Inactive = inactive

			application, err := app.NewApplication(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return application.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "Print the rows instead of starting the TUI")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&configPath, "config", "", "Configuration file or directory (replaces the layered lookup)")
	cmd.Flags().StringSliceVar(&inactive, "inactive", nil, "Blocks to hide at start-up")
	return cmd
}
