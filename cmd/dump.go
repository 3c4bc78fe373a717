package cmd

import (
	"fmt"

	"mergelist/internal/app"
	"mergelist/internal/cli"

	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var (
		configPath string
		inactive   []string
		output     string
		color      bool
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every row of the merged list with its position metadata",
		Long: `Prints one line per row: global position, owning block, position inside
the block, view type, item id, whether the row is selectable and its text.
The table footer carries the row count, view type count and section labels.
Use --output json or yaml for machine-readable output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cli.ParseOutputFormat(output)
			if err != nil {
				return err
			}

			cfg := app.NewConfig(true, false, configPath)
			cfg.Inactive = inactive

			application, err := app.NewApplication(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			printer := cli.NewPrinter(cmd.OutOrStdout(), cli.PrinterOptions{Format: format, Color: color})
			return printer.Print(cli.NewDump(application.Screen(), app.DumpWidth))
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Configuration file or directory (replaces the layered lookup)")
	cmd.Flags().StringSliceVar(&inactive, "inactive", nil, "Blocks to hide before dumping")
	cmd.Flags().StringVarP(&output, "output", "o", string(cli.OutputFormatTable), "Output format: table, json, yaml or text")
	cmd.Flags().BoolVar(&color, "color", false, "Colour the table output")
	return cmd
}
