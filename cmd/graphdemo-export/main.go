// Command graphdemo-export renders the demo chart to an SVG or PNG file
// without opening a window.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/graphdemo/internal/chart"
	"github.com/ytget/graphdemo/internal/export"
	"github.com/ytget/graphdemo/internal/style"
)

type options struct {
	output    string
	format    string
	stylePath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "graphdemo-export",
		Short:        "Render the demo line chart to SVG or PNG",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path")
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: svg or png (default: from the output extension, else svg)")
	cmd.Flags().StringVar(&opts.stylePath, "style", "", "YAML stylesheet layered over the built-in one")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	format, err := resolveFormat(opts.format, opts.output)
	if err != nil {
		return err
	}

	sheet := style.Default()
	if opts.stylePath != "" {
		if sheet, err = style.Load(opts.stylePath); err != nil {
			return fmt.Errorf("stylesheet: %w", err)
		}
	}

	scene, err := chart.Build(chart.DefaultConfig())
	if err != nil {
		return fmt.Errorf("build chart: %w", err)
	}

	if err := export.WriteFile(opts.output, scene, sheet, format); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.output)
	return nil
}

// resolveFormat prefers the explicit flag, then the output extension
func resolveFormat(flag, output string) (export.Format, error) {
	if flag != "" {
		return export.ParseFormat(flag)
	}
	if f, ok := export.FormatFromPath(output); ok {
		return f, nil
	}
	return export.FormatSVG, nil
}
