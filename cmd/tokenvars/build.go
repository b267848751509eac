package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/tokenvars"
)

var buildCmd = &cobra.Command{
	Use:   "build <archive.zip>",
	Short: "Generate CSS custom-property files from a token archive",
	Long: `Extract a token archive and write one CSS file per theme/output
input. Individual file failures are skipped; only extraction and
classification errors abort the run.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func runBuild(_ *cobra.Command, args []string) error {
	config := buildRunConfig(args[0])

	report, err := tokenvars.Run(config)
	if err != nil {
		return err
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		useColors := tokenvars.ShouldUseColors(getBoolWithFallback("color", "color", false))
		report.Print(os.Stdout, useColors)
	}

	return nil
}
