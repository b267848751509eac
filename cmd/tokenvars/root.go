package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tokenvars <archive.zip>",
	Short: "Convert design-token archives to CSS custom properties",
	Long: `Convert a zip archive of design-token JSON files into CSS
custom-property files. Reference files feed token resolution, theme files
emit under a color-scheme attribute selector, and every other *.inp.json
file emits under :root.`,
	Args:    cobra.MaximumNArgs(1),
	Version: version,
	// Default behavior: run build when no subcommand is given.
	// loadConfig must run here because PreRunE of buildCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runBuild(buildCmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress the run summary (exit code only)")
	rootCmd.PersistentFlags().StringP("out", "o", "", "Output directory for generated CSS (default: ~/Downloads)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".tokenvars.yaml", "Config file path")

	rootCmd.Flags().BoolP("version", "V", false, "Print the version and exit")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
