package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .tokenvars.yaml config file",
	Long:  `Create a .tokenvars.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".tokenvars.yaml"); err == nil && !force {
			return fmt.Errorf(".tokenvars.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".tokenvars.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .tokenvars.yaml")
		return nil
	},
}

const defaultConfig = `# tokenvars configuration
# Docs: https://github.com/yacobolo/tokenvars

# Shared settings
verbose: false
quiet: false
color: false

# Build settings
build:
  # Output directory for generated *.vars.gen.css files.
  # Defaults to your Downloads directory when unset.
  out: ""
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
