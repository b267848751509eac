package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/yacobolo/tokenvars"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <archive.zip>",
	Short: "Classify a token archive without generating CSS",
	Long: `Extract an archive, classify its token files, and report per-file
buckets, token counts, and the names that a build would generate.
Nothing is written.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runInspect,
}

func runInspect(_ *cobra.Command, args []string) error {
	infos, err := tokenvars.Inspect(args[0])
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"File", "Bucket", "Tokens", "Output", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, info := range infos {
		status := "ok"
		if info.Err != nil {
			status = info.Err.Error()
		}
		table.Append([]string{
			info.File,
			info.Bucket,
			fmt.Sprintf("%d", info.TokenCount),
			info.OutputFile,
			status,
		})
	}

	table.Render()
	return nil
}
