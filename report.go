package tokenvars

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// RunReport aggregates a run's outcome for presentation. It carries no
// decision logic; all paths are already relative to the archive root.
type RunReport struct {
	ReferenceFiles  []string
	Results         []BuildResult
	Skipped         []SkippedFile
	TokensProcessed int
	TokensSkipped   int
}

// Print writes the run summary: reference files loaded, generated files
// with their token counts, skipped inputs, and aggregate totals.
func (r *RunReport) Print(w io.Writer, useColors bool) {
	fmt.Fprintln(w, RenderStyle(StyleCyan, "Run summary", useColors))

	if len(r.ReferenceFiles) > 0 {
		fmt.Fprintf(w, "\n%s\n", RenderStyle(StyleGray, pluralizeCount(len(r.ReferenceFiles), "reference file loaded (no output)", "reference files loaded (no output)"), useColors))
		for _, ref := range r.ReferenceFiles {
			fmt.Fprintf(w, "  %s\n", ref)
		}
	}

	if len(r.Results) > 0 {
		fmt.Fprintln(w, "")
		r.printResultsTable(w)
	} else {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, RenderStyle(StyleYellow, "No CSS files generated", useColors))
	}

	for _, skip := range r.Skipped {
		fmt.Fprintf(w, "%s %s: %v\n", RenderStyle(StyleYellow, "skipped", useColors), skip.SourceFile, skip.Err)
	}

	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "%s, %s\n",
		RenderStyle(StyleGreen, pluralizeCount(r.TokensProcessed, "token processed", "tokens processed"), useColors),
		pluralizeCount(r.TokensSkipped, "token skipped", "tokens skipped"))
}

// printResultsTable renders the per-output-file token counts.
func (r *RunReport) printResultsTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Input", "Output", "Tokens"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, result := range r.Results {
		table.Append([]string{result.SourceFile, result.OutputFile, fmt.Sprintf("%d", result.TokenCount)})
	}

	table.Render()
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
