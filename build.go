package tokenvars

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yacobolo/tokenvars/internal/engine"
)

// Config holds a run's settings.
type Config struct {
	ArchivePath string // zip archive of token files (~ expanded)
	OutDir      string // directory for generated CSS (~ expanded)
	Verbose     bool   // enable progress logging
}

// BuildResult records one successfully generated CSS file.
type BuildResult struct {
	SourceFile string // token file, relative to the archive root
	OutputFile string // generated CSS file path
	TokenCount int    // tokens defined by (and emitted for) the source file
}

// SkippedFile records one input that failed and was passed over.
type SkippedFile struct {
	SourceFile string
	Err        error
}

// DefaultOutDir returns the user's Downloads directory, falling back to
// the current directory when the home directory is unknown.
func DefaultOutDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// Run is the main entry point: extract the archive, classify its files,
// build one CSS file per theme/output input, and report. The scratch
// directory is removed on every exit path. A failing input file is skipped
// and logged; only extraction, classification, and setup errors abort the
// run.
func Run(config Config) (*RunReport, error) {
	// 1. Extract the archive to a scratch directory
	scratch, err := ExtractArchive(config.ArchivePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := Cleanup(scratch); err != nil {
			fmt.Fprintf(os.Stderr, "warning: removing scratch directory: %v\n", err)
		}
	}()

	if config.Verbose {
		fmt.Printf("Extracted %s to %s\n", config.ArchivePath, scratch)
	}

	// 2. Classify token files by suffix
	set, err := Classify(scratch)
	if err != nil {
		return nil, err
	}

	if config.Verbose {
		fmt.Printf("Found %d reference, %d theme, %d output files\n",
			len(set.Reference), len(set.Theme), len(set.Output))
	}

	report := &RunReport{ReferenceFiles: relativeAll(set.Reference, scratch)}

	// 3. Nothing to generate is a warning, not an error
	if !set.GeneratesOutput() {
		fmt.Fprintln(os.Stderr, "warning: only reference files found; no CSS will be generated")
		return report, nil
	}

	// 4. Parse every discovered file once; the whole corpus is the source
	// set for reference resolution in each build
	r := &run{
		scratch: scratch,
		raw:     make(map[string][]byte),
		docs:    make(map[string]*engine.Document),
	}
	for _, path := range set.All() {
		if err := r.loadDocument(path); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	// 5. Resolve and create the output directory up front
	r.outDir, err = filepath.Abs(ExpandHome(config.OutDir))
	if err != nil {
		return nil, fmt.Errorf("resolving output directory %s: %w", config.OutDir, err)
	}
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", r.outDir, err)
	}

	// 6. Build each output-producing file: output bucket, then theme bucket
	for _, path := range append(append([]string(nil), set.Output...), set.Theme...) {
		rel := relative(path, scratch)

		result, err := r.buildFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", rel, err)
			report.Skipped = append(report.Skipped, SkippedFile{SourceFile: rel, Err: err})
			if doc, ok := r.docs[path]; ok {
				report.TokensSkipped += doc.Root.Count()
			}
			continue
		}

		if config.Verbose {
			fmt.Printf("Wrote %s (%d tokens)\n", result.OutputFile, result.TokenCount)
		}
		report.Results = append(report.Results, result)
		report.TokensProcessed += result.TokenCount
	}

	return report, nil
}

// run carries the per-run state shared by every buildFile call: the parsed
// corpus and the resolved output directory. Sources holds documents in
// classification order (reference, theme, output) so collision shadowing
// is stable.
type run struct {
	scratch string
	outDir  string
	raw     map[string][]byte
	docs    map[string]*engine.Document
	sources []*engine.Document
}

// loadDocument reads and parses one token file into the corpus. A file
// that fails here is absent from the source set; if it was supposed to
// produce output, its own build step reports the skip.
func (r *run) loadDocument(path string) error {
	rel := relative(path, r.scratch)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", rel, err)
	}
	r.raw[path] = data

	doc, err := engine.ParseDocument(rel, data)
	if err != nil {
		return err
	}

	r.docs[path] = doc
	r.sources = append(r.sources, doc)
	return nil
}

// buildFile generates the CSS file for one theme/output input. The engine
// invocation sees the entire corpus so references resolve anywhere, but
// the path filter admits only tokens this file itself defines.
func (r *run) buildFile(path string) (BuildResult, error) {
	rel := relative(path, r.scratch)
	base := filepath.Base(path)

	data, ok := r.raw[path]
	if !ok {
		return BuildResult{}, fmt.Errorf("file could not be read")
	}
	if err := engine.ValidateFormat(rel, data); err != nil {
		return BuildResult{}, err
	}

	doc, ok := r.docs[path]
	if !ok {
		return BuildResult{}, fmt.Errorf("file could not be parsed")
	}

	ownPaths := doc.Root.Paths()

	// The current document goes last in the source list: later documents
	// shadow earlier ones on path collision, so a colliding path always
	// emits this file's own value, never another file's.
	sources := make([]*engine.Document, 0, len(r.sources))
	for _, d := range r.sources {
		if d != doc {
			sources = append(sources, d)
		}
	}
	sources = append(sources, doc)

	css, err := engine.Build(sources, engine.Target{
		Selector: Selector(base),
		Filter: func(tokenPath string) bool {
			_, ok := ownPaths[tokenPath]
			return ok
		},
		Transform: PropertyName,
	})
	if err != nil {
		return BuildResult{}, err
	}

	outPath := filepath.Join(r.outDir, OutputFileName(base))
	if err := os.WriteFile(outPath, []byte(css), 0o644); err != nil {
		return BuildResult{}, fmt.Errorf("writing %s: %w", outPath, err)
	}

	return BuildResult{
		SourceFile: rel,
		OutputFile: outPath,
		TokenCount: doc.Root.Count(),
	}, nil
}

// Selector returns the CSS rule selector for a token file basename:
// :root for plain output files, a color-scheme attribute selector for
// theme files.
func Selector(base string) string {
	if IsThemeFile(base) {
		return fmt.Sprintf("[data-mantine-color-scheme='%s']", ThemeName(base))
	}
	return ":root"
}

// NormalizeSegment lowercases a path segment and collapses whitespace
// runs to single dashes. Existing dashes are untouched. Idempotent.
func NormalizeSegment(segment string) string {
	return strings.Join(strings.Fields(strings.ToLower(segment)), "-")
}

// PropertyName forms the CSS custom-property name (without the leading
// --) from token path segments: ["Deep Sage", "0"] -> "deep-sage-0".
func PropertyName(segments []string) string {
	normalized := make([]string, len(segments))
	for i, segment := range segments {
		normalized[i] = NormalizeSegment(segment)
	}
	return strings.Join(normalized, "-")
}

// relative rebases path against root for display; on failure the absolute
// path is kept.
func relative(path, root string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

func relativeAll(paths []string, root string) []string {
	rels := make([]string, len(paths))
	for i, path := range paths {
		rels[i] = relative(path, root)
	}
	return rels
}
