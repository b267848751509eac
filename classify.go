package tokenvars

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Filename suffixes recognized by the classifier, most specific first.
const (
	refSuffix   = ".ref.inp.json"
	themeSuffix = ".theme.inp.json"
	inputSuffix = ".inp.json"

	generatedSuffix = ".vars.gen.css"

	// ignoreFileName is an optional gitignore-syntax file at the archive
	// root excluding entries from classification.
	ignoreFileName = ".tokenignore"
)

// ErrNoTokenFiles is returned when a scanned directory contains nothing
// matching any recognized token-file suffix.
var ErrNoTokenFiles = errors.New("no token files found")

// FileSet buckets discovered token files by role. Reference files feed
// resolution only; theme and output files each produce one CSS file.
// Built once per run from a directory scan, immutable afterward.
type FileSet struct {
	Reference []string
	Theme     []string
	Output    []string
}

// All returns reference ++ theme ++ output. This order is significant: it
// becomes the source list handed to the engine, and later documents shadow
// earlier ones on path collision.
func (s *FileSet) All() []string {
	all := make([]string, 0, len(s.Reference)+len(s.Theme)+len(s.Output))
	all = append(all, s.Reference...)
	all = append(all, s.Theme...)
	all = append(all, s.Output...)
	return all
}

// GeneratesOutput reports whether any discovered file will produce a CSS
// file. False means the run would only load reference material.
func (s *FileSet) GeneratesOutput() bool {
	return len(s.Theme) > 0 || len(s.Output) > 0
}

// Classify recursively scans root and buckets every regular *.inp.json
// file by suffix. Archive junk (__MACOSX, dot-files, AppleDouble entries)
// and anything matched by a .tokenignore at the root are skipped.
func Classify(root string) (*FileSet, error) {
	tokenIgnore := loadTokenIgnore(root)

	pattern := filepath.Join(root, "**", "*"+inputSuffix)
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	set := &FileSet{}
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}

		rel, err := filepath.Rel(root, match)
		if err != nil {
			rel = match
		}
		if shouldSkipEntry(rel, tokenIgnore) {
			continue
		}

		base := filepath.Base(match)
		switch {
		case strings.HasSuffix(base, refSuffix):
			set.Reference = append(set.Reference, match)
		case strings.HasSuffix(base, themeSuffix):
			set.Theme = append(set.Theme, match)
		default:
			set.Output = append(set.Output, match)
		}
	}

	sort.Strings(set.Reference)
	sort.Strings(set.Theme)
	sort.Strings(set.Output)

	if len(set.Reference) == 0 && len(set.Theme) == 0 && len(set.Output) == 0 {
		return nil, fmt.Errorf("%w in %s (expected *%s)", ErrNoTokenFiles, root, inputSuffix)
	}

	return set, nil
}

// loadTokenIgnore compiles the optional .tokenignore file. A missing or
// unreadable file degrades to no filtering.
func loadTokenIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ignoreFileName))
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipEntry filters archive noise: macOS resource-fork directories,
// AppleDouble files, hidden dot-files, plus .tokenignore matches. The path
// is relative to the scan root.
func shouldSkipEntry(rel string, tokenIgnore *ignore.GitIgnore) bool {
	for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
		if segment == "__MACOSX" || strings.HasPrefix(segment, ".") || strings.HasPrefix(segment, "._") {
			return true
		}
	}

	if tokenIgnore != nil && tokenIgnore.MatchesPath(rel) {
		return true
	}

	return false
}

// OutputFileName derives the generated CSS filename from a token file
// basename: dark.theme.inp.json -> dark.vars.gen.css, core.inp.json ->
// core.vars.gen.css.
func OutputFileName(base string) string {
	switch {
	case strings.HasSuffix(base, themeSuffix):
		return strings.TrimSuffix(base, themeSuffix) + generatedSuffix
	case strings.HasSuffix(base, inputSuffix):
		return strings.TrimSuffix(base, inputSuffix) + generatedSuffix
	}
	return base + generatedSuffix
}

// ThemeName derives the theme identifier used in the generated attribute
// selector: dark.theme.inp.json -> dark.
func ThemeName(base string) string {
	return strings.TrimSuffix(base, themeSuffix)
}

// IsThemeFile reports whether a basename matches the theme suffix.
func IsThemeFile(base string) bool {
	return strings.HasSuffix(base, themeSuffix)
}
