package tokenvars

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Fatal input-validation errors. The CLI matches on these to print an
// actionable hint next to the error line.
var (
	ErrArchiveNotFound = errors.New("archive not found")
	ErrNotAFile        = errors.New("archive path is not a regular file")
	ErrNotZip          = errors.New("archive is not a .zip file")
	ErrEmptyArchive    = errors.New("archive contains no entries")
)

// ExpandHome resolves a leading ~ against the user's home directory.
// Paths that don't start with ~ (or when the home dir is unknown) are
// returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// ExtractArchive validates path and unpacks the zip into a fresh scratch
// directory, returning the scratch path. Entries overwrite on name
// collision. On any extraction failure the scratch directory is removed
// (best effort) before the error propagates.
func ExtractArchive(path string) (string, error) {
	expanded := ExpandHome(path)

	info, err := os.Stat(expanded)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrArchiveNotFound, expanded)
	}
	if err != nil {
		return "", fmt.Errorf("checking archive %s: %w", expanded, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotAFile, expanded)
	}
	if !strings.EqualFold(filepath.Ext(expanded), ".zip") {
		return "", fmt.Errorf("%w: %s", ErrNotZip, expanded)
	}

	reader, err := zip.OpenReader(expanded)
	if err != nil {
		return "", fmt.Errorf("opening archive %s: %w", expanded, err)
	}
	defer reader.Close()

	if len(reader.File) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyArchive, expanded)
	}

	scratch, err := os.MkdirTemp("", "tokenvars-")
	if err != nil {
		return "", fmt.Errorf("creating scratch directory: %w", err)
	}

	for _, entry := range reader.File {
		if err := extractEntry(entry, scratch); err != nil {
			// Extraction error dominates; cleanup is best effort.
			os.RemoveAll(scratch)
			return "", fmt.Errorf("extracting %s: %w", entry.Name, err)
		}
	}

	return scratch, nil
}

// extractEntry writes one zip entry under scratch, rejecting entries whose
// path escapes the scratch directory (zip slip).
func extractEntry(entry *zip.File, scratch string) error {
	dest := filepath.Join(scratch, filepath.FromSlash(entry.Name))
	if !strings.HasPrefix(dest, filepath.Clean(scratch)+string(os.PathSeparator)) {
		return fmt.Errorf("entry path escapes extraction directory")
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	// os.Create truncates, so colliding names overwrite.
	dst, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}

	return dst.Close()
}

// Cleanup removes the scratch directory. An already-removed directory is
// success; callers log any returned error as a warning and never escalate.
func Cleanup(scratch string) error {
	if scratch == "" {
		return nil
	}
	return os.RemoveAll(scratch)
}
