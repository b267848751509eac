package tokenvars

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yacobolo/tokenvars/internal/engine"
)

// FileInfo describes one classified token file without building it.
type FileInfo struct {
	File       string // relative to the archive root
	Bucket     string // "reference", "theme", or "output"
	Selector   string // emission selector, "" for reference files
	OutputFile string // derived CSS filename, "" for reference files
	TokenCount int
	Err        error // parse/validation failure, nil when clean
}

// Inspect extracts and classifies an archive and reports per-file token
// counts and derived names without generating anything. The scratch
// directory is removed before returning.
func Inspect(archivePath string) ([]FileInfo, error) {
	scratch, err := ExtractArchive(archivePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := Cleanup(scratch); err != nil {
			fmt.Fprintf(os.Stderr, "warning: removing scratch directory: %v\n", err)
		}
	}()

	set, err := Classify(scratch)
	if err != nil {
		return nil, err
	}

	var infos []FileInfo
	infos = append(infos, inspectBucket(set.Reference, "reference", scratch)...)
	infos = append(infos, inspectBucket(set.Theme, "theme", scratch)...)
	infos = append(infos, inspectBucket(set.Output, "output", scratch)...)
	return infos, nil
}

func inspectBucket(paths []string, bucket string, scratch string) []FileInfo {
	infos := make([]FileInfo, 0, len(paths))

	for _, path := range paths {
		base := filepath.Base(path)
		info := FileInfo{File: relative(path, scratch), Bucket: bucket}

		if bucket != "reference" {
			info.Selector = Selector(base)
			info.OutputFile = OutputFileName(base)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			info.Err = err
			infos = append(infos, info)
			continue
		}

		if err := engine.ValidateFormat(info.File, data); err != nil {
			info.Err = err
			infos = append(infos, info)
			continue
		}

		doc, err := engine.ParseDocument(info.File, data)
		if err != nil {
			info.Err = err
		} else {
			info.TokenCount = doc.Root.Count()
		}
		infos = append(infos, info)
	}

	return infos
}
