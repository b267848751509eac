// Package main provides the tokenvars CLI for converting design-token
// archives into CSS custom-property files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/tokenvars"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		useColors := tokenvars.ShouldUseColors(false)

		fmt.Fprintln(os.Stderr, tokenvars.RenderStyle(tokenvars.StyleRed, "Error: ", useColors)+err.Error())
		if hint := errorHint(err); hint != "" {
			fmt.Fprintln(os.Stderr, tokenvars.RenderStyle(tokenvars.StyleGray, "Hint: "+hint, useColors))
		}

		os.Exit(1)
	}
}

// errorHint maps known fatal error categories to a one-line actionable
// hint printed under the error.
func errorHint(err error) string {
	switch {
	case errors.Is(err, tokenvars.ErrArchiveNotFound):
		return "check the archive path; ~ is expanded to your home directory"
	case errors.Is(err, tokenvars.ErrNotAFile):
		return "pass the .zip file itself, not a directory"
	case errors.Is(err, tokenvars.ErrNotZip):
		return "the archive must have a .zip extension"
	case errors.Is(err, tokenvars.ErrEmptyArchive):
		return "the zip contains no entries; re-export your tokens"
	case errors.Is(err, tokenvars.ErrNoTokenFiles):
		return "token files must be named *.inp.json (*.ref.inp.json for references, *.theme.inp.json for themes)"
	}
	return ""
}
