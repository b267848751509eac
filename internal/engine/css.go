package engine

import (
	"fmt"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// verifyCSS runs emitted CSS back through a CSS parser. Token values come
// from arbitrary JSON, so a stray brace or quote in a value would silently
// corrupt the output file; lexing catches that before anything is written.
func verifyCSS(text string) error {
	p := css.NewParser(parse.NewInputString(text), false)

	for {
		gt, _, _ := p.Next()
		if gt != css.ErrorGrammar {
			continue
		}

		err := p.Err()
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("generated CSS is not valid: %w", err)
	}
}
