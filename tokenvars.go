// Package tokenvars converts design-token JSON archives into CSS
// custom-property files.
//
// tokenvars unpacks a zip of token files, classifies them by filename
// suffix, resolves cross-file token references, and writes one CSS file
// per theme or output input.
//
// # Usage
//
//	report, err := tokenvars.Run(tokenvars.Config{
//		ArchivePath: "~/Downloads/tokens.zip",
//		OutDir:      "web/styles",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	report.Print(os.Stdout, false)
//
// # File naming
//
// Files are bucketed by suffix, most specific first:
//
//	*.ref.inp.json    reference: loaded for resolution, no output
//	*.theme.inp.json  theme: emits <name>.vars.gen.css under
//	                  [data-mantine-color-scheme='<name>']
//	*.inp.json        output: emits <name>.vars.gen.css under :root
//
// Every build sees the whole archive as its resolution corpus, but each
// generated file contains only the tokens its own input defines. Token
// references ({color.primary}) render as var() calls rather than resolved
// literals.
//
// # CLI Tool
//
// tokenvars also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/tokenvars/cmd/tokenvars@latest
package tokenvars
