package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hgrv/partlog"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the catalog in the interchange JSONL format" }
func (*exportCmd) Usage() string {
	return `export [-o <file>]

  Writes the whole catalog, histories included, one part per line, to the
  given file or to stdout. The output is the same format the catalog file
  uses, so it can be inspected, diffed, or re-imported as a catalog.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := DecodeCatalogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := partlog.EncodeCatalog(out, catalog.Parts()); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting catalog: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
