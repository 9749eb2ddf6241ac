package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hgrv/partlog/renderer"
)

type showCmd struct {
	id string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display one part with all its vendor listings" }
func (*showCmd) Usage() string {
	return `show -id <part>

  Displays one part in detail: every vendor listing with its id, price,
  stock, alert threshold and URL. Listing ids are what the pricing commands
  (price, stock, alert, history, open) take.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Part id, or any unique prefix (required)")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := DecodeCatalogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	part, err := findPart(catalog, c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.PartMarkdown(part))
	return subcommands.ExitSuccess
}
