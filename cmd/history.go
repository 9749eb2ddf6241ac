package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hgrv/partlog/renderer"
)

type historyCmd struct {
	listing string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display a listing's price history" }
func (*historyCmd) Usage() string {
	return `history -listing <id>

  Displays the dated price samples recorded for one listing, oldest first,
  with the day-over-day change.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.listing, "listing", "", "Listing id, or any unique prefix (required)")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := DecodeCatalogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	part, listing, err := findListing(catalog, c.listing)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.HistoryMarkdown(renderer.NewHistoryReport(part, listing)))
	return subcommands.ExitSuccess
}
